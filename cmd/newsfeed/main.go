// ABOUTME: Main entry point for the newsfeed terminal reader
// ABOUTME: Runs the cobra command tree and maps failures to a non-zero exit status

package main

import (
	"errors"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errFetchFailed) {
			os.Stderr.WriteString("Error: " + err.Error() + "\n")
		}
		os.Exit(1)
	}
}
