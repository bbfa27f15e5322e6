// ABOUTME: Root command for the newsfeed reader and its shared wiring
// ABOUTME: Flags and NEWSFEED_* variables resolve through one viper instance per invocation

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"newsfeed-api/core/interfaces"
	"newsfeed-api/core/settings"
	"newsfeed-api/infrastructure/logger/structured"
	"newsfeed-api/infrastructure/store"
	"newsfeed-api/pkg/config"
)

// app holds what every subcommand needs
type app struct {
	v      *viper.Viper
	cfg    *config.Config
	logger interfaces.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:   "newsfeed",
		Short: "Read GNews and NewsAPI headlines in the terminal",
		Long: `newsfeed searches GNews, falling back to NewsAPI once when the GNews key
is rejected, and renders the results as cards.

Example usage:
  newsfeed read                       # Latest news
  newsfeed read -q "open source"      # Free-text search
  newsfeed read -c science --pages 3  # Category, three pages
  newsfeed theme toggle               # Switch between light and dark cards`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	_ = a.v.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))

	a.v.SetEnvPrefix("NEWSFEED")
	a.v.AutomaticEnv()

	root.AddCommand(newReadCmd(a), newCategoriesCmd(a), newThemeCmd(a))
	return root
}

// init loads configuration and the logger once flags are parsed
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}

	level := cfg.Log.Level
	if a.v.GetBool("verbose") {
		level = "debug"
	}
	logger, err := structured.NewLogger(structured.Options{
		Level:  level,
		Format: structured.Format(cfg.Log.Format),
		Output: stderr,
	})
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// openSettings opens the configured preference store. The caller closes it.
func (a *app) openSettings() (*settings.Service, func(), error) {
	kv, err := store.Open(a.cfg.Settings)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := kv.Close(); err != nil {
			a.logger.Warn("Closing settings store failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	return settings.NewService(kv, a.logger), closeFn, nil
}
