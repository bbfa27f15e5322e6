// ABOUTME: Error handling utilities for the proxy handlers
// ABOUTME: Converts domain errors to the {message} bodies the news client expects

package handlers

import (
	"encoding/json"
	"net/http"

	"newsfeed-api/core/errors"
)

// serverErrorMessage is returned when an error carries no text
const serverErrorMessage = "Server error"

// messageBody is the error shape shared by every proxy endpoint
type messageBody struct {
	Message string `json:"message"`
}

// toProxyError converts domain errors to a status code and {message} body
func toProxyError(err error) (int, []byte) {
	status := http.StatusInternalServerError
	message := serverErrorMessage

	switch {
	case errors.IsMissingCredential(err), errors.IsValidation(err):
		status = http.StatusBadRequest
		message = errors.UserMessage(err)
	case err != nil && err.Error() != "":
		message = err.Error()
	}

	return status, encodeMessage(message)
}

func encodeMessage(message string) []byte {
	data, err := json.Marshal(messageBody{Message: message})
	if err != nil {
		return []byte(`{"message":"` + serverErrorMessage + `"}`)
	}
	return data
}
