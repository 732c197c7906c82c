package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"traffic-lab/errors"
)

const serverErrorMessage = "Server error"

type errorBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// errorWriter renders errors of the taxonomy with their own message
// and anything else as a generic 500 that only the log explains.
func errorWriter(log *slog.Logger) func(w http.ResponseWriter, err error) {
	return func(w http.ResponseWriter, err error) {
		status := errors.HTTPStatus(err)
		if !errors.IsExpected(err) {
			log.Error("Request failed", "error", err)
			writeJSON(w, status, errorBody{Message: serverErrorMessage})
			return
		}
		writeJSON(w, status, errorBody{Message: err.Error()})
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: malformed JSON body", errors.ErrInvalidInput)
	}
	return nil
}

// queryInt reads an integer query parameter, garbage and absence both give fallback.
func queryInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return fallback
	}
	return value
}
