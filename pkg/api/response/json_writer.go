package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dkruglov/voicegpt-telegram-bot/pkg/logger"
)

type errorBody struct {
	Error string `json:"error"`
}

// Success writes data as a JSON body with status 200.
func Success(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, data)
}

// Error writes an error message as a JSON body with the given status.
func Error(w http.ResponseWriter, statusCode int, message string) {
	write(w, statusCode, errorBody{Error: message})
}

func write(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response body", logger.Err(err))
	}
}
