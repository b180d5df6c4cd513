package api

import (
	"encoding/json"
	"net/http"

	"log/slog"
)

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", slog.Any("err", err))
	}
}

// writeError emits a client-facing error body shaped {"detail": "..."}.
func writeError(w http.ResponseWriter, detail string, status int) {
	writeJSON(w, map[string]string{"detail": detail}, status)
}
