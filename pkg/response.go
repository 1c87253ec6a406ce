package pkg

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

var ContentType = struct {
	JSON string
	Text string
}{
	JSON: "application/json",
	Text: "text/plain; charset=utf-8",
}

func WriteResponseBytes(w http.ResponseWriter, contentType string, body []byte, statusCode int) {
	if contentType != "" {
		w.Header().Set("Content-Type", contentType)
	}
	w.WriteHeader(statusCode)

	if _, err := w.Write(body); err != nil {
		log.Errorf("failed to write response [%d bytes]: %s", len(body), err)
	}
}

func WriteResponse(w http.ResponseWriter, contentType, message string, statusCode int) {
	WriteResponseBytes(w, contentType, []byte(message), statusCode)
}

func WriteTextResponseOK(w http.ResponseWriter, message string) {
	WriteResponse(w, ContentType.Text, message, http.StatusOK)
}

// WriteJSON marshals v and writes it with the given status.
func WriteJSON(w http.ResponseWriter, v any, statusCode int) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Errorf("failed to marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	WriteResponseBytes(w, ContentType.JSON, body, statusCode)
}
