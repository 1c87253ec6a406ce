package pkg

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// UUIDVar reads a uuid route variable. On failure it writes a 400 and returns false.
func UUIDVar(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := mux.Vars(r)[name]
	if raw == "" {
		http.Error(w, "error, "+name+" missing", http.StatusBadRequest)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		http.Error(w, "error, invalid "+name, http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// DecodeJSONBody decodes a JSON request body into v. On failure it writes a 400 and returns false.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), ContentType.JSON) {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		log.Tracef("unmarshal json body: %s", err)
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return false
	}
	return true
}
