package resp

import (
	"encoding/json"
	"net/http"
)

// WriteJSONResponse сериализует payload и пишет его с указанным статусом
func WriteJSONResponse(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
