package http

import (
	"encoding/json"
	"net/http"

	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

const maxBodyBytes = 1 << 20

// decodeBody decodes a JSON request body into dst. On failure it writes a 400
// and returns false.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, msgInvalidBody)
		return false
	}
	return true
}

// pathID parses the {name} path segment as an id. On failure it writes a 400
// and returns false.
func pathID(w http.ResponseWriter, r *http.Request, name string) (idx.ID, bool) {
	raw := r.PathValue(name)
	id, err := idx.Parse(raw)
	if err != nil {
		httpx.WriteMessage(w, http.StatusBadRequest, "Invalid "+name+": "+raw)
		return "", false
	}
	return id, true
}
