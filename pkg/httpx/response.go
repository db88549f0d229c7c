package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope statuses.
const (
	StatusSuccess = "success"
	StatusFail    = "fail"  // client errors (4xx)
	StatusError   = "error" // server errors (5xx)
)

// Envelope is the body shape of every JSON response.
type Envelope struct {
	Status  string `json:"status"`
	Results *int   `json:"results,omitempty"`
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// WriteSuccess writes {"status":"success","data":data}.
func WriteSuccess(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{Status: StatusSuccess, Data: data})
}

// WriteList writes a success envelope that also carries the result count.
func WriteList(w http.ResponseWriter, data any, n int) {
	WriteJSON(w, http.StatusOK, Envelope{Status: StatusSuccess, Results: &n, Data: data})
}

// WriteMessage writes a fail or error envelope, picked from the status code.
func WriteMessage(w http.ResponseWriter, code int, msg string) {
	status := StatusFail
	if code >= http.StatusInternalServerError {
		status = StatusError
	}
	WriteJSON(w, code, Envelope{Status: status, Message: msg})
}

// WriteNoContent writes a bare 204.
func WriteNoContent(w http.ResponseWriter) {
	NoCache(w)
	w.WriteHeader(http.StatusNoContent)
}

// WriteText writes a plain-text response.
func WriteText(w http.ResponseWriter, code int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write([]byte(body))
}
