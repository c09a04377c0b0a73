// internal/adapters/in/http/handlers/respond.go
package handlers

import (
	"encoding/json"
	"net/http"
)

// Response is the fixed envelope every endpoint returns, success or
// failure. The transport status is always 200 (201 for placeholder
// creation); the real outcome lives in Status/StatusCode. Shape and
// numeric codes are an external contract shared with the web front-end.
type Response struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Data       any    `json:"data"`
}

func writeJSON(w http.ResponseWriter, httpStatus int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeSuccess(w http.ResponseWriter, httpStatus, code int, message string, data any) {
	if data == nil {
		data = []any{}
	}
	writeJSON(w, httpStatus, Response{
		Status:     "Success",
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

// writeFail wraps the raw error message as the sole data element, the way
// the front-end expects failures to arrive.
func writeFail(w http.ResponseWriter, httpStatus, code int, message, errMsg string) {
	writeJSON(w, httpStatus, Response{
		Status:     "Fail",
		StatusCode: code,
		Message:    message,
		Data:       []string{errMsg},
	})
}

// writeBadRequest mirrors the validation-filter shape: statusCode carries
// the HTTP status.
func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{
		Status:     "Fail",
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Data:       []any{},
	})
}

func methodNotAllowed(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "method_not_allowed"})
}

func notFoundRoute(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
}

func decodeBody(r *http.Request, dst any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(dst)
}
