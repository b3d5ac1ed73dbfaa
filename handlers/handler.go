package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/middleware"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_FAILED, Description: Encoding response failed: %v", err)
		}
	}
}

func writeErrorMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeError translates service errors into the HTTP taxonomy. Unknown
// errors become an opaque 500.
func writeError(w http.ResponseWriter, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		writeErrorMsg(w, http.StatusBadRequest, ve.Message)
	case errors.Is(err, services.ErrForbidden):
		writeErrorMsg(w, http.StatusForbidden, "Permission denied")
	case errors.Is(err, services.ErrNotFound):
		writeErrorMsg(w, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrConflict):
		writeErrorMsg(w, http.StatusConflict, "already exists")
	case errors.Is(err, services.ErrNoAccount):
		writeErrorMsg(w, http.StatusNotFound, "No account with this email")
	case errors.Is(err, services.ErrBadCredentials):
		writeErrorMsg(w, http.StatusUnauthorized, "Invalid credentials")
	default:
		logging.Logger.Errorf("Event ID: REQUEST_FAILED, Description: Unhandled error: %v", err)
		writeErrorMsg(w, http.StatusInternalServerError, "internal server error")
	}
}

// viewerID resolves the caller's identity: the X-User-Id header first, then
// the viewer_id query param, then the verified token claims.
func viewerID(r *http.Request) string {
	if id := r.Header.Get("X-User-Id"); id != "" {
		return id
	}
	if id := r.URL.Query().Get("viewer_id"); id != "" {
		return id
	}
	if claims := middleware.ClaimsFrom(r.Context()); claims != nil {
		return claims.UserID
	}
	return ""
}

func decodeBody(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return services.Validation("invalid JSON body")
	}
	return nil
}
