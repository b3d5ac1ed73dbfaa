package handlers

import (
	"net/http"
	"strings"

	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/logging"
	"github.com/XavierTanMT/IS212---Software-Project-Management-sub000/services"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Register(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	logging.Logger.Infof("Event ID: REGISTER_OK, Description: User %s registered", result.User.ID)
	writeJSON(w, http.StatusCreated, result)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Token    string `json:"token"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, err)
		return
	}

	result, err := h.service.Login(r.Context(), body.Token, body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Verify reports validity with a dedicated shape instead of the error key.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if token == "" {
		var body struct {
			Token string `json:"token"`
		}
		if err := decodeBody(r, &body); err == nil {
			token = body.Token
		}
	}
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"valid": false})
		return
	}

	result, err := h.service.Verify(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{"valid": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"valid": true, "user": result.User})
}
