package authhandler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/auth"
	"hrms/internal/store"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
)

type Handler struct {
	Store     *store.Store
	JWTSecret string
}

func NewHandler(st *store.Store, jwtSecret string) *Handler {
	return &Handler{Store: st, JWTSecret: jwtSecret}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.HandleLogin)
	r.Post("/auth/logout", h.HandleLogout)
	r.Get("/auth/me", h.HandleMe)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string     `json:"token"`
	User  store.User `json:"user"`
}

// HandleLogin accepts any non-empty email/password pair and establishes the
// demo session. An empty field is the one real failure path in the system.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())

	var payload loginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	user, ok := h.Store.Login(payload.Email, payload.Password)
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "invalid_credentials", "email and password are required", reqID)
		return
	}

	token, err := auth.GenerateToken(h.JWTSecret, auth.Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	}, auth.SessionTTL)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "token_failed", "failed to issue session token", reqID)
		return
	}

	api.Success(w, loginResponse{Token: token, User: user}, reqID)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout()
	api.Success(w, map[string]string{"status": "logged out"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	user, ok := h.Store.CurrentUser()
	if !ok {
		api.Fail(w, http.StatusUnauthorized, "unauthorized", "no active session", reqID)
		return
	}
	api.Success(w, user, reqID)
}
