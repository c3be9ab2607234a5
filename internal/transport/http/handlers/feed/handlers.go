// Package feedhandler exposes the company social feed.
package feedhandler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hrms/internal/store"
	"hrms/internal/transport/http/api"
	"hrms/internal/transport/http/middleware"
	"hrms/internal/transport/http/shared"
)

type Handler struct {
	Store *store.Store
}

func NewHandler(st *store.Store) *Handler {
	return &Handler{Store: st}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/posts", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Post("/{postID}/like", h.handleLike)
		r.Post("/{postID}/comments", h.handleComment)
		r.Delete("/{postID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	api.Success(w, h.Store.Posts(), middleware.GetRequestID(r.Context()))
}

type createPostRequest struct {
	Content          string `json:"content"`
	Type             string `json:"type"`
	RecognizedPerson string `json:"recognizedPerson"`
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	if payload.Type == "" {
		payload.Type = store.PostTypeText
	}
	v := shared.NewValidator()
	v.Required("content", payload.Content, "content is required")
	v.Enum("type", payload.Type, []string{store.PostTypeText, store.PostTypeRecognition}, "unknown post type")
	if payload.Type == store.PostTypeRecognition {
		v.Required("recognizedPerson", payload.RecognizedPerson, "recognizedPerson is required for recognition posts")
	}
	if v.Reject(w, reqID) {
		return
	}

	author := authorFromRequest(r, h.Store)
	id := h.Store.AddPost(store.Post{
		AuthorID:         author.ID,
		AuthorName:       author.Name,
		AuthorRole:       author.Role,
		Content:          payload.Content,
		Type:             payload.Type,
		IsRecognition:    payload.Type == store.PostTypeRecognition,
		RecognizedPerson: payload.RecognizedPerson,
	})
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleLike(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	author := authorFromRequest(r, h.Store)
	postID := chi.URLParam(r, "postID")
	if err := h.Store.LikePost(postID, author.ID); err != nil {
		writePostError(w, err, reqID)
		return
	}
	post, _ := h.Store.PostByID(postID)
	api.Success(w, map[string]any{"likes": post.Likes}, reqID)
}

type commentRequest struct {
	Content string `json:"content"`
}

func (h *Handler) handleComment(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	var payload commentRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", reqID)
		return
	}

	v := shared.NewValidator()
	v.Required("content", payload.Content, "content is required")
	if v.Reject(w, reqID) {
		return
	}

	author := authorFromRequest(r, h.Store)
	id, err := h.Store.AddComment(chi.URLParam(r, "postID"), store.Comment{
		Author:  author.Name,
		Content: payload.Content,
	})
	if err != nil {
		writePostError(w, err, reqID)
		return
	}
	api.Created(w, map[string]string{"id": id}, reqID)
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	reqID := middleware.GetRequestID(r.Context())
	if err := h.Store.DeletePost(chi.URLParam(r, "postID")); err != nil {
		writePostError(w, err, reqID)
		return
	}
	api.Success(w, map[string]string{"status": "deleted"}, reqID)
}

// authorFromRequest prefers the verified token claims and falls back to the
// store session so posts are always attributed to someone.
func authorFromRequest(r *http.Request, st *store.Store) store.User {
	if claims, ok := middleware.GetUser(r.Context()); ok {
		return store.User{ID: claims.UserID, Name: claims.Name, Email: claims.Email, Role: claims.Role}
	}
	if user, ok := st.CurrentUser(); ok {
		return user
	}
	return store.User{ID: "USR-001", Name: "Admin User", Role: "Administrator"}
}

func writePostError(w http.ResponseWriter, err error, reqID string) {
	if errors.Is(err, store.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "post not found", reqID)
		return
	}
	api.Fail(w, http.StatusInternalServerError, "store_error", "store operation failed", reqID)
}
