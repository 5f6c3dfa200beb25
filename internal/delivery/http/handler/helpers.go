package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"vaccination-management/internal/delivery/http/middleware"
	"vaccination-management/internal/domain/entity"
	"vaccination-management/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

func parseID(w http.ResponseWriter, r *http.Request, message string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		if r.Method == http.MethodHead {
			response.Head(w, http.StatusBadRequest)
		} else {
			response.Error(w, http.StatusBadRequest, message, nil)
		}
		return uuid.Nil, false
	}
	return id, true
}

// decodeJSON decodes the request body into dst. An empty body decodes to the zero value.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return false
	}
	return true
}

// currentUser returns the user set by the auth middleware, or nil on public routes.
func currentUser(r *http.Request) *entity.User {
	user, _ := middleware.GetUserFromContext(r.Context())
	return user
}

// respondFound answers HEAD with status only and GET with the envelope.
func respondFound(w http.ResponseWriter, r *http.Request, message string, data interface{}) {
	if r.Method == http.MethodHead {
		response.Head(w, http.StatusOK)
		return
	}
	response.Success(w, http.StatusOK, message, data)
}

func respondError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	if r.Method == http.MethodHead {
		response.Head(w, response.StatusOf(err))
		return
	}
	response.FromError(w, err, fallback)
}
