// Package handler provides HTTP request handlers for UserHub.
package handler

import (
	"errors"
	"net/http"

	"github.com/yndnr/userhub-go/internal/core/domain"
)

// AuthTokenHeader carries the token ID authorizing user-record access.
const AuthTokenHeader = "token"

const authErrorMessage = "Missing required token in header, or token is invalid"

// handleUsers dispatches the users resource by method.
func (h *Handler) handleUsers(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.usersPost(w, r)
	case http.MethodGet:
		h.usersGet(w, r)
	case http.MethodPut:
		h.usersPut(w, r)
	case http.MethodDelete:
		h.usersDelete(w, r)
	default:
		h.methodNotAllowed(w)
	}
}

// authorize checks that the token header authorizes access to the
// account identified by phone.
func (h *Handler) authorize(r *http.Request, phone string) bool {
	tokenID := r.Header.Get(AuthTokenHeader)
	if tokenID == "" {
		return false
	}
	return h.tokens.Verify(r.Context(), tokenID, phone)
}

// usersPost registers a new account. Creation needs no token: it is the
// entry point that makes a token obtainable in the first place.
func (h *Handler) usersPost(w http.ResponseWriter, r *http.Request) {
	req, err := parseCreateUser(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.users.Create(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserExists):
			h.writeError(w, http.StatusBadRequest, "A user with that phone number already exists")
		case errors.Is(err, domain.ErrValidation):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("user create failed", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Could not create the new user")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, nil)
}

// usersGet returns the account for the phone query parameter, minus the
// password hash.
func (h *Handler) usersGet(w http.ResponseWriter, r *http.Request) {
	phone, err := phoneParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.authorize(r, phone) {
		h.writeError(w, http.StatusForbidden, authErrorMessage)
		return
	}

	user, err := h.users.Get(r.Context(), phone)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.writeError(w, http.StatusNotFound, "Could not find the specified user")
			return
		}
		h.logger.Error("user read failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Could not read the specified user")
		return
	}

	h.writeJSON(w, http.StatusOK, user.Public())
}

// usersPut applies a partial update to an existing account.
func (h *Handler) usersPut(w http.ResponseWriter, r *http.Request) {
	req, err := parseUpdateUser(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.authorize(r, req.Phone) {
		h.writeError(w, http.StatusForbidden, authErrorMessage)
		return
	}

	if _, err := h.users.Update(r.Context(), req); err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			h.writeError(w, http.StatusBadRequest, "The specified user does not exist")
		case errors.Is(err, domain.ErrValidation):
			h.writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("user update failed", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Could not update the user")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, nil)
}

// usersDelete removes the account for the phone query parameter.
func (h *Handler) usersDelete(w http.ResponseWriter, r *http.Request) {
	phone, err := phoneParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !h.authorize(r, phone) {
		h.writeError(w, http.StatusForbidden, authErrorMessage)
		return
	}

	if err := h.users.Delete(r.Context(), phone); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			h.writeError(w, http.StatusBadRequest, "Could not find the specified user")
			return
		}
		h.logger.Error("user delete failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Could not delete the specified user")
		return
	}

	h.writeJSON(w, http.StatusOK, nil)
}
