// Package handler provides HTTP request handlers for UserHub.
package handler

import (
	"errors"
	"net/http"

	"github.com/yndnr/userhub-go/internal/core/domain"
)

// handleTokens dispatches the tokens resource by method.
//
// Token operations are deliberately not gated by the token check that
// protects user records: POST is how a token is obtained, and the other
// methods require knowing an unguessable 20-character ID.
func (h *Handler) handleTokens(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.tokensPost(w, r)
	case http.MethodGet:
		h.tokensGet(w, r)
	case http.MethodPut:
		h.tokensPut(w, r)
	case http.MethodDelete:
		h.tokensDelete(w, r)
	default:
		h.methodNotAllowed(w)
	}
}

// tokensPost issues a new token for a phone and password pair.
func (h *Handler) tokensPost(w http.ResponseWriter, r *http.Request) {
	phone, password, err := parseCreateToken(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tok, err := h.tokens.Create(r.Context(), phone, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			h.writeError(w, http.StatusBadRequest, "Could not find the specified user")
		case errors.Is(err, domain.ErrPasswordMismatch):
			h.writeError(w, http.StatusBadRequest, "Password did not match the specified user's stored password")
		default:
			h.logger.Error("token create failed", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Could not create the new token")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, tok)
}

// tokensGet returns the token for the id query parameter.
func (h *Handler) tokensGet(w http.ResponseWriter, r *http.Request) {
	id, err := tokenIDParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	tok, err := h.tokens.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			h.writeError(w, http.StatusNotFound, "Could not find the specified token")
			return
		}
		h.logger.Error("token read failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Could not read the specified token")
		return
	}

	h.writeJSON(w, http.StatusOK, tok)
}

// tokensPut extends a live token's expiration by one hour.
func (h *Handler) tokensPut(w http.ResponseWriter, r *http.Request) {
	id, err := parseExtendToken(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.tokens.Extend(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, domain.ErrTokenNotFound):
			h.writeError(w, http.StatusBadRequest, "Specified token does not exist")
		case errors.Is(err, domain.ErrTokenExpired):
			h.writeError(w, http.StatusBadRequest, "The token has already expired, and cannot be extended")
		default:
			h.logger.Error("token extend failed", "error", err)
			h.writeError(w, http.StatusInternalServerError, "Could not update the token's expiration")
		}
		return
	}

	h.writeJSON(w, http.StatusOK, nil)
}

// tokensDelete revokes the token for the id query parameter.
func (h *Handler) tokensDelete(w http.ResponseWriter, r *http.Request) {
	id, err := tokenIDParam(r)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.tokens.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrTokenNotFound) {
			h.writeError(w, http.StatusBadRequest, "Could not find the specified token")
			return
		}
		h.logger.Error("token delete failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "Could not delete the specified token")
		return
	}

	h.writeJSON(w, http.StatusOK, nil)
}
