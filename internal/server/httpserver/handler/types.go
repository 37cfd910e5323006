// Package handler provides HTTP request handlers for UserHub.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/yndnr/userhub-go/internal/core/domain"
	"github.com/yndnr/userhub-go/internal/core/service"
)

// errorResponse is the wire shape of every error body.
type errorResponse struct {
	Error string `json:"error"`
}

// decodeBody deserializes the request body into out. An unreadable or
// unparseable body is not an error: out keeps its zero values, matching
// the permissive parse contract of the API.
func decodeBody(r *http.Request, out any) {
	if r.Body == nil {
		return
	}
	_ = json.NewDecoder(r.Body).Decode(out)
}

// createUserWire is the raw payload of POST /users.
type createUserWire struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Phone        string `json:"phone"`
	Password     string `json:"password"`
	TOSAgreement bool   `json:"tosAgreement"`
}

// parseCreateUser validates the create payload into a service request.
func parseCreateUser(r *http.Request) (*service.CreateUserRequest, error) {
	var wire createUserWire
	decodeBody(r, &wire)

	req := &service.CreateUserRequest{
		FirstName:    strings.TrimSpace(wire.FirstName),
		LastName:     strings.TrimSpace(wire.LastName),
		Phone:        strings.TrimSpace(wire.Phone),
		Password:     strings.TrimSpace(wire.Password),
		TOSAgreement: wire.TOSAgreement,
	}

	if req.FirstName == "" || req.LastName == "" || req.Password == "" ||
		!domain.ValidPhone(req.Phone) || !req.TOSAgreement {
		return nil, errors.New("Missing required fields")
	}
	return req, nil
}

// updateUserWire is the raw payload of PUT /users.
type updateUserWire struct {
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Password  string `json:"password"`
}

// parseUpdateUser validates the update payload into a service request.
func parseUpdateUser(r *http.Request) (*service.UpdateUserRequest, error) {
	var wire updateUserWire
	decodeBody(r, &wire)

	req := &service.UpdateUserRequest{
		Phone:     strings.TrimSpace(wire.Phone),
		FirstName: strings.TrimSpace(wire.FirstName),
		LastName:  strings.TrimSpace(wire.LastName),
		Password:  strings.TrimSpace(wire.Password),
	}

	if !domain.ValidPhone(req.Phone) {
		return nil, errors.New("Missing required field")
	}
	if req.FirstName == "" && req.LastName == "" && req.Password == "" {
		return nil, errors.New("Missing fields to update")
	}
	return req, nil
}

// createTokenWire is the raw payload of POST /tokens.
type createTokenWire struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// parseCreateToken validates the token-issue payload.
func parseCreateToken(r *http.Request) (phone, password string, err error) {
	var wire createTokenWire
	decodeBody(r, &wire)

	phone = strings.TrimSpace(wire.Phone)
	password = strings.TrimSpace(wire.Password)

	if !domain.ValidPhone(phone) || password == "" {
		return "", "", errors.New("Missing required field(s)")
	}
	return phone, password, nil
}

// extendTokenWire is the raw payload of PUT /tokens.
type extendTokenWire struct {
	ID     string `json:"id"`
	Extend bool   `json:"extend"`
}

// parseExtendToken validates the token-extend payload. The extend flag
// must be explicitly true.
func parseExtendToken(r *http.Request) (string, error) {
	var wire extendTokenWire
	decodeBody(r, &wire)

	id := strings.TrimSpace(wire.ID)
	if !domain.ValidTokenID(id) || !wire.Extend {
		return "", errors.New("Missing required field(s) or field(s) are invalid")
	}
	return id, nil
}

// phoneParam extracts and validates the phone query parameter.
func phoneParam(r *http.Request) (string, error) {
	phone := strings.TrimSpace(r.URL.Query().Get("phone"))
	if !domain.ValidPhone(phone) {
		return "", errors.New("Missing required field: phone")
	}
	return phone, nil
}

// tokenIDParam extracts and validates the id query parameter.
func tokenIDParam(r *http.Request) (string, error) {
	id := strings.TrimSpace(r.URL.Query().Get("id"))
	if !domain.ValidTokenID(id) {
		return "", errors.New("Missing required field: id")
	}
	return id, nil
}
