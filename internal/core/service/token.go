// Package service provides domain services for UserHub.
package service

import (
	"context"
	"errors"

	"github.com/yndnr/userhub-go/internal/core/domain"
	"github.com/yndnr/userhub-go/internal/storage/filestore"
	"github.com/yndnr/userhub-go/internal/telemetry/logger"
	"github.com/yndnr/userhub-go/internal/telemetry/metric"
)

// TokenService handles authentication token lifecycle operations.
type TokenService struct {
	store   RecordStore
	users   *UserService
	metrics *metric.Registry
}

// NewTokenService creates a new TokenService. Metrics may be nil.
func NewTokenService(store RecordStore, users *UserService, metrics *metric.Registry) *TokenService {
	return &TokenService{
		store:   store,
		users:   users,
		metrics: metrics,
	}
}

// Create issues a new token for the account after checking the password.
func (s *TokenService) Create(ctx context.Context, phone, password string) (*domain.Token, error) {
	if !domain.ValidPhone(phone) || password == "" {
		return nil, domain.ErrValidation.WithDetails("phone and password are required")
	}

	user, err := s.users.Get(ctx, phone)
	if err != nil {
		return nil, err
	}
	if !s.users.VerifyPassword(user, password) {
		return nil, domain.ErrPasswordMismatch
	}

	tok, err := domain.NewToken(phone)
	if err != nil {
		return nil, domain.ErrInternalServer.WithCause(err)
	}

	if err := s.store.Create(CollectionTokens, tok.ID, tok); err != nil {
		return nil, domain.ErrStorage.WithCause(err)
	}

	if s.metrics != nil {
		s.metrics.TokensIssued.Inc()
	}
	logger.L(ctx).Info("token issued", "phone", phone)
	return tok, nil
}

// Get retrieves a token by ID. Expired tokens are still returned; the
// Expires field tells the caller whether it is live.
func (s *TokenService) Get(ctx context.Context, id string) (*domain.Token, error) {
	if !domain.ValidTokenID(id) {
		return nil, domain.ErrValidation.WithDetails("token id must be exactly 20 characters")
	}

	var tok domain.Token
	if err := s.store.Read(CollectionTokens, id, &tok); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, domain.ErrStorage.WithCause(err)
	}
	return &tok, nil
}

// Extend pushes a live token's expiration one hour from now.
// Expired tokens cannot be extended.
func (s *TokenService) Extend(ctx context.Context, id string) (*domain.Token, error) {
	tok, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tok.IsExpired() {
		return nil, domain.ErrTokenExpired
	}

	tok.Extend()

	if err := s.store.Update(CollectionTokens, tok.ID, tok); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, domain.ErrStorage.WithCause(err)
	}

	logger.L(ctx).Debug("token extended", "phone", tok.Phone)
	return tok, nil
}

// Delete revokes a token by ID.
func (s *TokenService) Delete(ctx context.Context, id string) error {
	if !domain.ValidTokenID(id) {
		return domain.ErrValidation.WithDetails("token id must be exactly 20 characters")
	}

	if err := s.store.Delete(CollectionTokens, id); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return domain.ErrTokenNotFound
		}
		return domain.ErrStorage.WithCause(err)
	}

	if s.metrics != nil {
		s.metrics.TokensRevoked.Inc()
	}
	logger.L(ctx).Debug("token deleted")
	return nil
}

// Verify reports whether the token exists, belongs to the given phone
// number, and has not expired. It never returns an error: any failure
// to establish all three facts means the token is not valid.
func (s *TokenService) Verify(ctx context.Context, id, phone string) bool {
	tok, err := s.Get(ctx, id)
	if err != nil {
		return false
	}
	return tok.Phone == phone && !tok.IsExpired()
}
