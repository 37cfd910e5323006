// Package service provides domain services for UserHub.
package service

import (
	"context"
	"errors"

	"github.com/yndnr/userhub-go/internal/core/domain"
	"github.com/yndnr/userhub-go/internal/storage/filestore"
	"github.com/yndnr/userhub-go/internal/telemetry/logger"
	"github.com/yndnr/userhub-go/internal/telemetry/metric"
	"github.com/yndnr/userhub-go/pkg/token"
)

// UserService handles user account lifecycle operations.
type UserService struct {
	store         RecordStore
	hashingSecret string
	metrics       *metric.Registry
}

// NewUserService creates a new UserService. The hashing secret keys the
// password hash; metrics may be nil.
func NewUserService(store RecordStore, hashingSecret string, metrics *metric.Registry) *UserService {
	return &UserService{
		store:         store,
		hashingSecret: hashingSecret,
		metrics:       metrics,
	}
}

// CreateUserRequest contains parameters for account creation.
type CreateUserRequest struct {
	FirstName    string
	LastName     string
	Phone        string
	Password     string
	TOSAgreement bool
}

// Create registers a new user account keyed by phone number.
//
// The password is never stored; only its keyed hash is persisted.
func (s *UserService) Create(ctx context.Context, req *CreateUserRequest) (*domain.User, error) {
	if req.FirstName == "" || req.LastName == "" || req.Password == "" {
		return nil, domain.ErrValidation.WithDetails("firstName, lastName and password are required")
	}
	if !domain.ValidPhone(req.Phone) {
		return nil, domain.ErrValidation.WithDetails("phone must be exactly 10 characters")
	}
	if !req.TOSAgreement {
		return nil, domain.ErrValidation.WithDetails("tosAgreement must be accepted")
	}

	user := &domain.User{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Phone:          req.Phone,
		HashedPassword: token.KeyedHash(s.hashingSecret, req.Password),
		TOSAgreement:   true,
	}

	if err := s.store.Create(CollectionUsers, user.Phone, user); err != nil {
		if errors.Is(err, filestore.ErrExists) {
			return nil, domain.ErrUserExists
		}
		return nil, domain.ErrStorage.WithCause(err)
	}

	if s.metrics != nil {
		s.metrics.UsersCreated.Inc()
	}
	logger.L(ctx).Info("user created", "phone", user.Phone)
	return user, nil
}

// Get retrieves a user account by phone number.
func (s *UserService) Get(ctx context.Context, phone string) (*domain.User, error) {
	if !domain.ValidPhone(phone) {
		return nil, domain.ErrValidation.WithDetails("phone must be exactly 10 characters")
	}

	var user domain.User
	if err := s.store.Read(CollectionUsers, phone, &user); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrStorage.WithCause(err)
	}
	return &user, nil
}

// UpdateUserRequest contains the optional fields of an account update.
// At least one field must be set.
type UpdateUserRequest struct {
	Phone     string
	FirstName string
	LastName  string
	Password  string
}

// Update modifies an existing account. Unset fields keep their stored
// values; a new password replaces the stored hash.
func (s *UserService) Update(ctx context.Context, req *UpdateUserRequest) (*domain.User, error) {
	if !domain.ValidPhone(req.Phone) {
		return nil, domain.ErrValidation.WithDetails("phone must be exactly 10 characters")
	}
	if req.FirstName == "" && req.LastName == "" && req.Password == "" {
		return nil, domain.ErrValidation.WithDetails("at least one field to update is required")
	}

	user, err := s.Get(ctx, req.Phone)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Password != "" {
		user.HashedPassword = token.KeyedHash(s.hashingSecret, req.Password)
	}

	if err := s.store.Update(CollectionUsers, user.Phone, user); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrStorage.WithCause(err)
	}

	logger.L(ctx).Info("user updated", "phone", user.Phone)
	return user, nil
}

// Delete removes an account by phone number.
func (s *UserService) Delete(ctx context.Context, phone string) error {
	if !domain.ValidPhone(phone) {
		return domain.ErrValidation.WithDetails("phone must be exactly 10 characters")
	}

	if err := s.store.Delete(CollectionUsers, phone); err != nil {
		if errors.Is(err, filestore.ErrNotFound) {
			return domain.ErrUserNotFound
		}
		return domain.ErrStorage.WithCause(err)
	}

	if s.metrics != nil {
		s.metrics.UsersDeleted.Inc()
	}
	logger.L(ctx).Info("user deleted", "phone", phone)
	return nil
}

// VerifyPassword reports whether the candidate password matches the
// stored hash for the account.
func (s *UserService) VerifyPassword(user *domain.User, password string) bool {
	return token.VerifyKeyedHash(s.hashingSecret, password, user.HashedPassword)
}
