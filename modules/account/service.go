package account

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmagarde/pharmagarde/pkg/apperror"
	"github.com/pharmagarde/pharmagarde/pkg/logger"
	"github.com/pharmagarde/pharmagarde/pkg/ratelimiter"
	"github.com/pharmagarde/pharmagarde/pkg/sanitizer"
	"github.com/pharmagarde/pharmagarde/pkg/validator"
)

// Provider signs users up and in.
type Provider interface {
	SignUp(ctx context.Context, email, password string, role Role) (*User, error)
	SignIn(ctx context.Context, email, password string) (*User, error)
}

// Service implements Provider over a Storage.
type Service struct {
	storage    Storage
	limiter    *ratelimiter.Limiter
	bcryptCost int
	logger     *slog.Logger
	now        func() time.Time
}

type Option func(*Service)

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) {
		s.bcryptCost = cost
	}
}

// WithLimiter throttles failed sign-in attempts per email.
func WithLimiter(l *ratelimiter.Limiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(storage Storage, opts ...Option) *Service {
	s := &Service{
		storage:    storage,
		bcryptCost: bcrypt.DefaultCost,
		logger:     slog.New(slog.DiscardHandler),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SignUp creates a user. Failures carry the codes auth/invalid-email,
// auth/weak-password and auth/email-already-in-use.
func (s *Service) SignUp(ctx context.Context, email, password string, role Role) (*User, error) {
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	email = sanitizer.NormalizeEmail(email)
	if !validator.Email(email) {
		return nil, coded(apperror.KindInvalidEmail, nil)
	}
	if res := validator.Password(password); !res.IsValid {
		return nil, coded(apperror.KindWeakPassword, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, coded(apperror.KindWeakPassword, err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Role:         role,
		PasswordHash: hash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			return nil, coded(apperror.KindEmailAlreadyInUse, err)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "user signed up",
		logger.UserID(user.ID.String()),
		logger.Role(string(user.Role)),
		logger.Component("account"),
	)
	return user, nil
}

// SignIn checks the credentials. Failures carry the codes
// auth/too-many-requests, auth/user-not-found and auth/wrong-password.
func (s *Service) SignIn(ctx context.Context, email, password string) (*User, error) {
	email = sanitizer.NormalizeEmail(email)

	if s.limiter != nil {
		res, err := s.limiter.Hit(ctx, email)
		if err != nil {
			s.logger.WarnContext(ctx, "sign-in throttle unavailable",
				logger.Error(err),
				logger.Component("account"),
			)
		} else if !res.Allowed() {
			return nil, coded(apperror.KindTooManyRequests, nil)
		}
	}

	user, err := s.storage.GetUserByEmail(ctx, email)
	if errors.Is(err, ErrUserNotFound) {
		return nil, coded(apperror.KindUserNotFound, err)
	}
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, coded(apperror.KindWrongPassword, err)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.WarnContext(ctx, "failed to reset sign-in throttle",
				logger.Error(err),
				logger.Component("account"),
			)
		}
	}
	return user, nil
}
