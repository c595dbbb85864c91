package pharmacy

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pharmagarde/pharmagarde/modules/account"
	"github.com/pharmagarde/pharmagarde/pkg/apperror"
	"github.com/pharmagarde/pharmagarde/pkg/logger"
	"github.com/pharmagarde/pharmagarde/pkg/retry"
	"github.com/pharmagarde/pharmagarde/pkg/sanitizer"
)

type Service struct {
	store    Store
	accounts account.Provider
	retrier  *retry.Retrier
	logger   *slog.Logger
	now      func() time.Time
}

type Option func(*Service)

// WithRetrier replaces the default retrier, which retries failures
// apperror.Retryable accepts up to three times.
func WithRetrier(r *retry.Retrier) Option {
	return func(s *Service) {
		if r != nil {
			s.retrier = r
		}
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

func NewService(store Store, accounts account.Provider, opts ...Option) *Service {
	s := &Service{
		store:    store,
		accounts: accounts,
		logger:   slog.New(slog.DiscardHandler),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.retrier == nil {
		s.retrier = retry.New(retry.WithRetryIf(apperror.Retryable), retry.WithLogger(s.logger))
	}
	return s
}

// Register validates the form, creates the pharmacist account and its
// listing. The listing starts closed and unverified and shares the id of its
// owner. Invalid forms fail with validator.ValidationErrors before any
// remote call; remote failures come back as *apperror.Error.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Pharmacy, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	email := sanitizer.NormalizeEmail(in.Email)
	info := in.info().sanitize()

	user, err := retry.Do(ctx, s.retrier, func(ctx context.Context) (*account.User, error) {
		return s.accounts.SignUp(ctx, email, in.Password, account.RolePharmacist)
	})
	if err != nil {
		return nil, s.fail(ctx, "sign-up failed", err)
	}

	p := &Pharmacy{
		ID:        user.ID,
		OwnerID:   user.ID,
		Status:    StatusClosed,
		Verified:  false,
		CreatedAt: s.now().UTC(),
	}
	p.apply(info)

	if err := s.retrier.Run(ctx, func(ctx context.Context) error {
		return s.store.Create(ctx, p)
	}); err != nil {
		return nil, s.fail(ctx, "listing creation failed after sign-up", err, logger.UserID(user.ID.String()))
	}

	s.logger.InfoContext(ctx, "pharmacy registered",
		logger.PharmacyID(p.ID.String()),
		slog.String("city", p.City),
		logger.Component("pharmacy"),
	)
	return p, nil
}

// Mine returns the listing owned by ownerID.
func (s *Service) Mine(ctx context.Context, ownerID uuid.UUID) (*Pharmacy, error) {
	p, err := s.get(ctx, ownerID)
	if err != nil {
		return nil, s.fail(ctx, "failed to load own pharmacy", err)
	}
	return p, nil
}

// ToggleStatus switches the listing of ownerID between on duty and closed.
func (s *Service) ToggleStatus(ctx context.Context, ownerID uuid.UUID) (*Pharmacy, error) {
	return s.toggleStatus(ctx, ownerID)
}

// UpdateInfo replaces the editable fields of the listing of ownerID.
func (s *Service) UpdateInfo(ctx context.Context, ownerID uuid.UUID, info Info) (*Pharmacy, error) {
	if err := info.Validate(); err != nil {
		return nil, err
	}
	info = info.sanitize()

	if err := s.retrier.Run(ctx, func(ctx context.Context) error {
		return s.store.Update(ctx, ownerID, info)
	}); err != nil {
		return nil, s.fail(ctx, "failed to update pharmacy", err, logger.PharmacyID(ownerID.String()))
	}
	return s.Mine(ctx, ownerID)
}

// Search returns the verified on-duty listings of q.City (every city when
// empty) whose name, pharmacist name or address contains q.Term, ignoring
// case and accents.
func (s *Service) Search(ctx context.Context, q Query) ([]Pharmacy, error) {
	list, err := retry.Do(ctx, s.retrier, func(ctx context.Context) ([]Pharmacy, error) {
		return s.store.ListOnDuty(ctx, q.City)
	})
	if err != nil {
		return nil, s.fail(ctx, "search failed", err)
	}

	term := sanitizer.Fold(sanitizer.SingleSpace(q.Term))
	if term == "" {
		return list, nil
	}

	out := make([]Pharmacy, 0, len(list))
	for _, p := range list {
		if matches(p, term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func matches(p Pharmacy, folded string) bool {
	for _, field := range []string{p.Name, p.PharmacistName, p.Address} {
		if sanitizer.ContainsFold(field, folded) {
			return true
		}
	}
	return false
}

// List returns every listing matching f, newest first.
func (s *Service) List(ctx context.Context, f Filter) ([]Pharmacy, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return nil, s.fail(ctx, "failed to list pharmacies", err)
	}

	out := make([]Pharmacy, 0, len(all))
	for _, p := range all {
		if f.match(p) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Stats counts listings for the admin dashboard.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	all, err := s.listAll(ctx)
	if err != nil {
		return Stats{}, s.fail(ctx, "failed to compute stats", err)
	}

	st := Stats{Total: len(all)}
	for _, p := range all {
		if p.Verified {
			st.Verified++
		} else {
			st.Unverified++
		}
		if p.Status == StatusOnDuty {
			st.OnDuty++
		}
	}
	return st, nil
}

// ToggleVerified grants or withdraws the verification of listing id.
func (s *Service) ToggleVerified(ctx context.Context, id uuid.UUID) (*Pharmacy, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to load pharmacy", err)
	}

	from := p.Verified
	p.Verified = !from
	if err := s.retrier.Run(ctx, func(ctx context.Context) error {
		return s.store.SetVerified(ctx, id, from, p.Verified)
	}); err != nil {
		return nil, s.fail(ctx, "failed to update verification", err, logger.PharmacyID(id.String()))
	}

	s.logger.InfoContext(ctx, "pharmacy verification changed",
		logger.PharmacyID(id.String()),
		slog.Bool("verified", p.Verified),
		logger.Component("pharmacy"),
	)
	return p, nil
}

// ToggleStatusByAdmin switches the status of any listing.
func (s *Service) ToggleStatusByAdmin(ctx context.Context, id uuid.UUID) (*Pharmacy, error) {
	return s.toggleStatus(ctx, id)
}

func (s *Service) toggleStatus(ctx context.Context, id uuid.UUID) (*Pharmacy, error) {
	p, err := s.get(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "failed to load pharmacy", err)
	}

	from := p.Status
	p.Status = from.Toggle()
	if err := s.retrier.Run(ctx, func(ctx context.Context) error {
		return s.store.SetStatus(ctx, id, from, p.Status)
	}); err != nil {
		return nil, s.fail(ctx, "failed to update status", err, logger.PharmacyID(id.String()))
	}
	return p, nil
}

func (s *Service) get(ctx context.Context, id uuid.UUID) (*Pharmacy, error) {
	return retry.Do(ctx, s.retrier, func(ctx context.Context) (*Pharmacy, error) {
		return s.store.Get(ctx, id)
	})
}

func (s *Service) listAll(ctx context.Context) ([]Pharmacy, error) {
	return retry.Do(ctx, s.retrier, func(ctx context.Context) ([]Pharmacy, error) {
		return s.store.ListAll(ctx)
	})
}

// fail classifies err and logs it.
func (s *Service) fail(ctx context.Context, msg string, err error, attrs ...slog.Attr) *apperror.Error {
	classified := apperror.Classify(err)
	args := []any{
		logger.Error(err),
		logger.ErrorKind(classified.Kind.String()),
		logger.Component("pharmacy"),
	}
	for _, a := range attrs {
		args = append(args, a)
	}
	s.logger.WarnContext(ctx, msg, args...)
	return classified
}
