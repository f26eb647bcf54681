package courier

import (
	"context"
	"strings"
	"time"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// Service coordinates courier directory logic and orchestrates repository calls.
type Service struct {
	repo             courierRepository
	operationTimeout time.Duration
}

// NewService creates and configures a courier Service.
func NewService(r courierRepository, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	return &Service{repo: r, operationTimeout: timeout}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// validateCreate validates a courier for registration.
func validateCreate(c *domain.Courier) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	if strings.TrimSpace(c.Name) == "" {
		return apperr.ErrInvalid
	}
	if !domain.ValidatePhone(c.Phone) {
		return apperr.ErrInvalid
	}
	if !c.Location.Valid() {
		return apperr.ErrInvalid
	}
	if c.MaxRadiusKm < 0 {
		return apperr.ErrInvalid
	}
	return nil
}

// Get retrieves a courier by its ID.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Courier, error) {
	if id <= 0 {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// Create registers a courier and returns its generated ID. New couriers start
// available at the position they report.
func (s *Service) Create(ctx context.Context, c *domain.Courier) (int64, error) {
	if err := validateCreate(c); err != nil {
		return 0, err
	}
	c.Available = true
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.Create(ctx, c)
}

// UpdateLocation stores the courier's latest reported position.
func (s *Service) UpdateLocation(ctx context.Context, id int64, p domain.Point) error {
	if id <= 0 || !p.Valid() {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.UpdateLocation(ctx, id, p)
}

// SetAvailability lets a courier go on or off shift.
func (s *Service) SetAvailability(ctx context.Context, id int64, available bool) error {
	if id <= 0 {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.SetAvailability(ctx, id, available)
}
