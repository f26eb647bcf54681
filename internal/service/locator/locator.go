// Package locator implements the Partner Locator: a stateless, side-effect-free
// query ranking available couriers around a pickup point.
package locator

import (
	"context"
	"fmt"
	"sort"

	"courier-dispatch/internal/apperr"
	"courier-dispatch/internal/domain"
)

// Service ranks available couriers by distance from an origin.
type Service struct {
	directory CourierDirectory
}

// NewService creates a new locator Service.
func NewService(directory CourierDirectory) *Service {
	return &Service{directory: directory}
}

// FindCandidates returns at most limit available couriers within
// min(radiusKm, courier.MaxRadiusKm) of origin, ascending by distance, ties
// broken by courier id. An empty result is valid, not an error.
func (s *Service) FindCandidates(ctx context.Context, origin domain.Point, radiusKm float64, excludeIDs []int64, limit int) ([]domain.Candidate, error) {
	if !origin.Valid() {
		return nil, fmt.Errorf("%w: origin out of bounds", apperr.ErrInvalid)
	}
	if radiusKm <= 0 {
		return nil, fmt.Errorf("%w: radius must be positive", apperr.ErrInvalid)
	}
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", apperr.ErrInvalid)
	}

	couriers, err := s.directory.ListAvailable(ctx, excludeIDs)
	if err != nil {
		return nil, fmt.Errorf("locator: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(couriers))
	for _, c := range couriers {
		dist := domain.DistanceKm(origin, c.Location)
		reach := radiusKm
		if c.MaxRadiusKm > 0 && c.MaxRadiusKm < reach {
			reach = c.MaxRadiusKm
		}
		if dist > reach {
			continue
		}
		candidates = append(candidates, domain.Candidate{CourierID: c.ID, DistanceKm: dist})
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].DistanceKm != candidates[j].DistanceKm {
			return candidates[i].DistanceKm < candidates[j].DistanceKm
		}
		return candidates[i].CourierID < candidates[j].CourierID
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates, nil
}
