package handlers

import "courier-dispatch/internal/domain"

type courierDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Available   bool    `json:"available"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	MaxRadiusKm float64 `json:"max_radius_km"`
}

type createCourierRequest struct {
	Name        string  `json:"name"`
	Phone       string  `json:"phone"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	MaxRadiusKm float64 `json:"max_radius_km"`
}

type locationRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func (r createCourierRequest) toModel() *domain.Courier {
	return &domain.Courier{
		Name:        r.Name,
		Phone:       r.Phone,
		Location:    domain.Point{Lat: r.Lat, Lon: r.Lon},
		MaxRadiusKm: r.MaxRadiusKm,
	}
}

func modelToResponse(c domain.Courier) courierDTO {
	return courierDTO{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		Available:   c.Available,
		Lat:         c.Location.Lat,
		Lon:         c.Location.Lon,
		MaxRadiusKm: c.MaxRadiusKm,
	}
}
