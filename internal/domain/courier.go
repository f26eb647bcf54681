package domain

// Courier represents a delivery courier as seen by the dispatch engine:
// a read-only directory entry plus the availability flag flipped on assignment.
type Courier struct {
	ID          int64
	Name        string
	Phone       string
	Available   bool
	Location    Point
	MaxRadiusKm float64
}

// Candidate is a ranked Partner Locator result.
type Candidate struct {
	CourierID  int64
	DistanceKm float64
}
