package domain

import "regexp"

type (
	// BroadcastPhase is the candidate-scope window of a broadcast.
	BroadcastPhase string
	// BroadcastStatus is the lifecycle state of a broadcast.
	BroadcastStatus string
	// RequestStatus is the lifecycle state of a single offer.
	RequestStatus string
)

// Broadcast phases.
const (
	PhaseControlledParallel BroadcastPhase = "controlled_parallel"
	PhaseExtended           BroadcastPhase = "extended"
)

// Broadcast statuses. Searching is the only non-terminal one.
const (
	BroadcastSearching BroadcastStatus = "searching"
	BroadcastAssigned  BroadcastStatus = "assigned"
	BroadcastFailed    BroadcastStatus = "failed"
)

// Request statuses. Pending is the only non-terminal one.
const (
	RequestPending    RequestStatus = "pending"
	RequestAccepted   RequestStatus = "accepted"
	RequestRejected   RequestStatus = "rejected"
	RequestExpired    RequestStatus = "expired"
	RequestSuperseded RequestStatus = "superseded"
)

var allowedPhases = [...]BroadcastPhase{
	PhaseControlledParallel, PhaseExtended,
}

var allowedBroadcastStatuses = [...]BroadcastStatus{
	BroadcastSearching, BroadcastAssigned, BroadcastFailed,
}

var allowedRequestStatuses = [...]RequestStatus{
	RequestPending, RequestAccepted, RequestRejected, RequestExpired, RequestSuperseded,
}

// Valid checks if the BroadcastPhase is valid.
func (p BroadcastPhase) Valid() bool {
	for _, v := range allowedPhases {
		if p == v {
			return true
		}
	}
	return false
}

// Valid checks if the BroadcastStatus is valid.
func (s BroadcastStatus) Valid() bool {
	for _, v := range allowedBroadcastStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the RequestStatus is valid.
func (s RequestStatus) Valid() bool {
	for _, v := range allowedRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Terminal reports whether the request status is final. A request leaves
// pending exactly once.
func (s RequestStatus) Terminal() bool {
	return s != RequestPending && s.Valid()
}

// rePhone is a regex to validate phone numbers
var rePhone = regexp.MustCompile(`^\+[0-9]{11}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
