package apperr

import "errors"

// ErrInvalid is returned when the input fails domain validation.
var ErrInvalid = errors.New("invalid input")

// ErrNotFound indicates that the requested resource does not exist.
var ErrNotFound = errors.New("not found")

// ErrConflict indicates a generic uniqueness or state conflict.
var ErrConflict = errors.New("conflict")

// ErrAlreadyActive is returned when an order already has a searching broadcast.
var ErrAlreadyActive = errors.New("broadcast already active for order")

// ErrDuplicateRequest is returned when a non-terminal offer already exists
// for the (broadcast, courier) pair.
var ErrDuplicateRequest = errors.New("duplicate request")

// ErrStaleRequest is returned on accept/reject of an offer that is no longer
// pending or whose window expired.
var ErrStaleRequest = errors.New("stale request")

// ErrAlreadyAssigned is returned when another courier's accept committed first.
var ErrAlreadyAssigned = errors.New("broadcast already assigned")

// ErrNotAuthorized is returned when a courier acts on an offer it does not own.
var ErrNotAuthorized = errors.New("not authorized")
