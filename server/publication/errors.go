package publication

import "github.com/juju/errors"

var (
	// ErrTrackInvalid is returned when a track descriptor cannot be
	// represented as a publication.
	ErrTrackInvalid = errors.New("track invalid")

	ErrTrackKindMismatch  = errors.New("track kind does not match publication kind")
	ErrTrackNotEnableable = errors.New("track cannot be enabled or disabled")
	ErrPriorityInvalid    = errors.New("invalid priority")
	ErrTrackNotFound      = errors.New("track not found")
	ErrTrackExists        = errors.New("track already published")
)
