package transport

// Track is the minimal surface of a track object owned by the media layer.
// Publications only keep references to tracks and never close them.
type Track interface {
	ID() string
	Name() string
	Kind() TrackKind
}

// LocalTrack is a track produced by the local participant.
type LocalTrack interface {
	Track
	// Enabled reports whether the track is currently sending.
	Enabled() bool
}

// EnableableTrack is a LocalTrack that can be muted and unmuted.
type EnableableTrack interface {
	LocalTrack
	// SetEnabled reports whether the enabled state changed.
	SetEnabled(enabled bool) (changed bool)
}
