package transport

import (
	"github.com/peer-calls/trackpub/server/atomic"
	"github.com/peer-calls/trackpub/server/uuid"
	"github.com/pion/webrtc/v3"
)

// SimpleLocalTrack is an in-memory local track. It starts enabled.
type SimpleLocalTrack struct {
	id      string
	name    string
	kind    TrackKind
	enabled atomic.Bool
}

var _ EnableableTrack = &SimpleLocalTrack{}

// NewSimpleLocalTrack creates an enabled local track. When id is empty a new
// track sid is generated.
func NewSimpleLocalTrack(id string, name string, kind TrackKind) *SimpleLocalTrack {
	if id == "" {
		id = uuid.NewTrackSID().String()
	}

	t := &SimpleLocalTrack{
		id:   id,
		name: name,
		kind: kind,
	}

	t.enabled.Set(true)

	return t
}

// NewLocalTrackFromPion wraps a track that will be added to a pion peer
// connection. The track stream ID becomes the name.
func NewLocalTrackFromPion(track webrtc.TrackLocal) *SimpleLocalTrack {
	return NewSimpleLocalTrack(track.ID(), track.StreamID(), NewTrackKind(track.Kind()))
}

func (t *SimpleLocalTrack) ID() string {
	return t.id
}

func (t *SimpleLocalTrack) Name() string {
	return t.name
}

func (t *SimpleLocalTrack) Kind() TrackKind {
	return t.kind
}

func (t *SimpleLocalTrack) Enabled() bool {
	return t.enabled.Get()
}

func (t *SimpleLocalTrack) SetEnabled(enabled bool) bool {
	return t.enabled.Swap(enabled)
}
