package publication

import (
	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/identifiers"
	"github.com/peer-calls/trackpub/server/transport"
)

// LocalTrackPublication is a track sent by the local participant. The track
// is bound at construction and never released.
type LocalTrackPublication struct {
	Publication

	track    transport.LocalTrack
	priority Priority
}

// NewLocalTrackPublication binds track to a new publication. The kind must
// match the track kind. It panics when track is nil.
func NewLocalTrackPublication(kind transport.TrackKind, track transport.LocalTrack) *LocalTrackPublication {
	if track == nil {
		panic("publication: nil local track")
	}

	return &LocalTrackPublication{
		Publication: newPublication(kind, identifiers.TrackSID(track.ID()), track.Name()),
		track:       track,
	}
}

func NewLocalAudioTrackPublication(track transport.LocalTrack) *LocalTrackPublication {
	return NewLocalTrackPublication(transport.TrackKindAudio, track)
}

func NewLocalVideoTrackPublication(track transport.LocalTrack) *LocalTrackPublication {
	return NewLocalTrackPublication(transport.TrackKindVideo, track)
}

func (p *LocalTrackPublication) Track() transport.LocalTrack {
	return p.track
}

// IsTrackEnabled reads the live enabled state of the bound track.
func (p *LocalTrackPublication) IsTrackEnabled() bool {
	return p.track.Enabled()
}

func (p *LocalTrackPublication) Priority() Priority {
	return p.priority
}

// SetPriority sets the bandwidth hint. PriorityUnset clears it.
func (p *LocalTrackPublication) SetPriority(priority Priority) error {
	if err := priority.validate(); err != nil {
		return errors.Annotatef(err, "set priority: sid: %s", p.sid)
	}

	if p.priority == priority {
		return nil
	}

	p.priority = priority
	p.notify()

	return nil
}

func (p *LocalTrackPublication) Mute() error {
	return errors.Annotatef(p.setTrackEnabled(false), "mute: sid: %s", p.sid)
}

func (p *LocalTrackPublication) Unmute() error {
	return errors.Annotatef(p.setTrackEnabled(true), "unmute: sid: %s", p.sid)
}

func (p *LocalTrackPublication) setTrackEnabled(enabled bool) error {
	track, ok := p.track.(transport.EnableableTrack)
	if !ok {
		return errors.Trace(ErrTrackNotEnableable)
	}

	if track.SetEnabled(enabled) {
		p.notify()
	}

	return nil
}
