package publication

import (
	"reflect"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/identifiers"
	"github.com/peer-calls/trackpub/server/transport"
)

// RemoteTrackPublication is a track advertised by a remote participant. It is
// subscribed while it holds a reference to the decoded track. The reference
// is never owned: clearing it does not close the track.
//
// The kind acts as the variant tag. Audio and video publications only accept
// tracks of their own kind and data publications never hold a track.
type RemoteTrackPublication struct {
	Publication

	track transport.Track
}

// NewRemoteTrackPublication creates an unsubscribed publication.
func NewRemoteTrackPublication(kind transport.TrackKind, sid identifiers.TrackSID, name string) *RemoteTrackPublication {
	return &RemoteTrackPublication{
		Publication: newPublication(kind, sid, name),
	}
}

func NewRemoteAudioTrackPublication(info transport.TrackInfo) *RemoteTrackPublication {
	return NewRemoteTrackPublication(transport.TrackKindAudio, info.SID, info.Name)
}

func NewRemoteVideoTrackPublication(info transport.TrackInfo) *RemoteTrackPublication {
	return NewRemoteTrackPublication(transport.TrackKindVideo, info.SID, info.Name)
}

func NewRemoteDataTrackPublication(info transport.TrackInfo) *RemoteTrackPublication {
	return NewRemoteTrackPublication(transport.TrackKindData, info.SID, info.Name)
}

// IsSubscribed reports whether decoded media is available.
func (p *RemoteTrackPublication) IsSubscribed() bool {
	return p.track != nil
}

// Track returns the attached track, if any.
func (p *RemoteTrackPublication) Track() (transport.Track, bool) {
	return p.track, p.track != nil
}

// UpdateMetadata overwrites sid and name from a descriptor of the same track.
// It notifies observers once per call.
func (p *RemoteTrackPublication) UpdateMetadata(info transport.TrackInfo) {
	p.setMetadata(info.SID, info.Name)
}

// SetTrack attaches the decoded track, replacing any previous one, and
// notifies observers. A nil track, including a typed nil pointer, detaches.
func (p *RemoteTrackPublication) SetTrack(track transport.Track) error {
	if isNilTrack(track) {
		p.ClearTrack()

		return nil
	}

	if p.kind == transport.TrackKindData || track.Kind() != p.kind {
		return errors.Annotatef(ErrTrackKindMismatch,
			"set track: sid: %s, publication kind: %s, track kind: %s", p.sid, p.kind, track.Kind())
	}

	p.track = track
	p.notify()

	return nil
}

// ClearTrack drops the track reference and reports whether one was attached.
func (p *RemoteTrackPublication) ClearTrack() bool {
	if p.track == nil {
		return false
	}

	p.track = nil
	p.notify()

	return true
}

func isNilTrack(track transport.Track) bool {
	if track == nil {
		return true
	}

	v := reflect.ValueOf(track)

	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
