package transport

import (
	"encoding/json"

	"github.com/juju/errors"
	"github.com/pion/webrtc/v3"
)

// SimpleTrack is an immutable Track value, used for decoded remote tracks.
type SimpleTrack struct {
	id    string
	name  string
	kind  TrackKind
	codec Codec
}

var _ Track = SimpleTrack{}

func NewSimpleTrack(id string, name string, kind TrackKind) SimpleTrack {
	return SimpleTrack{
		id:   id,
		name: name,
		kind: kind,
	}
}

// PionRemoteTrack is the part of *webrtc.TrackRemote read by
// NewRemoteTrackFromPion.
type PionRemoteTrack interface {
	ID() string
	StreamID() string
	Kind() webrtc.RTPCodecType
	Codec() webrtc.RTPCodecParameters
}

var _ PionRemoteTrack = &webrtc.TrackRemote{}

// NewRemoteTrackFromPion snapshots the identity of a track received by a
// pion peer connection. The stream ID is used as the track name.
func NewRemoteTrackFromPion(track PionRemoteTrack) SimpleTrack {
	params := track.Codec()

	return SimpleTrack{
		id:   track.ID(),
		name: track.StreamID(),
		kind: NewTrackKind(track.Kind()),
		codec: Codec{
			MimeType:    params.MimeType,
			ClockRate:   params.ClockRate,
			Channels:    params.Channels,
			SDPFmtpLine: params.SDPFmtpLine,
		},
	}
}

// WithCodec returns a copy of the track with codec set.
func (s SimpleTrack) WithCodec(codec Codec) SimpleTrack {
	s.codec = codec

	return s
}

func (s SimpleTrack) ID() string {
	return s.id
}

func (s SimpleTrack) Name() string {
	return s.name
}

func (s SimpleTrack) Kind() TrackKind {
	return s.kind
}

func (s SimpleTrack) Codec() Codec {
	return s.codec
}

type TrackJSON struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Kind  TrackKind `json:"kind"`
	Codec Codec     `json:"codec"`
}

func (s SimpleTrack) MarshalJSON() ([]byte, error) {
	return json.Marshal(TrackJSON{
		ID:    s.id,
		Name:  s.name,
		Kind:  s.kind,
		Codec: s.codec,
	})
}

func (s *SimpleTrack) UnmarshalJSON(data []byte) error {
	j := TrackJSON{}

	err := json.Unmarshal(data, &j)

	s.id = j.ID
	s.name = j.Name
	s.kind = j.Kind
	s.codec = j.Codec

	return errors.Annotatef(err, "unmarshal simple track json")
}
