package transport

import (
	"github.com/peer-calls/trackpub/server/identifiers"
)

// TrackInfoType is the type tag of a track descriptor as sent by signaling.
// It is an open set: values other than the constants below can arrive and
// must be rejected by whoever narrows them to a TrackKind.
type TrackInfoType string

const (
	TrackInfoTypeAudio TrackInfoType = "AUDIO"
	TrackInfoTypeVideo TrackInfoType = "VIDEO"
	TrackInfoTypeData  TrackInfoType = "DATA"
)

func (t TrackInfoType) String() string {
	return string(t)
}

// TrackKind narrows the type tag. The second return value is false for
// unsupported tags.
func (t TrackInfoType) TrackKind() (TrackKind, bool) {
	switch t {
	case TrackInfoTypeAudio:
		return TrackKindAudio, true
	case TrackInfoTypeVideo:
		return TrackKindVideo, true
	case TrackInfoTypeData:
		return TrackKindData, true
	default:
		return "", false
	}
}

// NewTrackInfoType is the inverse of TrackInfoType.TrackKind.
func NewTrackInfoType(kind TrackKind) TrackInfoType {
	switch kind {
	case TrackKindAudio:
		return TrackInfoTypeAudio
	case TrackKindVideo:
		return TrackInfoTypeVideo
	case TrackKindData:
		return TrackInfoTypeData
	default:
		return TrackInfoType(kind)
	}
}

// TrackInfo describes a track before, and independently of, its decoded media
// being available.
type TrackInfo struct {
	SID  identifiers.TrackSID `json:"sid" yaml:"sid"`
	Name string               `json:"name" yaml:"name"`
	Type TrackInfoType        `json:"type" yaml:"type"`
}
