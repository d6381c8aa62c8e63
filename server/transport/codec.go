package transport

import (
	"strings"

	"github.com/pion/webrtc/v3"
)

type Codec struct {
	MimeType    string `json:"mimeType"`
	ClockRate   uint32 `json:"clockRate"`
	Channels    uint16 `json:"channels"`
	SDPFmtpLine string `json:"sdpFmtpLine"`
}

// TrackKind returns the kind of media this codec encodes.
func (c Codec) TrackKind() TrackKind {
	if strings.HasPrefix(c.MimeType, "audio/") {
		return TrackKindAudio
	}

	return TrackKindVideo
}

// TrackKind is the closed set of track kinds a publication can have.
type TrackKind string

const (
	TrackKindAudio TrackKind = "audio"
	TrackKindVideo TrackKind = "video"
	TrackKindData  TrackKind = "data"
)

func (t TrackKind) String() string {
	return string(t)
}

// Valid reports whether t is one of the known kinds.
func (t TrackKind) Valid() bool {
	switch t {
	case TrackKindAudio, TrackKindVideo, TrackKindData:
		return true
	default:
		return false
	}
}

// NewTrackKind converts a pion codec type. Data tracks have no codec type so
// anything other than audio or video returns an empty kind.
func NewTrackKind(codecType webrtc.RTPCodecType) TrackKind {
	switch codecType {
	case webrtc.RTPCodecTypeAudio:
		return TrackKindAudio
	case webrtc.RTPCodecTypeVideo:
		return TrackKindVideo
	default:
		return ""
	}
}

// RTPCodecType returns zero for data tracks.
func (t TrackKind) RTPCodecType() webrtc.RTPCodecType {
	switch t {
	case TrackKindAudio:
		return webrtc.RTPCodecTypeAudio
	case TrackKindVideo:
		return webrtc.RTPCodecTypeVideo
	case TrackKindData:
		fallthrough
	default:
		return 0
	}
}
