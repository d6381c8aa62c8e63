package transport

import (
	"testing"

	"github.com/pion/webrtc/v3"
	"github.com/stretchr/testify/assert"
)

func TestCodec(t *testing.T) {
	audio := Codec{
		MimeType:  "audio/opus",
		ClockRate: 48000,
		Channels:  2,
	}

	video := Codec{
		MimeType:  "video/vp8",
		ClockRate: 90000,
	}

	assert.Equal(t, TrackKindAudio, audio.TrackKind())
	assert.Equal(t, TrackKindVideo, video.TrackKind())
}

func TestTrackKind_RTPCodecType(t *testing.T) {
	assert.Equal(t, webrtc.RTPCodecTypeAudio, TrackKindAudio.RTPCodecType())
	assert.Equal(t, webrtc.RTPCodecTypeVideo, TrackKindVideo.RTPCodecType())
	assert.Equal(t, webrtc.RTPCodecType(0), TrackKindData.RTPCodecType())

	assert.Equal(t, TrackKindAudio, NewTrackKind(webrtc.RTPCodecTypeAudio))
	assert.Equal(t, TrackKindVideo, NewTrackKind(webrtc.RTPCodecTypeVideo))
	assert.Equal(t, TrackKind(""), NewTrackKind(webrtc.RTPCodecType(0)))
}

func TestTrackKind_Valid(t *testing.T) {
	assert.True(t, TrackKindAudio.Valid())
	assert.True(t, TrackKindVideo.Valid())
	assert.True(t, TrackKindData.Valid())
	assert.False(t, TrackKind("").Valid())
	assert.False(t, TrackKind("screen").Valid())
}
