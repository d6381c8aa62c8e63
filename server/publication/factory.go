package publication

import (
	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/transport"
)

// NewRemoteTrackPublicationFromInfo creates the remote publication variant
// matching the descriptor type. Unsupported types return ErrTrackInvalid.
func NewRemoteTrackPublicationFromInfo(info transport.TrackInfo) (*RemoteTrackPublication, error) {
	kind, ok := info.Type.TrackKind()
	if !ok {
		return nil, errors.Annotatef(ErrTrackInvalid, "unsupported trackinfo type: %q, sid: %s", info.Type, info.SID)
	}

	switch kind {
	case transport.TrackKindAudio:
		return NewRemoteAudioTrackPublication(info), nil
	case transport.TrackKindVideo:
		return NewRemoteVideoTrackPublication(info), nil
	default:
		return NewRemoteDataTrackPublication(info), nil
	}
}
