package test

import "github.com/peer-calls/trackpub/server/transport"

// StaticLocalTrack is a LocalTrack whose enabled state cannot be changed.
type StaticLocalTrack struct {
	transport.SimpleTrack
	IsEnabled bool
}

var _ transport.LocalTrack = StaticLocalTrack{}

func NewStaticLocalTrack(id string, name string, kind transport.TrackKind, enabled bool) StaticLocalTrack {
	return StaticLocalTrack{
		SimpleTrack: transport.NewSimpleTrack(id, name, kind),
		IsEnabled:   enabled,
	}
}

func (t StaticLocalTrack) Enabled() bool {
	return t.IsEnabled
}
