package signaling_test

import (
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/clock"
	"github.com/peer-calls/trackpub/server/publication"
	"github.com/peer-calls/trackpub/server/signaling"
	"github.com/peer-calls/trackpub/server/test"
	"github.com/peer-calls/trackpub/server/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const eventsYAML = `
- type: publish
  track: {sid: TR_1, name: cam, type: VIDEO}
- type: publish
  track: {sid: TR_2, name: x, type: SCREEN_SHARE}
- type: publish
  track: {sid: TR_3, name: mic, type: AUDIO}
- type: subscribe
  track: {sid: TR_1, name: cam, type: VIDEO}
- type: update
  track: {sid: TR_1, name: camera-renamed, type: VIDEO}
- type: update
  track: {sid: TR_404, name: ghost, type: VIDEO}
- type: subscribe
  track: {sid: TR_3, name: mic, type: AUDIO}
- type: unsubscribe
  track: {sid: TR_3}
- type: unpublish
  track: {sid: TR_3}
`

func newHandler(strict bool) (*signaling.Handler, *publication.Registry) {
	registry := publication.NewRegistry(test.NewLogger(), clock.NewMock())

	handler := signaling.NewHandler(signaling.HandlerParams{
		Log:      test.NewLogger(),
		Registry: registry,
		Strict:   strict,
	})

	return handler, registry
}

func TestReadEvents(t *testing.T) {
	events, err := signaling.ReadEvents(strings.NewReader(eventsYAML))
	require.NoError(t, err)
	require.Len(t, events, 9)

	assert.Equal(t, signaling.Event{
		Type: signaling.EventTypePublish,
		Track: transport.TrackInfo{
			SID:  "TR_1",
			Name: "cam",
			Type: transport.TrackInfoTypeVideo,
		},
	}, events[0])

	assert.Equal(t, transport.TrackInfoType("SCREEN_SHARE"), events[1].Track.Type)
}

func TestReadEvents_JSON(t *testing.T) {
	events, err := signaling.ReadEvents(strings.NewReader(
		`[{"type": "publish", "track": {"sid": "TR_1", "name": "cam", "type": "VIDEO"}}]`))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, transport.TrackInfoTypeVideo, events[0].Track.Type)
}

func TestReadEvents_Empty(t *testing.T) {
	events, err := signaling.ReadEvents(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestReadEvents_Invalid(t *testing.T) {
	_, err := signaling.ReadEvents(strings.NewReader("type: publish"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode events")
}

func TestHandler_DropsInvalid(t *testing.T) {
	events, err := signaling.ReadEvents(strings.NewReader(eventsYAML))
	require.NoError(t, err)

	handler, registry := newHandler(false)

	require.NoError(t, handler.HandleAll(events))

	pubs := registry.RemotePublications()
	require.Len(t, pubs, 1)

	pub := pubs[0]
	assert.Equal(t, "TR_1", pub.SID().String())
	assert.Equal(t, "camera-renamed", pub.Name())
	assert.Equal(t, transport.TrackKindVideo, pub.Kind())
	assert.True(t, pub.IsSubscribed())

	track, ok := pub.Track()
	require.True(t, ok)
	assert.Equal(t, "TR_1", track.ID())
}

func TestHandler_Strict(t *testing.T) {
	events, err := signaling.ReadEvents(strings.NewReader(eventsYAML))
	require.NoError(t, err)

	handler, registry := newHandler(true)

	err = handler.HandleAll(events)
	require.Error(t, err)
	assert.Equal(t, publication.ErrTrackInvalid, errors.Cause(err))
	assert.Contains(t, err.Error(), "event 1")

	assert.Len(t, registry.RemotePublications(), 1)
}

func TestHandler_InvalidEventType(t *testing.T) {
	event := signaling.Event{
		Type:  "mute",
		Track: transport.TrackInfo{SID: "TR_1"},
	}

	handler, _ := newHandler(false)
	assert.NoError(t, handler.Handle(event))

	strictHandler, _ := newHandler(true)
	err := strictHandler.Handle(event)
	assert.Equal(t, signaling.ErrEventTypeInvalid, errors.Cause(err))
}

func TestHandler_SubscribeInvalidType(t *testing.T) {
	handler, registry := newHandler(true)

	require.NoError(t, handler.Handle(signaling.Event{
		Type:  signaling.EventTypePublish,
		Track: transport.TrackInfo{SID: "TR_1", Name: "cam", Type: transport.TrackInfoTypeVideo},
	}))

	err := handler.Handle(signaling.Event{
		Type:  signaling.EventTypeSubscribe,
		Track: transport.TrackInfo{SID: "TR_1", Name: "cam", Type: "HOLOGRAM"},
	})
	assert.Equal(t, publication.ErrTrackInvalid, errors.Cause(err))

	pub, ok := registry.Remote("TR_1")
	require.True(t, ok)
	assert.False(t, pub.IsSubscribed())
}

func TestHandler_UpdateInvalidType(t *testing.T) {
	publish := signaling.Event{
		Type:  signaling.EventTypePublish,
		Track: transport.TrackInfo{SID: "TR_1", Name: "cam", Type: transport.TrackInfoTypeVideo},
	}
	update := signaling.Event{
		Type:  signaling.EventTypeUpdate,
		Track: transport.TrackInfo{SID: "TR_1", Name: "x", Type: "SCREEN_SHARE"},
	}

	handler, registry := newHandler(false)
	require.NoError(t, handler.Handle(publish))
	assert.NoError(t, handler.Handle(update))

	pub, ok := registry.Remote("TR_1")
	require.True(t, ok)
	assert.Equal(t, "cam", pub.Name())

	strictHandler, strictRegistry := newHandler(true)
	require.NoError(t, strictHandler.Handle(publish))

	err := strictHandler.Handle(update)
	assert.Equal(t, publication.ErrTrackInvalid, errors.Cause(err))

	pub, ok = strictRegistry.Remote("TR_1")
	require.True(t, ok)
	assert.Equal(t, "cam", pub.Name())
}
