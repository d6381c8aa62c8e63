package publication_test

import (
	"testing"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/publication"
	"github.com/peer-calls/trackpub/server/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeCounter struct {
	count int
}

func (c *changeCounter) inc() {
	c.count++
}

func TestRemoteTrackPublication_Subscription(t *testing.T) {
	pub, err := publication.NewRemoteTrackPublicationFromInfo(transport.TrackInfo{
		SID:  "TR_1",
		Name: "cam",
		Type: transport.TrackInfoTypeVideo,
	})
	require.NoError(t, err)

	var changes changeCounter

	pub.OnChange(changes.inc)

	assert.False(t, pub.IsSubscribed())

	track, ok := pub.Track()
	assert.False(t, ok)
	assert.Nil(t, track)

	videoTrack := transport.NewSimpleTrack("TR_1", "cam", transport.TrackKindVideo)

	require.NoError(t, pub.SetTrack(videoTrack))
	assert.True(t, pub.IsSubscribed())
	assert.Equal(t, 1, changes.count)

	track, ok = pub.Track()
	assert.True(t, ok)
	assert.Equal(t, videoTrack, track)

	assert.True(t, pub.ClearTrack())
	assert.False(t, pub.IsSubscribed())
	assert.Equal(t, 2, changes.count)

	assert.False(t, pub.ClearTrack())
	assert.Equal(t, 2, changes.count)

	require.NoError(t, pub.SetTrack(videoTrack))
	require.NoError(t, pub.SetTrack(nil))
	assert.False(t, pub.IsSubscribed())
	assert.Equal(t, 4, changes.count)
}

func TestRemoteTrackPublication_SetTrackKindMismatch(t *testing.T) {
	type testCase struct {
		pub   *publication.RemoteTrackPublication
		track transport.Track
	}

	info := transport.TrackInfo{SID: "TR_1", Name: "n"}

	testCases := []testCase{
		{
			pub:   publication.NewRemoteAudioTrackPublication(info),
			track: transport.NewSimpleTrack("TR_1", "n", transport.TrackKindVideo),
		},
		{
			pub:   publication.NewRemoteVideoTrackPublication(info),
			track: transport.NewSimpleTrack("TR_1", "n", transport.TrackKindAudio),
		},
		{
			pub:   publication.NewRemoteDataTrackPublication(info),
			track: transport.NewSimpleTrack("TR_1", "n", transport.TrackKindData),
		},
	}

	for _, tc := range testCases {
		var changes changeCounter

		tc.pub.OnChange(changes.inc)

		err := tc.pub.SetTrack(tc.track)
		require.Error(t, err, "kind: %s", tc.pub.Kind())
		assert.Equal(t, publication.ErrTrackKindMismatch, errors.Cause(err))
		assert.False(t, tc.pub.IsSubscribed())
		assert.Equal(t, 0, changes.count)
	}
}

func TestRemoteTrackPublication_UpdateMetadata(t *testing.T) {
	pub, err := publication.NewRemoteTrackPublicationFromInfo(transport.TrackInfo{
		SID:  "TR_1",
		Name: "cam",
		Type: transport.TrackInfoTypeVideo,
	})
	require.NoError(t, err)

	var changes changeCounter

	pub.OnChange(changes.inc)

	renamed := transport.TrackInfo{
		SID:  "TR_1",
		Name: "camera-renamed",
		Type: transport.TrackInfoTypeVideo,
	}

	pub.UpdateMetadata(renamed)

	assert.Equal(t, "camera-renamed", pub.Name())
	assert.Equal(t, "TR_1", pub.SID().String())
	assert.Equal(t, transport.TrackKindVideo, pub.Kind())
	assert.Equal(t, 1, changes.count)

	pub.UpdateMetadata(renamed)

	assert.Equal(t, "camera-renamed", pub.Name())
	assert.Equal(t, "TR_1", pub.SID().String())
	assert.Equal(t, 2, changes.count)

	pub.UpdateMetadata(transport.TrackInfo{SID: "TR_9", Name: "moved", Type: transport.TrackInfoTypeAudio})

	assert.Equal(t, "TR_9", pub.SID().String())
	assert.Equal(t, transport.TrackKindVideo, pub.Kind(), "kind is immutable")
	assert.Equal(t, 3, changes.count)
}

func TestPublication_OnChange(t *testing.T) {
	pub := publication.NewRemoteTrackPublication(transport.TrackKindAudio, "TR_1", "mic")

	var calls []string

	offA := pub.OnChange(func() {
		calls = append(calls, "a:"+pub.Name())
	})

	var offB func()

	offB = pub.OnChange(func() {
		calls = append(calls, "b:"+pub.Name())
		offB()
	})

	pub.UpdateMetadata(transport.TrackInfo{SID: "TR_1", Name: "one"})
	pub.UpdateMetadata(transport.TrackInfo{SID: "TR_1", Name: "two"})

	offA()
	offA()

	pub.UpdateMetadata(transport.TrackInfo{SID: "TR_1", Name: "three"})

	assert.Equal(t, []string{"a:one", "b:one", "a:two"}, calls)
}

func TestRemoteTrackPublication_SetTrackTypedNil(t *testing.T) {
	pub := publication.NewRemoteTrackPublication(transport.TrackKindVideo, "TR_1", "cam")

	var changes changeCounter
	pub.OnChange(changes.inc)

	require.NoError(t, pub.SetTrack(transport.NewSimpleLocalTrack("TR_1", "cam", transport.TrackKindVideo)))
	assert.True(t, pub.IsSubscribed())

	var track *transport.SimpleLocalTrack

	require.NoError(t, pub.SetTrack(track))
	assert.False(t, pub.IsSubscribed())
	assert.Equal(t, 2, changes.count)

	require.NoError(t, pub.SetTrack(track))
	assert.Equal(t, 2, changes.count)
}
