package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/cli"
	"github.com/peer-calls/trackpub/server/config"
	"github.com/peer-calls/trackpub/server/publication"
	"github.com/peer-calls/trackpub/server/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const events = `
- type: publish
  track: {sid: TR_2, name: x, type: SCREEN_SHARE}
- type: publish
  track: {sid: TR_1, name: cam, type: VIDEO}
- type: publish
  track: {sid: TR_0, name: mic, type: AUDIO}
- type: subscribe
  track: {sid: TR_1, name: cam, type: VIDEO}
- type: update
  track: {sid: TR_1, name: camera-renamed, type: VIDEO}
`

func writeFile(t *testing.T, name string, contents string) string {
	t.Helper()

	filename := filepath.Join(t.TempDir(), name)

	require.NoError(t, os.WriteFile(filename, []byte(contents), 0o600))

	return filename
}

func exec(args ...string) (string, error) {
	var stdout, stderr bytes.Buffer

	err := cli.Exec(context.Background(), cli.Props{
		Log:     test.NewLogger(),
		Version: "v1.2.3",
		Args:    args,
		Stdout:  &stdout,
		Stderr:  &stderr,
	})

	return stdout.String(), err
}

func setup(t *testing.T) {
	t.Helper()

	test.UnsetEnvPrefix(config.EnvPrefix)
	os.Setenv(config.EnvPrefix+"LOG_LEVELS", ":disabled")

	t.Cleanup(func() {
		test.UnsetEnvPrefix(config.EnvPrefix)
	})
}

func TestReplay(t *testing.T) {
	setup(t)

	filename := writeFile(t, "events.yml", events)

	out, err := exec("replay", filename)
	require.NoError(t, err)

	assert.Equal(t, ""+
		"SID   KIND   LOCALITY  NAME            SUBSCRIBED\n"+
		"TR_0  audio  remote    mic             false\n"+
		"TR_1  video  remote    camera-renamed  true\n",
		out)
}

func TestReplay_Strict(t *testing.T) {
	setup(t)

	filename := writeFile(t, "events.yml", events)

	_, err := exec("replay", "--strict", filename)
	require.Error(t, err)
	assert.Equal(t, publication.ErrTrackInvalid, errors.Cause(err))
}

func TestReplay_ConfigFile(t *testing.T) {
	setup(t)

	filename := writeFile(t, "events.yml", events)
	configFile := writeFile(t, "config.yml", "replay:\n  strict: true\n  file: "+filename+"\n")

	_, err := exec("replay", "-c", configFile)
	require.Error(t, err)
	assert.Equal(t, publication.ErrTrackInvalid, errors.Cause(err))
}

func TestReplay_NoFile(t *testing.T) {
	setup(t)

	_, err := exec("replay")
	assert.Equal(t, cli.ErrNoEventsFile, errors.Cause(err))

	_, err = exec("replay", "/missing/events.yml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open events file")
}

func TestVersion(t *testing.T) {
	out, err := exec("version")
	require.NoError(t, err)
	assert.Equal(t, "trackpub v1.2.3\n", out)
}
