package signaling

import (
	"io"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/transport"
	"gopkg.in/yaml.v2"
)

// EventType is the kind of track update received from the signaling server.
type EventType string

const (
	EventTypePublish     EventType = "publish"
	EventTypeUpdate      EventType = "update"
	EventTypeSubscribe   EventType = "subscribe"
	EventTypeUnsubscribe EventType = "unsubscribe"
	EventTypeUnpublish   EventType = "unpublish"
)

// Event carries a track descriptor. For subscribe events the descriptor also
// describes the decoded track delivered by the transport.
type Event struct {
	Type  EventType           `json:"type" yaml:"type"`
	Track transport.TrackInfo `json:"track" yaml:"track"`
}

// ReadEvents decodes a YAML list of events. JSON input is accepted too.
func ReadEvents(reader io.Reader) ([]Event, error) {
	var events []Event

	decoder := yaml.NewDecoder(reader)

	if err := decoder.Decode(&events); err != nil {
		if errors.Cause(err) == io.EOF {
			return nil, nil
		}

		return nil, errors.Annotate(err, "decode events")
	}

	return events, nil
}
