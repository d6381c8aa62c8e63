package signaling

import (
	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/logger"
	"github.com/peer-calls/trackpub/server/publication"
	"github.com/peer-calls/trackpub/server/transport"
)

var ErrEventTypeInvalid = errors.New("invalid event type")

type HandlerParams struct {
	Log      logger.Logger
	Registry *publication.Registry
	// Strict makes Handle return errors for bad descriptors instead of
	// logging and dropping them.
	Strict bool
}

// Handler applies signaling events to a publication registry.
type Handler struct {
	log      logger.Logger
	registry *publication.Registry
	strict   bool
}

func NewHandler(params HandlerParams) *Handler {
	return &Handler{
		log:      params.Log.WithNamespaceAppended("signaling"),
		registry: params.Registry,
		strict:   params.Strict,
	}
}

// HandleAll stops at the first error returned by Handle.
func (h *Handler) HandleAll(events []Event) error {
	for i, event := range events {
		if err := h.Handle(event); err != nil {
			return errors.Annotatef(err, "event %d", i)
		}
	}

	return nil
}

func (h *Handler) Handle(event Event) error {
	err := h.handle(event)
	if err == nil {
		return nil
	}

	if h.strict || !isDroppable(err) {
		return errors.Trace(err)
	}

	h.log.Warn("Dropping event", logger.Ctx{
		"track_sid": event.Track.SID,
		"type":      event.Type,
		"track":     event.Track.Type,
		"error":     err.Error(),
	})

	return nil
}

func isDroppable(err error) bool {
	switch errors.Cause(err) {
	case publication.ErrTrackInvalid,
		publication.ErrTrackNotFound,
		publication.ErrTrackKindMismatch,
		ErrEventTypeInvalid:
		return true
	default:
		return false
	}
}

func (h *Handler) handle(event Event) error {
	info := event.Track

	h.log.Trace("Handle event", logger.Ctx{
		"track_sid": info.SID,
		"type":      event.Type,
	})

	switch event.Type {
	case EventTypePublish:
		_, err := h.registry.Publish(info)

		return errors.Trace(err)
	case EventTypeUpdate:
		_, err := h.registry.Update(info)

		return errors.Trace(err)
	case EventTypeSubscribe:
		kind, ok := info.Type.TrackKind()
		if !ok {
			return errors.Annotatef(publication.ErrTrackInvalid, "subscribe: unsupported trackinfo type: %q", info.Type)
		}

		track := transport.NewSimpleTrack(info.SID.String(), info.Name, kind)

		return errors.Trace(h.registry.Subscribe(info.SID, track))
	case EventTypeUnsubscribe:
		return errors.Trace(h.registry.Unsubscribe(info.SID))
	case EventTypeUnpublish:
		return errors.Trace(h.registry.Unpublish(info.SID))
	default:
		return errors.Annotatef(ErrEventTypeInvalid, "event type: %q", event.Type)
	}
}
