package publication

import (
	"sort"
	"time"

	"github.com/juju/errors"
	"github.com/peer-calls/trackpub/server/clock"
	"github.com/peer-calls/trackpub/server/identifiers"
	"github.com/peer-calls/trackpub/server/logger"
	"github.com/peer-calls/trackpub/server/transport"
)

// TrackEvent is emitted by the Registry after each of its operations.
type TrackEvent struct {
	Type  transport.TrackEventType
	SID   identifiers.TrackSID
	Kind  transport.TrackKind
	Local bool
}

// Registry keeps the publications of one session indexed by sid. Remote and
// local publications live in separate namespaces. The user of this
// implementation must implement locking if it will be used by multiple
// goroutines.
type Registry struct {
	log   logger.Logger
	clock clock.Clock

	remotes map[identifiers.TrackSID]*remoteEntry
	locals  map[identifiers.TrackSID]*localEntry

	nextObserverID int
	eventObservers []eventObserver
}

type remoteEntry struct {
	pub         *RemoteTrackPublication
	publishedAt time.Time
}

type localEntry struct {
	pub         *LocalTrackPublication
	publishedAt time.Time
}

type eventObserver struct {
	id int
	fn func(TrackEvent)
}

func NewRegistry(log logger.Logger, clk clock.Clock) *Registry {
	return &Registry{
		log:     log.WithNamespaceAppended("registry"),
		clock:   clk,
		remotes: map[identifiers.TrackSID]*remoteEntry{},
		locals:  map[identifiers.TrackSID]*localEntry{},
	}
}

// OnEvent registers fn for all subsequent registry events. Events are
// delivered synchronously, in order. The returned func unregisters fn.
func (r *Registry) OnEvent(fn func(TrackEvent)) (off func()) {
	r.nextObserverID++
	id := r.nextObserverID

	r.eventObservers = append(r.eventObservers, eventObserver{id: id, fn: fn})

	return func() {
		for i, o := range r.eventObservers {
			if o.id == id {
				r.eventObservers = append(r.eventObservers[:i:i], r.eventObservers[i+1:]...)

				return
			}
		}
	}
}

func (r *Registry) emit(event TrackEvent) {
	r.log.Trace("Emit event", logger.Ctx{
		"track_sid": event.SID,
		"type":      event.Type,
		"kind":      event.Kind,
		"local":     event.Local,
	})

	observers := make([]eventObserver, len(r.eventObservers))
	copy(observers, r.eventObservers)

	for _, o := range observers {
		o.fn(event)
	}
}

// Publish creates a remote publication from the descriptor, or refreshes the
// metadata of an existing publication with the same sid. The descriptor type
// must match the kind of the existing publication.
func (r *Registry) Publish(info transport.TrackInfo) (*RemoteTrackPublication, error) {
	if entry, ok := r.remotes[info.SID]; ok {
		kind, ok := info.Type.TrackKind()
		if !ok {
			prometheusInvalidDescriptorsTotal.Inc()

			return nil, errors.Annotatef(ErrTrackInvalid,
				"publish: unsupported trackinfo type: %q, sid: %s", info.Type, info.SID)
		}

		if kind != entry.pub.Kind() {
			return nil, errors.Annotatef(ErrTrackKindMismatch,
				"publish: sid: %s, publication kind: %s, descriptor kind: %s", info.SID, entry.pub.Kind(), kind)
		}

		entry.pub.UpdateMetadata(info)

		r.log.Debug("Updated metadata", logger.Ctx{
			"track_sid": info.SID,
			"name":      info.Name,
		})

		r.emit(TrackEvent{
			Type: transport.TrackEventTypeUpdate,
			SID:  info.SID,
			Kind: entry.pub.Kind(),
		})

		return entry.pub, nil
	}

	pub, err := NewRemoteTrackPublicationFromInfo(info)
	if err != nil {
		prometheusInvalidDescriptorsTotal.Inc()

		return nil, errors.Annotate(err, "publish")
	}

	r.remotes[info.SID] = &remoteEntry{
		pub:         pub,
		publishedAt: r.clock.Now(),
	}

	prometheusPublicationsTotal.WithLabelValues(localityRemote, pub.Kind().String()).Inc()
	prometheusPublicationsActive.WithLabelValues(localityRemote, pub.Kind().String()).Inc()

	r.log.Info("Published remote track", logger.Ctx{
		"track_sid": info.SID,
		"kind":      pub.Kind(),
		"name":      info.Name,
	})

	r.emit(TrackEvent{
		Type: transport.TrackEventTypeAdd,
		SID:  info.SID,
		Kind: pub.Kind(),
	})

	return pub, nil
}

// Update refreshes the metadata of an already published remote track.
func (r *Registry) Update(info transport.TrackInfo) (*RemoteTrackPublication, error) {
	if _, ok := r.remotes[info.SID]; !ok {
		return nil, errors.Annotatef(ErrTrackNotFound, "update: sid: %s", info.SID)
	}

	pub, err := r.Publish(info)

	return pub, errors.Trace(err)
}

// Subscribe attaches the decoded track to the remote publication.
func (r *Registry) Subscribe(sid identifiers.TrackSID, track transport.Track) error {
	entry, ok := r.remotes[sid]
	if !ok {
		return errors.Annotatef(ErrTrackNotFound, "subscribe: sid: %s", sid)
	}

	wasSubscribed := entry.pub.IsSubscribed()

	if err := entry.pub.SetTrack(track); err != nil {
		return errors.Annotate(err, "subscribe")
	}

	if isNilTrack(track) {
		if wasSubscribed {
			r.unsubscribed(sid, entry.pub)
		}

		return nil
	}

	if !wasSubscribed {
		prometheusSubscriptionsActive.Inc()
	}

	r.log.Info("Subscribed", logger.Ctx{
		"track_sid": sid,
		"track_id":  track.ID(),
	})

	r.emit(TrackEvent{
		Type: transport.TrackEventTypeSub,
		SID:  sid,
		Kind: entry.pub.Kind(),
	})

	return nil
}

// Unsubscribe detaches the track from the remote publication. It is a no-op
// when the publication is not subscribed.
func (r *Registry) Unsubscribe(sid identifiers.TrackSID) error {
	entry, ok := r.remotes[sid]
	if !ok {
		return errors.Annotatef(ErrTrackNotFound, "unsubscribe: sid: %s", sid)
	}

	if entry.pub.ClearTrack() {
		r.unsubscribed(sid, entry.pub)
	}

	return nil
}

func (r *Registry) unsubscribed(sid identifiers.TrackSID, pub *RemoteTrackPublication) {
	prometheusSubscriptionsActive.Dec()

	r.log.Info("Unsubscribed", logger.Ctx{
		"track_sid": sid,
	})

	r.emit(TrackEvent{
		Type: transport.TrackEventTypeUnsub,
		SID:  sid,
		Kind: pub.Kind(),
	})
}

// Unpublish detaches the track, if any, and drops the remote publication.
func (r *Registry) Unpublish(sid identifiers.TrackSID) error {
	entry, ok := r.remotes[sid]
	if !ok {
		return errors.Annotatef(ErrTrackNotFound, "unpublish: sid: %s", sid)
	}

	if entry.pub.ClearTrack() {
		r.unsubscribed(sid, entry.pub)
	}

	delete(r.remotes, sid)

	r.removed(localityRemote, sid, &entry.pub.Publication, entry.publishedAt)

	return nil
}

// PublishLocal adds a local publication, keyed by its sid.
func (r *Registry) PublishLocal(pub *LocalTrackPublication) error {
	sid := pub.SID()

	if _, ok := r.locals[sid]; ok {
		return errors.Annotatef(ErrTrackExists, "publish local: sid: %s", sid)
	}

	r.locals[sid] = &localEntry{
		pub:         pub,
		publishedAt: r.clock.Now(),
	}

	prometheusPublicationsTotal.WithLabelValues(localityLocal, pub.Kind().String()).Inc()
	prometheusPublicationsActive.WithLabelValues(localityLocal, pub.Kind().String()).Inc()

	r.log.Info("Published local track", logger.Ctx{
		"track_sid": sid,
		"kind":      pub.Kind(),
		"name":      pub.Name(),
	})

	r.emit(TrackEvent{
		Type:  transport.TrackEventTypeAdd,
		SID:   sid,
		Kind:  pub.Kind(),
		Local: true,
	})

	return nil
}

// UnpublishLocal drops a local publication. The bound track is left intact.
func (r *Registry) UnpublishLocal(sid identifiers.TrackSID) error {
	entry, ok := r.locals[sid]
	if !ok {
		return errors.Annotatef(ErrTrackNotFound, "unpublish local: sid: %s", sid)
	}

	delete(r.locals, sid)

	r.removed(localityLocal, sid, &entry.pub.Publication, entry.publishedAt)

	return nil
}

// removed reports sid, the key the publication was registered under, which
// differs from sid when UpdateMetadata was called on the publication
// directly.
func (r *Registry) removed(locality string, sid identifiers.TrackSID, pub *Publication, publishedAt time.Time) {
	duration := r.clock.Now().Sub(publishedAt)

	prometheusPublicationsActive.WithLabelValues(locality, pub.Kind().String()).Dec()
	prometheusPublicationDuration.Observe(duration.Seconds())

	r.log.Info("Unpublished track", logger.Ctx{
		"track_sid": sid,
		"locality":  locality,
		"duration":  duration,
	})

	r.emit(TrackEvent{
		Type:  transport.TrackEventTypeRemove,
		SID:   sid,
		Kind:  pub.Kind(),
		Local: locality == localityLocal,
	})
}

// Clear unpublishes all remote and local publications, as when the session
// disconnects.
func (r *Registry) Clear() {
	for _, sid := range sortedKeys(r.remotes) {
		_ = r.Unpublish(sid)
	}

	for _, sid := range sortedLocalKeys(r.locals) {
		_ = r.UnpublishLocal(sid)
	}
}

// Remote returns the publication registered under sid. Metadata changes
// should go through Publish or Update: the registry keeps the sid the
// publication was registered under as its key.
func (r *Registry) Remote(sid identifiers.TrackSID) (*RemoteTrackPublication, bool) {
	entry, ok := r.remotes[sid]
	if !ok {
		return nil, false
	}

	return entry.pub, true
}

func (r *Registry) Local(sid identifiers.TrackSID) (*LocalTrackPublication, bool) {
	entry, ok := r.locals[sid]
	if !ok {
		return nil, false
	}

	return entry.pub, true
}

// RemotePublications returns remote publications sorted by sid.
func (r *Registry) RemotePublications() []*RemoteTrackPublication {
	sids := sortedKeys(r.remotes)

	pubs := make([]*RemoteTrackPublication, 0, len(sids))

	for _, sid := range sids {
		pubs = append(pubs, r.remotes[sid].pub)
	}

	return pubs
}

// LocalPublications returns local publications sorted by sid.
func (r *Registry) LocalPublications() []*LocalTrackPublication {
	sids := sortedLocalKeys(r.locals)

	pubs := make([]*LocalTrackPublication, 0, len(sids))

	for _, sid := range sids {
		pubs = append(pubs, r.locals[sid].pub)
	}

	return pubs
}

func sortedKeys(m map[identifiers.TrackSID]*remoteEntry) identifiers.TrackSIDs {
	sids := make(identifiers.TrackSIDs, 0, len(m))

	for sid := range m {
		sids = append(sids, sid)
	}

	sort.Sort(sids)

	return sids
}

func sortedLocalKeys(m map[identifiers.TrackSID]*localEntry) identifiers.TrackSIDs {
	sids := make(identifiers.TrackSIDs, 0, len(m))

	for sid := range m {
		sids = append(sids, sid)
	}

	sort.Sort(sids)

	return sids
}
