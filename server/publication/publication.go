package publication

import (
	"github.com/peer-calls/trackpub/server/identifiers"
	"github.com/peer-calls/trackpub/server/transport"
)

// Publication is the record shared by local and remote track publications.
// The kind is fixed at construction, sid and name can change, and every
// change is reported to the registered observers.
//
// A Publication is not safe for concurrent use. Callers must serialize
// mutators.
type Publication struct {
	kind transport.TrackKind
	sid  identifiers.TrackSID
	name string

	observers observers
}

func newPublication(kind transport.TrackKind, sid identifiers.TrackSID, name string) Publication {
	return Publication{
		kind: kind,
		sid:  sid,
		name: name,
	}
}

func (p *Publication) Kind() transport.TrackKind {
	return p.kind
}

func (p *Publication) SID() identifiers.TrackSID {
	return p.sid
}

func (p *Publication) Name() string {
	return p.name
}

// OnChange registers fn to be called, synchronously, after every mutation of
// the publication. Observers should re-read state via the accessors. The
// returned func unregisters fn.
func (p *Publication) OnChange(fn func()) (off func()) {
	return p.observers.add(fn)
}

func (p *Publication) notify() {
	p.observers.notify()
}

func (p *Publication) setMetadata(sid identifiers.TrackSID, name string) {
	p.sid = sid
	p.name = name
	p.notify()
}
