package transport

import "fmt"

type TrackEventType uint8

const (
	TrackEventTypeAdd TrackEventType = iota + 1
	TrackEventTypeRemove
	TrackEventTypeSub
	TrackEventTypeUnsub
	TrackEventTypeUpdate
)

func (t TrackEventType) String() string {
	switch t {
	case TrackEventTypeAdd:
		return "add"
	case TrackEventTypeRemove:
		return "remove"
	case TrackEventTypeSub:
		return "sub"
	case TrackEventTypeUnsub:
		return "unsub"
	case TrackEventTypeUpdate:
		return "update"
	default:
		return fmt.Sprintf("TrackEventType(%d)", uint8(t))
	}
}
