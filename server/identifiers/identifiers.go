package identifiers

// TrackSID is the session-unique identifier of a published track. It is
// assigned by the signaling layer for remote tracks and by the local
// participant for local tracks.
type TrackSID string

type TrackSIDs []TrackSID

func (s TrackSID) String() string {
	return string(s)
}

func (s TrackSIDs) Len() int {
	return len(s)
}

func (s TrackSIDs) Less(i, j int) bool {
	return s[i] < s[j]
}

func (s TrackSIDs) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
