package uuid

import (
	"math/big"

	"github.com/google/uuid"
	"github.com/peer-calls/trackpub/server/identifiers"
)

const alphabetBase62 = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// TrackSIDPrefix is prepended to every generated track sid.
const TrackSIDPrefix = "TR_"

// New returns a random UUID v4 encoded in base62.
func New() string {
	value := uuid.New()

	return encodeBase62(value[:])
}

// NewTrackSID returns a new random sid for a locally produced track.
func NewTrackSID() identifiers.TrackSID {
	return identifiers.TrackSID(TrackSIDPrefix + New())
}

func encodeBase62(data []byte) string {
	var (
		value     big.Int
		zero      big.Int
		base      big.Int
		remainder big.Int
	)

	value.SetBytes(data)

	result := make([]byte, 0, 22)

	for value.Cmp(&zero) != 0 {
		base.SetInt64(int64(len(alphabetBase62)))
		value.DivMod(&value, &base, &remainder)
		result = append(result, alphabetBase62[remainder.Int64()])
	}

	return string(result)
}
