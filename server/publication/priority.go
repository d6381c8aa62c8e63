package publication

import "github.com/juju/errors"

// Priority is a send-side bandwidth hint for the transport layer.
type Priority string

const (
	PriorityUnset    Priority = ""
	PriorityLow      Priority = "low"
	PriorityStandard Priority = "standard"
	PriorityHigh     Priority = "high"
)

func (p Priority) String() string {
	if p == PriorityUnset {
		return "unset"
	}

	return string(p)
}

func (p Priority) validate() error {
	switch p {
	case PriorityUnset, PriorityLow, PriorityStandard, PriorityHigh:
		return nil
	default:
		return errors.Annotatef(ErrPriorityInvalid, "priority: %q", string(p))
	}
}
