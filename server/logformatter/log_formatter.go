package logformatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/peer-calls/trackpub/server/logger"
)

// TrackSIDKey is the context key rendered in its own column.
const TrackSIDKey = "track_sid"

const (
	namespaceWidth = 20
	timeLayout     = "2006-01-02T15:04:05.000000Z07:00"
)

// LogFormatter formats console output and moves the track sid, when present
// in the context, in front of the message body.
type LogFormatter struct {
	timeLayout string
}

func New() *LogFormatter {
	return &LogFormatter{
		timeLayout: timeLayout,
	}
}

var _ logger.Formatter = &LogFormatter{}

func (f *LogFormatter) Format(message logger.Message) ([]byte, error) {
	ctx := message.Ctx

	keys := make([]string, 0, len(ctx))

	for k := range ctx {
		if k != TrackSIDKey {
			keys = append(keys, k)
		}
	}

	sort.Strings(keys)

	var b strings.Builder

	b.WriteString(message.Timestamp.Format(f.timeLayout))
	b.WriteString(fmt.Sprintf(" %5s", message.Level))

	namespace := message.Namespace
	if len(namespace) > namespaceWidth {
		namespace = namespace[len(namespace)-namespaceWidth:]
	}

	b.WriteString(fmt.Sprintf(" [%*s]", namespaceWidth, namespace))

	if sid, ok := ctx[TrackSIDKey]; ok {
		b.WriteString(fmt.Sprintf(" [%s]", sid))
	}

	b.WriteString(" ")
	b.WriteString(strings.TrimRight(message.Body, "\n"))

	for _, k := range keys {
		b.WriteString(fmt.Sprintf(" %s=%+v", k, ctx[k]))
	}

	b.WriteString("\n")

	return []byte(b.String()), nil
}
