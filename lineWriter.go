package starenv

import (
	"bytes"
	"sync"
)

// lineWriter turns a stream of output into Print events, one per line. A trailing carriage return is stripped from
// each line. Output after the last newline is held until the next write or Flush.
type lineWriter struct {
	m       sync.Mutex
	events  Events
	pending []byte
}

func newLineWriter(events Events) *lineWriter {
	return &lineWriter{events: events}
}

func (l *lineWriter) Write(b []byte) (int, error) {
	l.m.Lock()
	defer l.m.Unlock()

	n := len(b)
	for {
		line, rest, ok := bytes.Cut(b, []byte{'\n'})
		if !ok {
			l.pending = append(l.pending, b...)
			return n, nil
		}
		if len(l.pending) != 0 {
			line = append(l.pending, line...)
			l.pending = l.pending[:0]
		}
		l.print(line)
		b = rest
	}
}

func (l *lineWriter) Flush() error {
	l.m.Lock()
	defer l.m.Unlock()

	if len(l.pending) != 0 {
		l.print(l.pending)
		l.pending = l.pending[:0]
	}
	return nil
}

// NOTE: l.m must be held!
func (l *lineWriter) print(line []byte) {
	l.events.Print(string(bytes.TrimSuffix(line, []byte{'\r'})))
}
