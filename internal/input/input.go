// Package input turns raw terminal bytes into discrete key events.
package input

import (
	"bufio"
	"io"
)

// Kind identifies the type of an input event.
type Kind int

const (
	KeyDown Kind = iota // A printable or control key was pressed
	Close               // The player asked to quit or the input ended
)

// Event is a single key-down or close request.
// Key is lower-cased for letters so bindings are case insensitive.
type Event struct {
	Kind Kind
	Key  byte
}

// Raw control bytes.
const (
	keyCtrlC  = 0x03
	keyCtrlD  = 0x04
	keyEscape = 0x1b
)

// Stream delivers input bytes via a channel fed by a reader goroutine.
type Stream struct {
	ch chan byte
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The channel closes when r returns an error (EOF or disconnect).
func StartStream(r io.Reader) *Stream {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Poll drains all available bytes from the stream without blocking and
// returns the events they encode, in order. A closed stream yields a Close event.
func (s *Stream) Poll() []Event {
	var buf []byte
	closed := false

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	events := Parse(buf)
	if closed {
		events = append(events, Event{Kind: Close})
	}
	return events
}

// Parse converts a chunk of raw bytes into events.
// Escape sequences (arrow keys and the like) are swallowed; a lone ESC closes.
func Parse(buf []byte) []Event {
	var events []Event
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == keyEscape {
			// CSI/SS3 sequence: ESC [ ... final or ESC O final
			if i+1 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
				i += 2
				for i < len(buf) && !isFinalByte(buf[i]) {
					i++
				}
				continue
			}
			events = append(events, Event{Kind: Close})
			continue
		}

		switch {
		case b == keyCtrlC || b == keyCtrlD:
			events = append(events, Event{Kind: Close})
		case b == 'q' || b == 'Q':
			events = append(events, Event{Kind: Close})
		case b >= 'A' && b <= 'Z':
			events = append(events, Event{Kind: KeyDown, Key: b + ('a' - 'A')})
		default:
			events = append(events, Event{Kind: KeyDown, Key: b})
		}
	}
	return events
}

// isFinalByte reports whether b terminates an ANSI escape sequence.
func isFinalByte(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
