// Package input turns raw terminal bytes into per-frame launcher controls.
package input

import (
	"bufio"
)

// Input represents the current frame's input state. Counts let held keys
// (terminal auto-repeat) move the launcher smoothly.
type Input struct {
	Quit        bool
	Fire        bool
	Reset       bool
	AngleUp     int
	AngleDown   int
	TensionUp   int
	TensionDown int
	Pressed     []byte
}

// Any reports whether any key was pressed this frame.
func (in Input) Any() bool {
	return len(in.Pressed) > 0
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// ReadInput drains all available bytes from the stream without blocking.
// A closed stream reports Quit.
func ReadInput(s *Stream) Input {
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	in := Parse(buf)
	if s.closed {
		in.Quit = true
	}
	return in
}

// Parse maps a chunk of terminal bytes to an Input.
// Arrow keys arrive as ESC [ A..D.
func Parse(buf []byte) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				in.TensionUp++
			case 'B':
				in.TensionDown++
			case 'C':
				in.AngleDown++
			case 'D':
				in.AngleUp++
			}
			i += 2
			continue
		}

		switch b {
		case 'q', 'Q', '\x03': // Ctrl+C arrives as a byte in raw mode
			in.Quit = true
		case ' ', '\n', '\r':
			in.Fire = true
		case 'r', 'R':
			in.Reset = true
		case 'w', 'W', 'k', 'K':
			in.TensionUp++
		case 's', 'S', 'j', 'J':
			in.TensionDown++
		case 'a', 'A', 'h', 'H':
			in.AngleUp++
		case 'd', 'D', 'l', 'L':
			in.AngleDown++
		}
	}

	return in
}
