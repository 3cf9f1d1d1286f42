package input

import (
	"bufio"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Input
	}{
		{"fire", " ", Input{Fire: true}},
		{"enter fires", "\r", Input{Fire: true}},
		{"reset", "r", Input{Reset: true}},
		{"quit", "q", Input{Quit: true}},
		{"ctrl-c", "\x03", Input{Quit: true}},
		{"tension keys", "wwws", Input{TensionUp: 3, TensionDown: 1}},
		{"angle keys", "aad", Input{AngleUp: 2, AngleDown: 1}},
		{"arrows", "\x1b[A\x1b[A\x1b[B\x1b[C\x1b[D\x1b[D", Input{TensionUp: 2, TensionDown: 1, AngleDown: 1, AngleUp: 2}},
		{"unknown bytes", "xyz", Input{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Parse([]byte(tc.in))
			got.Pressed = nil
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Parse(%q) = %+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestReadInputQuitsOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(" ")))

	deadline := time.Now().Add(time.Second)
	var fired bool
	for time.Now().Before(deadline) {
		in := ReadInput(s)
		fired = fired || in.Fire
		if in.Quit {
			if !fired {
				t.Fatal("quit before the buffered fire was delivered")
			}
			if !s.Closed() {
				t.Fatal("stream not marked closed")
			}
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("stream never reported quit after EOF")
}
