package console

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
)

func newTestTerminal(input string) (*Terminal, *bytes.Buffer) {
	color.NoColor = true
	out := &bytes.Buffer{}
	return NewTerminalWith(strings.NewReader(input), out), out
}

func TestTerminal_Ask(t *testing.T) {
	term, out := newTestTerminal("  /tmp/videos  \nsecond\r\nlast-without-newline")

	// only the line ending is removed
	tests := []string{"  /tmp/videos  ", "second", "last-without-newline"}
	for _, expected := range tests {
		got, err := term.Ask(context.Background(), "Path")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}

	if _, err := term.Ask(context.Background(), "Path"); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF after input is exhausted, got %v", err)
	}

	if !strings.Contains(out.String(), "Path: ") {
		t.Errorf("expected prompt in output, got %q", out.String())
	}
}

func TestTerminal_TellProgressThenLine(t *testing.T) {
	term, out := newTestTerminal("")

	term.Tell(ToneProgress, "10%")
	term.Tell(ToneProgress, "20%")
	term.Tell(ToneSuccess, "done")

	expected := "\r10%" + eraseLineToRight + "\r20%" + eraseLineToRight + "\ndone\n"
	if out.String() != expected {
		t.Errorf("expected %q, got %q", expected, out.String())
	}
}

func TestTerminal_Clear(t *testing.T) {
	term, out := newTestTerminal("")
	Clear(term)

	if out.String() != clearSequence {
		t.Errorf("expected clear sequence, got %q", out.String())
	}
}

func TestTerminal_AskCancelled(t *testing.T) {
	color.NoColor = true
	in, feed := io.Pipe()
	defer feed.Close()
	term := NewTerminalWith(in, &bytes.Buffer{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := term.Ask(ctx, "Path")
		done <- err
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Ask kept blocking after the context was cancelled")
	}

	// the line typed after cancellation is not lost
	go feed.Write([]byte("/tmp/videos\n"))
	got, err := term.Ask(context.Background(), "Path")
	if err != nil || got != "/tmp/videos" {
		t.Errorf("expected /tmp/videos, got %q (%v)", got, err)
	}
}

func TestTerminal_AskAlreadyCancelled(t *testing.T) {
	term, out := newTestTerminal("answer\n")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := term.Ask(ctx, "Path"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no prompt, got %q", out.String())
	}
}
