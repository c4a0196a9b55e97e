// Package consoletest provides a scripted console.Console for tests.
package consoletest

import (
	"context"
	"io"
	"strings"

	"github.com/merfiDEV/YT-Downloader/internal/console"
)

// Line is one message told to the console
type Line struct {
	Tone console.Tone
	Text string
}

// Script answers prompts from a fixed list and records everything told.
type Script struct {
	Answers []string
	Prompts []string
	Lines   []Line
	Clears  int
}

// New returns a Script that answers with the given inputs in order
func New(answers ...string) *Script {
	return &Script{Answers: answers}
}

// Ask returns the next scripted answer, io.EOF when none are left, or
// ctx.Err() when ctx is already done.
func (s *Script) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Answers) == 0 {
		return "", io.EOF
	}
	answer := s.Answers[0]
	s.Answers = s.Answers[1:]
	return answer, nil
}

// Tell records the message
func (s *Script) Tell(tone console.Tone, msg string) {
	s.Lines = append(s.Lines, Line{Tone: tone, Text: msg})
}

// Clear counts screen clears
func (s *Script) Clear() {
	s.Clears++
}

// Texts returns the told messages with the given tone
func (s *Script) Texts(tone console.Tone) []string {
	var out []string
	for _, l := range s.Lines {
		if l.Tone == tone {
			out = append(out, l.Text)
		}
	}
	return out
}

// Contains reports whether any told message contains substr
func (s *Script) Contains(substr string) bool {
	for _, l := range s.Lines {
		if strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

// Count returns how many told messages equal text
func (s *Script) Count(text string) int {
	n := 0
	for _, l := range s.Lines {
		if l.Text == text {
			n++
		}
	}
	return n
}
