package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
)

// Escape sequences
const (
	clearSequence    = "\033[H\033[2J"
	carriageReturn   = "\r"
	eraseLineToRight = "\033[K"
	promptSuffix     = ": "
)

// Terminal is a Console over a reader and a (possibly colored) writer.
// On Windows the colorable writer translates the ANSI sequences.
type Terminal struct {
	mu         sync.Mutex
	reader     *bufio.Reader
	out        io.Writer
	styles     map[Tone]*color.Color
	prompt     *color.Color
	inProgress bool

	startReader sync.Once
	lines       chan readResult
}

type readResult struct {
	line string
	err  error
}

// NewTerminal returns a Terminal bound to stdin and a colorable stdout
func NewTerminal() *Terminal {
	return NewTerminalWith(os.Stdin, colorable.NewColorableStdout())
}

// NewTerminalWith returns a Terminal using the given streams
func NewTerminalWith(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		reader: bufio.NewReader(in),
		lines:  make(chan readResult),
		out:    out,
		styles: map[Tone]*color.Color{
			ToneInfo:     color.New(color.FgCyan),
			ToneAccent:   color.New(color.FgYellow),
			ToneSuccess:  color.New(color.FgGreen, color.Bold),
			ToneWarning:  color.New(color.FgYellow, color.Bold),
			ToneFailure:  color.New(color.FgRed, color.Bold),
			ToneProgress: color.New(color.Reset),
		},
		prompt: color.New(color.FgCyan, color.Bold),
	}
}

// Ask prints the prompt and waits for one line or for ctx to be done.
// Input is read by a single background goroutine, so a line typed after a
// cancelled Ask is returned by the next one.
func (t *Terminal) Ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	t.mu.Lock()
	t.endProgressLine()
	t.prompt.Fprint(t.out, prompt)
	fmt.Fprint(t.out, promptSuffix)
	t.mu.Unlock()

	t.startReader.Do(func() { go t.readLines() })

	select {
	case <-ctx.Done():
		t.mu.Lock()
		fmt.Fprintln(t.out)
		t.mu.Unlock()
		return "", ctx.Err()
	case r, ok := <-t.lines:
		if !ok {
			return "", io.EOF
		}
		if r.err != nil && !(errors.Is(r.err, io.EOF) && r.line != "") {
			return "", r.err
		}
		return strings.TrimRight(r.line, "\r\n"), nil
	}
}

// readLines feeds t.lines until the reader fails, then closes it
func (t *Terminal) readLines() {
	defer close(t.lines)
	for {
		line, err := t.reader.ReadString('\n')
		t.lines <- readResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// Tell prints a message in the style of the tone
func (t *Terminal) Tell(tone Tone, msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tone == ToneProgress {
		fmt.Fprint(t.out, carriageReturn)
		t.styles[tone].Fprint(t.out, msg)
		fmt.Fprint(t.out, eraseLineToRight)
		t.inProgress = true
		return
	}

	t.endProgressLine()
	if style, ok := t.styles[tone]; ok {
		style.Fprintln(t.out, msg)
		return
	}
	fmt.Fprintln(t.out, msg)
}

// Clear wipes the terminal screen
func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.inProgress = false
	fmt.Fprint(t.out, clearSequence)
}

// endProgressLine moves past a line written with ToneProgress
func (t *Terminal) endProgressLine() {
	if t.inProgress {
		fmt.Fprintln(t.out)
		t.inProgress = false
	}
}
