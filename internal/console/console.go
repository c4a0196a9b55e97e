package console

import "context"

// Tone selects how a told line is styled
type Tone int

const (
	TonePlain Tone = iota
	ToneInfo
	ToneAccent
	ToneSuccess
	ToneWarning
	ToneFailure
	// ToneProgress rewrites the current line instead of starting a new one
	ToneProgress
)

// Console is the prompt/print surface used by the interactive flow.
type Console interface {
	// Ask shows the prompt and blocks until a line of input is available
	// or ctx is done. It returns io.EOF once input is exhausted and
	// ctx.Err() on cancellation. The line is returned without its newline.
	Ask(ctx context.Context, prompt string) (string, error)
	// Tell prints one message.
	Tell(tone Tone, msg string)
}

// Clearer is implemented by consoles that can wipe the screen.
type Clearer interface {
	Clear()
}

// Clear wipes the screen if c supports it.
func Clear(c Console) {
	if cl, ok := c.(Clearer); ok {
		cl.Clear()
	}
}
