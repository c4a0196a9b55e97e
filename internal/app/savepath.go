package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/merfiDEV/YT-Downloader/internal/console"
	"github.com/merfiDEV/YT-Downloader/internal/platform"
)

// ConfigStore holds the persisted save directory
type ConfigStore interface {
	GetSavePath() string
	SetSavePath(dir string)
	Save() error
}

// PathResolver returns a usable save directory, asking until one is given
type PathResolver struct {
	console console.Console
	msgs    *console.Catalog
	store   ConfigStore
	isDir   func(string) bool
	hint    func() (string, error)
}

// NewPathResolver creates a resolver backed by store
func NewPathResolver(c console.Console, msgs *console.Catalog, store ConfigStore) *PathResolver {
	return &PathResolver{
		console: c,
		msgs:    msgs,
		store:   store,
		isDir:   platform.IsDir,
		hint:    platform.GetHomeDownloadsDir,
	}
}

// Resolve returns the configured directory when it exists. Otherwise it
// prompts until the answer is an existing directory, stores it and saves
// the config once.
func (r *PathResolver) Resolve(ctx context.Context) (string, error) {
	if dir := r.store.GetSavePath(); dir != "" && r.isDir(dir) {
		return dir, nil
	}

	prompt := r.msgs.Text(console.KeyAskSavePath)
	if hint, err := r.hint(); err == nil && hint != "" {
		prompt = r.msgs.Format(console.KeyAskSavePathHint, hint)
	}

	for {
		answer, err := r.console.Ask(ctx, prompt)
		if err != nil {
			return "", inputError(err)
		}

		dir, ok := r.existingDir(answer)
		if !ok {
			r.console.Tell(console.ToneFailure, r.msgs.Text(console.KeyInvalidPath))
			continue
		}

		r.store.SetSavePath(dir)
		if err := r.store.Save(); err != nil {
			return "", fmt.Errorf("save config: %w", err)
		}
		return dir, nil
	}
}

// existingDir accepts the answer as typed when it names a directory and
// only then tries it without surrounding blanks and quotes.
func (r *PathResolver) existingDir(answer string) (string, bool) {
	if answer != "" && r.isDir(answer) {
		return answer, true
	}
	if dir := cleanInput(answer); dir != "" && dir != answer && r.isDir(dir) {
		return dir, true
	}
	return "", false
}

// cleanInput strips whitespace and the quotes terminals add to dropped paths
func cleanInput(s string) string {
	return strings.Trim(strings.TrimSpace(s), `"' `)
}

func inputError(err error) error {
	if errors.Is(err, io.EOF) {
		return ErrInputClosed
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	}
	return fmt.Errorf("read input: %w", err)
}
