package app

import "errors"

var (
	// ErrNoMatchingFormats means no format passed the quality filter
	ErrNoMatchingFormats = errors.New("no suitable formats found")

	// ErrNoFormats means the metadata carried no format list at all
	ErrNoFormats = errors.New("could not fetch video formats")

	// ErrInputClosed means the input ended while a prompt was waiting
	ErrInputClosed = errors.New("input closed")

	// ErrInterrupted means the run was cancelled, usually by Ctrl-C
	ErrInterrupted = errors.New("interrupted")

	// ErrRunFinished means Run was called on an App that already ended
	ErrRunFinished = errors.New("run already finished")
)
