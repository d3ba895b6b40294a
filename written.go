package ineed

import (
	"fmt"
	"io"

	"github.com/ahmadbky/ineed/format"
)

// message is the introductory message of a written prompt.
type message struct {
	text  string
	shown bool
}

// prompt writes the message, unless it was already shown and the rules do not
// ask to repeat it, then the input prefix, and reads the input with read.
func (m *message) prompt(out io.Writer, rules format.WrittenRules, read func() (string, error)) (string, error) {
	fmtRules := rules.Expand()

	if !m.shown {
		if _, err := fmt.Fprint(out, fmtRules.MsgPrefix, m.text); err != nil {
			return "", fmt.Errorf("failed to write message: %w", err)
		}
		if fmtRules.BreakLine {
			if _, err := fmt.Fprintln(out); err != nil {
				return "", fmt.Errorf("failed to write message: %w", err)
			}
		}
		m.shown = !fmtRules.RepeatPrompt
	}

	if _, err := fmt.Fprint(out, fmtRules.InputPrefix); err != nil {
		return "", fmt.Errorf("failed to write input prefix: %w", err)
	}
	if err := flush(out); err != nil {
		return "", err
	}

	return read()
}

// promptLine is prompt reading a line from in.
func (m *message) promptLine(in LineReader, out io.Writer, rules format.WrittenRules) (string, error) {
	return m.prompt(out, rules, func() (string, error) {
		return readLine(in)
	})
}

// Written returns a promptable asking for a single value of type T.
//
// The input is trimmed and parsed according to T: strings, booleans, integers
// and floating-point numbers are supported, as well as any type whose pointer
// implements encoding.TextUnmarshaler. Written panics for any other type.
// An empty input is invalid.
//
// Example:
//
//	name, err := ineed.Run(ineed.Written[string]("Your name"))
func Written[T any](msg string) Promptable[T, format.WrittenRules] {
	return &written[T]{
		msg:   message{text: msg},
		parse: newParser[T](),
	}
}

type written[T any] struct {
	msg   message
	parse parser[T]
}

func (w *written[T]) PromptOnce(in LineReader, out io.Writer, rules format.WrittenRules) (Outcome[T], error) {
	input, err := w.msg.promptLine(in, out, rules)
	if err != nil {
		return Retry[T](), err
	}
	if input == "" {
		return Retry[T](), nil
	}
	if v, ok := w.parse(input); ok {
		return Accepted(v), nil
	}
	return Retry[T](), nil
}
