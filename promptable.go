package ineed

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ahmadbky/ineed/format"
)

// Common errors
var (
	// ErrMaxTriesExceeded is carried by the Result of a MaxTries promptable
	// when the user exceeded the maximum amount of tries.
	ErrMaxTriesExceeded = errors.New("max tries exceeded")
)

// LineReader is the input of a prompt. *bufio.Reader implements it.
type LineReader interface {
	ReadString(delim byte) (string, error)
}

// Promptable is a unit that can resolve a value of type T from user input.
//
// R is the rule set accepted by the promptable. It is used to format the
// prompt, and is built by the caller from the rules declared around the
// promptable (see Formatted).
//
// PromptOnce makes a single attempt: it writes the prompt to out, reads one
// line from in, and returns an accepted Outcome when the line is valid, or a
// retry Outcome otherwise. Invalid input is never an error: only I/O failures
// are returned as errors.
type Promptable[T any, R format.Rules[R]] interface {
	PromptOnce(in LineReader, out io.Writer, rules R) (Outcome[T], error)
}

// Outcome is the result of a single prompt attempt.
type Outcome[T any] struct {
	value    T
	accepted bool
}

// Accepted returns an outcome accepting v.
func Accepted[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, accepted: true}
}

// Retry returns an outcome asking for another attempt.
func Retry[T any]() Outcome[T] {
	return Outcome[T]{}
}

// Get returns the accepted value, and false if the outcome is a retry.
func (o Outcome[T]) Get() (T, bool) {
	return o.value, o.accepted
}

// IsAccepted reports whether the outcome holds an accepted value.
func (o Outcome[T]) IsAccepted() bool {
	return o.accepted
}

// Result is the output of a MaxTries promptable. Err is ErrMaxTriesExceeded
// when the user did not give a valid input in time.
type Result[T any] struct {
	Value T
	Err   error
}

// Unwrap returns the value and the error of the result.
func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}

// readLine reads a line and trims it. Reaching the end of the input is not an
// error: the line read so far is returned, possibly empty.
func readLine(in LineReader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// flush flushes w if it is buffered.
func flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			return fmt.Errorf("failed to flush output: %w", err)
		}
	}
	return nil
}
