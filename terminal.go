package ineed

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// SecretReader reads a secret, such as a password, without echoing it.
//
// Implementations read from their own source and ignore the input stream of
// the prompt. The default one reads the controlling terminal.
type SecretReader interface {
	ReadSecret() (string, error)
}

// ErrNoTerminal is returned by the default SecretReader when the process has
// no terminal to read a secret from.
var ErrNoTerminal = errors.New("no terminal to read the secret from")

// terminalSecretReader implements SecretReader on the controlling terminal.
//
// The terminal is opened with go-tty for each secret, and closed right after
// reading it. When no controlling terminal can be opened but the standard
// input is a terminal, the secret is read from the standard input with
// golang.org/x/term instead.
type terminalSecretReader struct {
	stdinFd int // File descriptor of the standard input, used as a fallback
}

func newTerminalSecretReader() *terminalSecretReader {
	return &terminalSecretReader{stdinFd: int(os.Stdin.Fd())}
}

func (r *terminalSecretReader) ReadSecret() (string, error) {
	t, err := tty.Open()
	if err != nil {
		return r.readStdin(err)
	}
	// ReadPasswordNoEcho writes the line feed the user typed back to the terminal.
	secret, readErr := t.ReadPasswordNoEcho()
	closeErr := t.Close()
	if readErr != nil {
		return "", fmt.Errorf("failed to read secret: %w", readErr)
	}
	if closeErr != nil {
		return "", fmt.Errorf("failed to close terminal: %w", closeErr)
	}
	return secret, nil
}

func (r *terminalSecretReader) readStdin(openErr error) (string, error) {
	if !term.IsTerminal(r.stdinFd) {
		return "", fmt.Errorf("%w: %w", ErrNoTerminal, openErr)
	}
	b, err := term.ReadPassword(r.stdinFd)
	if err != nil {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	// The line feed typed by the user is not echoed.
	if _, err := fmt.Fprintln(stdout()); err != nil {
		return "", fmt.Errorf("failed to write line feed: %w", err)
	}
	return string(b), nil
}
