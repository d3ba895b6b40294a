package ineed

import (
	"os"
	"testing"

	"github.com/mattn/go-tty"
	"github.com/stretchr/testify/assert"
	"golang.org/x/term"
)

func TestTerminalSecretReaderWithoutTerminal(t *testing.T) {
	if os.Getenv("GITHUB_ACTIONS") == "" {
		t.Skip("Skipping real terminal test in local development")
	}

	// Reading would block on a real terminal.
	if tt, err := tty.Open(); err == nil {
		_ = tt.Close()
		t.Skip("Controlling terminal available in this environment")
	}
	reader := newTerminalSecretReader()
	if term.IsTerminal(reader.stdinFd) {
		t.Skip("Standard input is a terminal in this environment")
	}

	_, err := reader.ReadSecret()
	assert.ErrorIs(t, err, ErrNoTerminal)
}

func TestPasswordUsesTerminal(t *testing.T) {
	t.Parallel()

	p, ok := Password("pw").(*password)
	if assert.True(t, ok) {
		assert.IsType(t, &terminalSecretReader{}, p.reader)
	}
}
