package ineed

import (
	"bufio"
	"errors"
	"strings"
)

var errMock = errors.New("mock failure")

// mockSecretReader implements SecretReader for testing.
//
// It returns the configured secrets in order, then err once they are all
// consumed. Reads are counted for verification in tests.
type mockSecretReader struct {
	secrets []string // Secrets returned in order
	err     error    // Error returned once the secrets are consumed
	reads   int      // Amount of ReadSecret calls
}

func newMockSecretReader(secrets ...string) *mockSecretReader {
	return &mockSecretReader{secrets: secrets, err: errMock}
}

func (m *mockSecretReader) ReadSecret() (string, error) {
	m.reads++
	if len(m.secrets) == 0 {
		return "", m.err
	}
	s := m.secrets[0]
	m.secrets = m.secrets[1:]
	return s, nil
}

// failingWriter fails every write after the first n bytes.
type failingWriter struct {
	n   int
	err error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n <= 0 {
		return 0, w.err
	}
	if len(p) > w.n {
		written := w.n
		w.n = 0
		return written, w.err
	}
	w.n -= len(p)
	return len(p), nil
}

func lines(s string) LineReader {
	return bufio.NewReader(strings.NewReader(s))
}
