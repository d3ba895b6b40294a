package ineed

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/ahmadbky/ineed/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordWith(t *testing.T) {
	t.Parallel()

	t.Run("empty password is invalid", func(t *testing.T) {
		t.Parallel()

		reader := newMockSecretReader("", "s3cr3t")
		var out bytes.Buffer
		result, err := RunWith(PasswordWith("Your password", reader), strings.NewReader(""), &out)

		require.NoError(t, err)
		assert.Equal(t, "s3cr3t", result)
		assert.Equal(t, 2, reader.reads)
		assert.Equal(t, "- Your password\n> > ", out.String())
	})

	t.Run("input stream is not read", func(t *testing.T) {
		t.Parallel()

		reader := newMockSecretReader("pass")
		in := bufio.NewReader(strings.NewReader("not a password\n"))
		result, err := RunWith(PasswordWith("", reader), in, &bytes.Buffer{})
		require.NoError(t, err)
		assert.Equal(t, "pass", result)

		line, err := in.ReadString('\n')
		require.NoError(t, err)
		assert.Equal(t, "not a password\n", line)
	})

	t.Run("reader error aborts", func(t *testing.T) {
		t.Parallel()

		reader := newMockSecretReader()
		_, err := RunWith(PasswordWith("", reader), strings.NewReader(""), &bytes.Buffer{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errMock)
	})

	t.Run("repeat prompt", func(t *testing.T) {
		t.Parallel()

		reader := newMockSecretReader("", "pass")
		var out bytes.Buffer
		p := Formatted(PasswordWith("pw", reader), format.New().RepeatPrompt(true).BreakLine(false))
		_, err := RunWith(p, strings.NewReader(""), &out)

		require.NoError(t, err)
		assert.Equal(t, "- pw> - pw> ", out.String())
	})
}
