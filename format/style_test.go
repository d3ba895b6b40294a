package format

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected Overrides
		wantErr  bool
	}{
		{
			name:     "empty document",
			input:    "",
			expected: Overrides{},
		},
		{
			name: "every key",
			input: `msg_prefix: "-> "
input_prefix: ": "
break_line: false
repeat_prompt: true
list_surrounds: ["<", "> "]
list_msg_pos: top
`,
			expected: Overrides{
				MsgPrefix:     Some("-> "),
				InputPrefix:   Some(": "),
				BreakLine:     Some(false),
				RepeatPrompt:  Some(true),
				ListSurrounds: Some(Surrounds{Open: "<", Close: "> "}),
				ListMsgPos:    Some(Top),
			},
		},
		{
			name:     "absent keys stay unset",
			input:    "break_line: false\n",
			expected: Overrides{BreakLine: Some(false)},
		},
		{
			name:    "unknown key",
			input:   "color: red\n",
			wantErr: true,
		},
		{
			name:    "invalid position",
			input:   "list_msg_pos: middle\n",
			wantErr: true,
		},
		{
			name:    "wrong surrounds length",
			input:   "list_surrounds: [\"<\"]\n",
			wantErr: true,
		},
		{
			name:    "wrong type",
			input:   "break_line: [1]\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f, err := ParseStyle([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, f.Overrides())
		})
	}
}

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "style.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input_prefix: \"$ \"\n"), 0o600))

	f, err := LoadStyle(path)
	require.NoError(t, err)
	assert.Equal(t, Some("$ "), f.Overrides().InputPrefix)

	_, err = LoadStyle(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
