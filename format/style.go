package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Style is the file representation of a Fmt. Absent keys leave the matching
// rule unset.
//
// Example document:
//
//	msg_prefix: "-> "
//	input_prefix: ": "
//	break_line: false
//	repeat_prompt: true
//	list_surrounds: ["<", "> "]
//	list_msg_pos: top
type Style struct {
	MsgPrefix     *string   `yaml:"msg_prefix"`
	InputPrefix   *string   `yaml:"input_prefix"`
	BreakLine     *bool     `yaml:"break_line"`
	RepeatPrompt  *bool     `yaml:"repeat_prompt"`
	ListSurrounds []string  `yaml:"list_surrounds"`
	ListMsgPos    *Position `yaml:"list_msg_pos"`
}

// Fmt returns the settings of the style as a Fmt chain.
func (s Style) Fmt() Fmt {
	f := New()
	if s.MsgPrefix != nil {
		f = f.MsgPrefix(*s.MsgPrefix)
	}
	if s.InputPrefix != nil {
		f = f.InputPrefix(*s.InputPrefix)
	}
	if s.BreakLine != nil {
		f = f.BreakLine(*s.BreakLine)
	}
	if s.RepeatPrompt != nil {
		f = f.RepeatPrompt(*s.RepeatPrompt)
	}
	if len(s.ListSurrounds) == 2 {
		f = f.ListSurrounds(s.ListSurrounds[0], s.ListSurrounds[1])
	}
	if s.ListMsgPos != nil {
		f = f.ListMsgPos(*s.ListMsgPos)
	}
	return f
}

func (s Style) validate() error {
	if s.ListSurrounds != nil && len(s.ListSurrounds) != 2 {
		return fmt.Errorf("list_surrounds must hold exactly 2 strings, got %d", len(s.ListSurrounds))
	}
	return nil
}

// ParseStyle decodes a YAML style document. Unknown keys are rejected.
// An empty document yields an empty Fmt.
func ParseStyle(data []byte) (Fmt, error) {
	var s Style
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return Fmt{}, fmt.Errorf("failed to decode style: %w", err)
	}
	if err := s.validate(); err != nil {
		return Fmt{}, fmt.Errorf("invalid style: %w", err)
	}
	return s.Fmt(), nil
}

// LoadStyle reads and decodes the YAML style file at path.
func LoadStyle(path string) (Fmt, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Fmt{}, fmt.Errorf("failed to read style file: %w", err)
	}
	return ParseStyle(data)
}
