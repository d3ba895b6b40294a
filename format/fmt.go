package format

import (
	"fmt"
	"strings"
)

// Position is the position of the message of a list prompt, relative to the list.
type Position int

// Message positions
const (
	Bottom Position = iota // Message is displayed under the list
	Top                    // Message is displayed above the list
)

// String returns the lowercase name of the position.
func (p Position) String() string {
	switch p {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("Position(%d)", int(p))
	}
}

// ParsePosition parses "top" or "bottom", case-insensitively.
func ParsePosition(s string) (Position, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	default:
		return Bottom, fmt.Errorf("invalid list message position %q: expected top or bottom", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Position) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Position) UnmarshalText(text []byte) error {
	pos, err := ParsePosition(string(text))
	if err != nil {
		return err
	}
	*p = pos
	return nil
}

// Surrounds are the strings put around the index of a list item.
type Surrounds struct {
	Open  string
	Close string
}

// ruleKind identifies an atomic rule.
type ruleKind int

const (
	ruleMsgPrefix ruleKind = iota
	ruleInputPrefix
	ruleBreakLine
	ruleRepeatPrompt
	ruleListSurrounds
	ruleListMsgPos
)

// setting is one link of a Fmt chain.
type setting struct {
	prev *setting
	kind ruleKind
	text string
	flag bool
	surr Surrounds
	pos  Position
}

// Fmt is an immutable chain of rule settings.
//
// Every method returns a new Fmt holding the receiver as its previous link,
// so a Fmt value can be shared and extended freely. When the same rule is set
// more than once, the most recent setting wins.
//
// The zero value is an empty chain, equivalent to New().
type Fmt struct {
	last *setting
}

// New returns an empty Fmt.
func New() Fmt {
	return Fmt{}
}

func (f Fmt) with(s setting) Fmt {
	s.prev = f.last
	return Fmt{last: &s}
}

// MsgPrefix sets the prefix put right before the message.
func (f Fmt) MsgPrefix(prefix string) Fmt {
	return f.with(setting{kind: ruleMsgPrefix, text: prefix})
}

// InputPrefix sets the prefix put right before the user input.
func (f Fmt) InputPrefix(prefix string) Fmt {
	return f.with(setting{kind: ruleInputPrefix, text: prefix})
}

// BreakLine sets whether the message is followed by a line break.
func (f Fmt) BreakLine(v bool) Fmt {
	return f.with(setting{kind: ruleBreakLine, flag: v})
}

// RepeatPrompt sets whether the message is displayed again after an invalid
// input. If not, only the input prefix is repeated.
func (f Fmt) RepeatPrompt(v bool) Fmt {
	return f.with(setting{kind: ruleRepeatPrompt, flag: v})
}

// ListSurrounds sets the strings put around the index of each list item.
func (f Fmt) ListSurrounds(open, close string) Fmt {
	return f.with(setting{kind: ruleListSurrounds, surr: Surrounds{Open: open, Close: close}})
}

// ListMsgPos sets the position of the message relative to the list.
func (f Fmt) ListMsgPos(pos Position) Fmt {
	return f.with(setting{kind: ruleListMsgPos, pos: pos})
}

// Overrides returns the settings of the chain as a sparse record.
func (f Fmt) Overrides() Overrides {
	return f.last.overrides()
}

// overrides walks the previous links first so that later settings overwrite
// earlier ones.
func (s *setting) overrides() Overrides {
	if s == nil {
		return Overrides{}
	}
	o := s.prev.overrides()
	switch s.kind {
	case ruleMsgPrefix:
		o.MsgPrefix = Some(s.text)
	case ruleInputPrefix:
		o.InputPrefix = Some(s.text)
	case ruleBreakLine:
		o.BreakLine = Some(s.flag)
	case ruleRepeatPrompt:
		o.RepeatPrompt = Some(s.flag)
	case ruleListSurrounds:
		o.ListSurrounds = Some(s.surr)
	case ruleListMsgPos:
		o.ListMsgPos = Some(s.pos)
	}
	return o
}

// Overrides is a sparse record of every atomic rule.
type Overrides struct {
	MsgPrefix     Opt[string]
	InputPrefix   Opt[string]
	BreakLine     Opt[bool]
	RepeatPrompt  Opt[bool]
	ListSurrounds Opt[Surrounds]
	ListMsgPos    Opt[Position]
}

// Merge returns the fields of o, with the unset ones taken from other.
func (o Overrides) Merge(other Overrides) Overrides {
	return Overrides{
		MsgPrefix:     o.MsgPrefix.Or(other.MsgPrefix),
		InputPrefix:   o.InputPrefix.Or(other.InputPrefix),
		BreakLine:     o.BreakLine.Or(other.BreakLine),
		RepeatPrompt:  o.RepeatPrompt.Or(other.RepeatPrompt),
		ListSurrounds: o.ListSurrounds.Or(other.ListSurrounds),
		ListMsgPos:    o.ListMsgPos.Or(other.ListMsgPos),
	}
}
