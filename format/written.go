package format

// WrittenRules is the set of rules accepted by written prompts, such as
// free-text, boolean, password and separated prompts.
type WrittenRules struct {
	MsgPrefix    Opt[string]
	InputPrefix  Opt[string]
	BreakLine    Opt[bool]
	RepeatPrompt Opt[bool]
}

// Written returns the written rules set by f.
func Written(f Fmt) WrittenRules {
	return WrittenRules{}.Apply(f)
}

// Merge returns the set fields of r, with the unset ones taken from other.
func (r WrittenRules) Merge(other WrittenRules) WrittenRules {
	return WrittenRules{
		MsgPrefix:    r.MsgPrefix.Or(other.MsgPrefix),
		InputPrefix:  r.InputPrefix.Or(other.InputPrefix),
		BreakLine:    r.BreakLine.Or(other.BreakLine),
		RepeatPrompt: r.RepeatPrompt.Or(other.RepeatPrompt),
	}
}

// Apply returns r with the settings of f written over it. List rules are ignored.
func (r WrittenRules) Apply(f Fmt) WrittenRules {
	o := f.Overrides()
	return WrittenRules{
		MsgPrefix:    o.MsgPrefix,
		InputPrefix:  o.InputPrefix,
		BreakLine:    o.BreakLine,
		RepeatPrompt: o.RepeatPrompt,
	}.Merge(r)
}

// Expand returns r with every unset field replaced by its default.
func (r WrittenRules) Expand() ExpandedWritten {
	def := DefaultWritten
	return ExpandedWritten{
		MsgPrefix:    r.MsgPrefix.Else(def.MsgPrefix),
		InputPrefix:  r.InputPrefix.Else(def.InputPrefix),
		BreakLine:    r.BreakLine.Else(def.BreakLine),
		RepeatPrompt: r.RepeatPrompt.Else(def.RepeatPrompt),
	}
}

// Resolve implements Rules.
func (r WrittenRules) Resolve() Expanded {
	return r.Expand()
}

// ExpandedWritten is the expanded version of WrittenRules.
type ExpandedWritten struct {
	// MsgPrefix is put right before the message.
	MsgPrefix string
	// InputPrefix is put right before the user input.
	InputPrefix string
	// BreakLine tells whether to break the line after the message.
	BreakLine bool
	// RepeatPrompt tells whether to display the message again, along with its
	// prefix, after an invalid input. If not, only the input prefix is repeated.
	RepeatPrompt bool
}

func (ExpandedWritten) expanded() {}

// DefaultWritten holds the default written rules.
var DefaultWritten = ExpandedWritten{
	MsgPrefix:    "- ",
	InputPrefix:  "> ",
	BreakLine:    true,
	RepeatPrompt: false,
}
