package format

// SelectedRules is the set of rules accepted by list prompts.
type SelectedRules struct {
	MsgPrefix     Opt[string]
	InputPrefix   Opt[string]
	BreakLine     Opt[bool]
	RepeatPrompt  Opt[bool]
	ListSurrounds Opt[Surrounds]
	ListMsgPos    Opt[Position]
}

// Selected returns the list rules set by f.
func Selected(f Fmt) SelectedRules {
	return SelectedRules{}.Apply(f)
}

// Merge returns the set fields of r, with the unset ones taken from other.
func (r SelectedRules) Merge(other SelectedRules) SelectedRules {
	return SelectedRules{
		MsgPrefix:     r.MsgPrefix.Or(other.MsgPrefix),
		InputPrefix:   r.InputPrefix.Or(other.InputPrefix),
		BreakLine:     r.BreakLine.Or(other.BreakLine),
		RepeatPrompt:  r.RepeatPrompt.Or(other.RepeatPrompt),
		ListSurrounds: r.ListSurrounds.Or(other.ListSurrounds),
		ListMsgPos:    r.ListMsgPos.Or(other.ListMsgPos),
	}
}

// Apply returns r with the settings of f written over it.
func (r SelectedRules) Apply(f Fmt) SelectedRules {
	o := f.Overrides()
	return SelectedRules(o).Merge(r)
}

// Expand returns r with every unset field replaced by its default.
func (r SelectedRules) Expand() ExpandedSelected {
	def := DefaultSelected
	return ExpandedSelected{
		MsgPrefix:     r.MsgPrefix.Else(def.MsgPrefix),
		InputPrefix:   r.InputPrefix.Else(def.InputPrefix),
		BreakLine:     r.BreakLine.Else(def.BreakLine),
		RepeatPrompt:  r.RepeatPrompt.Else(def.RepeatPrompt),
		ListSurrounds: r.ListSurrounds.Else(def.ListSurrounds),
		ListMsgPos:    r.ListMsgPos.Else(def.ListMsgPos),
	}
}

// Resolve implements Rules.
func (r SelectedRules) Resolve() Expanded {
	return r.Expand()
}

// ExpandedSelected is the expanded version of SelectedRules.
type ExpandedSelected struct {
	// MsgPrefix is put right before the message.
	MsgPrefix string
	// InputPrefix is put right before the user input.
	InputPrefix string
	// BreakLine tells whether to break the line after the message.
	BreakLine bool
	// RepeatPrompt tells whether to display the message again, along with its
	// prefix, after an invalid input. If not, only the input prefix is repeated.
	RepeatPrompt bool
	// ListSurrounds are put around the index of each list item.
	ListSurrounds Surrounds
	// ListMsgPos is the position of the message relative to the list.
	ListMsgPos Position
}

func (ExpandedSelected) expanded() {}

// DefaultSelected holds the default list rules.
var DefaultSelected = ExpandedSelected{
	MsgPrefix:     DefaultWritten.MsgPrefix,
	InputPrefix:   DefaultWritten.InputPrefix,
	BreakLine:     DefaultWritten.BreakLine,
	RepeatPrompt:  DefaultWritten.RepeatPrompt,
	ListSurrounds: Surrounds{Open: "[", Close: "] - "},
	ListMsgPos:    Bottom,
}
