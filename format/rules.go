package format

// Rules is the contract of a rule set R.
//
// A rule set is partial: any of its fields may be unset. Merge keeps the set
// fields of the receiver and takes the others from other. Apply returns a copy
// of the receiver with the settings of f it accepts written over it. Resolve
// returns the rule set with every unset field replaced by its default.
type Rules[R any] interface {
	Merge(other R) R
	Apply(f Fmt) R
	Resolve() Expanded
}

// Expanded is a rule set with no unset field.
//
// It is implemented by ExpandedWritten, ExpandedSelected and ExpandedThen.
type Expanded interface {
	expanded()
}
