package format

// ThenRules is the set of rules accepted by two chained prompts. It holds the
// rule set of each side.
type ThenRules[A Rules[A], B Rules[B]] struct {
	First  A
	Second B
}

// Merge merges each side with the matching side of other.
func (r ThenRules[A, B]) Merge(other ThenRules[A, B]) ThenRules[A, B] {
	return ThenRules[A, B]{
		First:  r.First.Merge(other.First),
		Second: r.Second.Merge(other.Second),
	}
}

// Apply applies f to both sides. Each side keeps only the rules it accepts.
func (r ThenRules[A, B]) Apply(f Fmt) ThenRules[A, B] {
	return ThenRules[A, B]{
		First:  r.First.Apply(f),
		Second: r.Second.Apply(f),
	}
}

// Expand expands both sides.
func (r ThenRules[A, B]) Expand() ExpandedThen {
	return ExpandedThen{
		First:  r.First.Resolve(),
		Second: r.Second.Resolve(),
	}
}

// Resolve implements Rules.
func (r ThenRules[A, B]) Resolve() Expanded {
	return r.Expand()
}

// ExpandedThen is the expanded version of ThenRules.
type ExpandedThen struct {
	First  Expanded
	Second Expanded
}

func (ExpandedThen) expanded() {}
