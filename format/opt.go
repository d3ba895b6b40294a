package format

// Opt is an optionally set value. The zero value is unset.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns an Opt set to v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

// IsSet reports whether the value is set.
func (o Opt[T]) IsSet() bool {
	return o.set
}

// Or returns o if it is set, other otherwise.
func (o Opt[T]) Or(other Opt[T]) Opt[T] {
	if o.set {
		return o
	}
	return other
}

// Else returns the value if it is set, def otherwise.
func (o Opt[T]) Else(def T) T {
	if o.set {
		return o.value
	}
	return def
}
