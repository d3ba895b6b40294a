package ineed

// Tuples hold the flattened output of chained prompts. Field Vn holds the
// value of the n-th prompt of the chain.

// Tuple2 holds 2 values.
type Tuple2[A, B any] struct {
	V1 A
	V2 B
}

// Values returns the values of the tuple.
func (t Tuple2[A, B]) Values() (A, B) {
	return t.V1, t.V2
}

// Tuple3 holds 3 values.
type Tuple3[A, B, C any] struct {
	V1 A
	V2 B
	V3 C
}

// Values returns the values of the tuple.
func (t Tuple3[A, B, C]) Values() (A, B, C) {
	return t.V1, t.V2, t.V3
}

// Tuple4 holds 4 values.
type Tuple4[A, B, C, D any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
}

// Values returns the values of the tuple.
func (t Tuple4[A, B, C, D]) Values() (A, B, C, D) {
	return t.V1, t.V2, t.V3, t.V4
}

// Tuple5 holds 5 values.
type Tuple5[A, B, C, D, E any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
}

// Values returns the values of the tuple.
func (t Tuple5[A, B, C, D, E]) Values() (A, B, C, D, E) {
	return t.V1, t.V2, t.V3, t.V4, t.V5
}

// Tuple6 holds 6 values.
type Tuple6[A, B, C, D, E, F any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
}

// Values returns the values of the tuple.
func (t Tuple6[A, B, C, D, E, F]) Values() (A, B, C, D, E, F) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6
}

// Tuple7 holds 7 values.
type Tuple7[A, B, C, D, E, F, G any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
}

// Values returns the values of the tuple.
func (t Tuple7[A, B, C, D, E, F, G]) Values() (A, B, C, D, E, F, G) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7
}

// Tuple8 holds 8 values.
type Tuple8[A, B, C, D, E, F, G, H any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
}

// Values returns the values of the tuple.
func (t Tuple8[A, B, C, D, E, F, G, H]) Values() (A, B, C, D, E, F, G, H) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8
}

// Tuple9 holds 9 values.
type Tuple9[A, B, C, D, E, F, G, H, I any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
}

// Values returns the values of the tuple.
func (t Tuple9[A, B, C, D, E, F, G, H, I]) Values() (A, B, C, D, E, F, G, H, I) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9
}

// Tuple10 holds 10 values.
type Tuple10[A, B, C, D, E, F, G, H, I, J any] struct {
	V1 A
	V2 B
	V3 C
	V4 D
	V5 E
	V6 F
	V7 G
	V8 H
	V9 I
	V10 J
}

// Values returns the values of the tuple.
func (t Tuple10[A, B, C, D, E, F, G, H, I, J]) Values() (A, B, C, D, E, F, G, H, I, J) {
	return t.V1, t.V2, t.V3, t.V4, t.V5, t.V6, t.V7, t.V8, t.V9, t.V10
}
