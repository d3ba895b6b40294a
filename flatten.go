package ineed

import "github.com/ahmadbky/ineed/format"

// Flatten3 flattens the output of 3 chained prompts.
//
// Example:
//
//	p := ineed.Flatten3(ineed.Then(ineed.Then(
//		ineed.Written[string]("Your name"),
//		ineed.Written[uint8]("Your age")),
//		ineed.Bool("Are you sure?"),
//	))
//	user, err := ineed.Run(p)
//	if err != nil {
//		log.Fatal(err)
//	}
//	name, age, sure := user.Values()
func Flatten3[A, B, C any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[A, B], C], R]) Promptable[Tuple3[A, B, C], R] {
	return Map(p, func(t Tuple2[Tuple2[A, B], C]) Tuple3[A, B, C] {
		return Tuple3[A, B, C]{
			V1: t.V1.V1,
			V2: t.V1.V2,
			V3: t.V2,
		}
	})
}

// Flatten4 flattens the output of 4 chained prompts.
func Flatten4[A, B, C, D any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[Tuple2[A, B], C], D], R]) Promptable[Tuple4[A, B, C, D], R] {
	return Map(p, func(t Tuple2[Tuple2[Tuple2[A, B], C], D]) Tuple4[A, B, C, D] {
		return Tuple4[A, B, C, D]{
			V1: t.V1.V1.V1,
			V2: t.V1.V1.V2,
			V3: t.V1.V2,
			V4: t.V2,
		}
	})
}

// Flatten5 flattens the output of 5 chained prompts.
func Flatten5[A, B, C, D, E any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], R]) Promptable[Tuple5[A, B, C, D, E], R] {
	return Map(p, func(t Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E]) Tuple5[A, B, C, D, E] {
		return Tuple5[A, B, C, D, E]{
			V1: t.V1.V1.V1.V1,
			V2: t.V1.V1.V1.V2,
			V3: t.V1.V1.V2,
			V4: t.V1.V2,
			V5: t.V2,
		}
	})
}

// Flatten6 flattens the output of 6 chained prompts.
func Flatten6[A, B, C, D, E, F any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], R]) Promptable[Tuple6[A, B, C, D, E, F], R] {
	return Map(p, func(t Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F]) Tuple6[A, B, C, D, E, F] {
		return Tuple6[A, B, C, D, E, F]{
			V1: t.V1.V1.V1.V1.V1,
			V2: t.V1.V1.V1.V1.V2,
			V3: t.V1.V1.V1.V2,
			V4: t.V1.V1.V2,
			V5: t.V1.V2,
			V6: t.V2,
		}
	})
}

// Flatten7 flattens the output of 7 chained prompts.
func Flatten7[A, B, C, D, E, F, G any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G], R]) Promptable[Tuple7[A, B, C, D, E, F, G], R] {
	return Map(p, func(t Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G]) Tuple7[A, B, C, D, E, F, G] {
		return Tuple7[A, B, C, D, E, F, G]{
			V1: t.V1.V1.V1.V1.V1.V1,
			V2: t.V1.V1.V1.V1.V1.V2,
			V3: t.V1.V1.V1.V1.V2,
			V4: t.V1.V1.V1.V2,
			V5: t.V1.V1.V2,
			V6: t.V1.V2,
			V7: t.V2,
		}
	})
}

// Flatten8 flattens the output of 8 chained prompts.
func Flatten8[A, B, C, D, E, F, G, H any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G], H], R]) Promptable[Tuple8[A, B, C, D, E, F, G, H], R] {
	return Map(p, func(t Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G], H]) Tuple8[A, B, C, D, E, F, G, H] {
		return Tuple8[A, B, C, D, E, F, G, H]{
			V1: t.V1.V1.V1.V1.V1.V1.V1,
			V2: t.V1.V1.V1.V1.V1.V1.V2,
			V3: t.V1.V1.V1.V1.V1.V2,
			V4: t.V1.V1.V1.V1.V2,
			V5: t.V1.V1.V1.V2,
			V6: t.V1.V1.V2,
			V7: t.V1.V2,
			V8: t.V2,
		}
	})
}

// Flatten9 flattens the output of 9 chained prompts.
func Flatten9[A, B, C, D, E, F, G, H, I any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G], H], I], R]) Promptable[Tuple9[A, B, C, D, E, F, G, H, I], R] {
	return Map(p, func(t Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G], H], I]) Tuple9[A, B, C, D, E, F, G, H, I] {
		return Tuple9[A, B, C, D, E, F, G, H, I]{
			V1: t.V1.V1.V1.V1.V1.V1.V1.V1,
			V2: t.V1.V1.V1.V1.V1.V1.V1.V2,
			V3: t.V1.V1.V1.V1.V1.V1.V2,
			V4: t.V1.V1.V1.V1.V1.V2,
			V5: t.V1.V1.V1.V1.V2,
			V6: t.V1.V1.V1.V2,
			V7: t.V1.V1.V2,
			V8: t.V1.V2,
			V9: t.V2,
		}
	})
}

// Flatten10 flattens the output of 10 chained prompts.
func Flatten10[A, B, C, D, E, F, G, H, I, J any, R format.Rules[R]](p Promptable[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G], H], I], J], R]) Promptable[Tuple10[A, B, C, D, E, F, G, H, I, J], R] {
	return Map(p, func(t Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[Tuple2[A, B], C], D], E], F], G], H], I], J]) Tuple10[A, B, C, D, E, F, G, H, I, J] {
		return Tuple10[A, B, C, D, E, F, G, H, I, J]{
			V1: t.V1.V1.V1.V1.V1.V1.V1.V1.V1,
			V2: t.V1.V1.V1.V1.V1.V1.V1.V1.V2,
			V3: t.V1.V1.V1.V1.V1.V1.V1.V2,
			V4: t.V1.V1.V1.V1.V1.V1.V2,
			V5: t.V1.V1.V1.V1.V1.V2,
			V6: t.V1.V1.V1.V1.V2,
			V7: t.V1.V1.V1.V2,
			V8: t.V1.V1.V2,
			V9: t.V1.V2,
			V10: t.V2,
		}
	})
}
