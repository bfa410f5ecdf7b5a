// Package unit defines the time units supported by the library and the
// pure conversion arithmetic between them.
//
// # Unit Table
//
// Eight units are supported, ordered from finest to coarsest:
//
//	Millisecond (rank 0)
//	Second      (rank 1)
//	Minute      (rank 2)
//	Hour        (rank 3)
//	Day         (rank 4)
//	Week        (rank 5)
//	Month       (rank 6)
//	Year        (rank 7)
//
// Adjacent units are linked by a fixed scale table: 1000 ms per second,
// 60 seconds per minute, and so on. Months and years use fixed
// average-length approximations (4.345238 weeks per month, 12 months per
// year); there is no calendar-aware arithmetic.
//
// # Conversion
//
// Rescale walks the adjacency chain between any two units. Round applies
// decimal rounding by shifting the exponent of the value's shortest
// decimal representation, which avoids the artifacts of multiplying by a
// power of ten.
//
// # Concision
//
// Concise walks a value up or down the unit table until it lands in the
// half-open range [1, nextFactor) for some unit, producing the most
// natural unit for display. The walk moves monotonically toward rank 0
// or rank 7, so it terminates within eight steps.
//
// # Defensive Defaults
//
// String-based entry points never fail on an unrecognized unit name:
// Normalize falls back to Hour. This mirrors the tolerant behavior of
// the formatting layer and keeps every function in this package total.
package unit
