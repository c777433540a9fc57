// Package intconv parses fixed-width integers out of byte slices: the
// numeric substrate a byte-at-a-time protocol parser needs for content
// lengths, chunk sizes, ports and alike. There are no allocations, and no
// per-digit overflow checks until a value is long enough to possibly need
// them.
package intconv

// Uint covers the unsigned widths the parsers support. uint takes the
// width of the platform.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// Int covers the signed widths the parsers support. int takes the width
// of the platform.
type Int interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int
}

type Integer interface {
	Uint | Int
}

// IsDigit reports whether c is an ASCII decimal digit. The subtraction
// wraps around for any c below '0', so a single unsigned comparison
// covers both bounds.
func IsDigit(c byte) bool {
	return c-'0' <= 9
}
