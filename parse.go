package intconv

import "github.com/indigo-web/utils/uf"

// ParseUint parses the whole of data as an unsigned integer in the given
// base (10 or 16). Unlike ReadUint, anything left after the digits is an
// error.
func ParseUint[U Uint](data []byte, base int) (U, error) {
	n, i, err := ReadUint[U](data, base)
	switch {
	case err != nil:
		return failParse[U](err)
	case i != len(data):
		return failParse[U](ErrBadDigit)
	}

	return n, nil
}

// ParseInt parses the whole of data as a signed integer in the given base
// (10 or 16), with an optional leading minus or plus sign.
func ParseInt[I Int](data []byte, base int) (I, error) {
	n, i, err := ReadInt[I](data, base)
	switch {
	case err != nil:
		return failParse[I](err)
	case i != len(data):
		return failParse[I](ErrBadDigit)
	}

	return n, nil
}

// ParseUintString is ParseUint for strings, converted without a copy.
func ParseUintString[U Uint](s string, base int) (U, error) {
	return ParseUint[U](uf.S2B(s), base)
}

// ParseIntString is ParseInt for strings, converted without a copy.
func ParseIntString[I Int](s string, base int) (I, error) {
	return ParseInt[I](uf.S2B(s), base)
}
