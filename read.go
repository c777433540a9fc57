package intconv

import (
	"unsafe"

	"github.com/indigo-web/intconv/hexconv"
)

// ReadUint reads an unsigned integer of type U from the beginning of
// data, stopping at the first byte that is not a digit of the base. It
// returns the value and the number of bytes consumed. Base must be 10 or
// 16, anything else is a programming error.
//
// The error is ErrBadDigit if data contains no digits at all, or
// ErrOverflow if the digit sequence does not fit U. On error both the
// value and the consumed count are zero.
func ReadUint[U Uint](data []byte, base int) (U, int, error) {
	size := unsafe.Sizeof(U(0))

	n, i, err := read(data, base, maxDigits(size, false, base), ^uint64(0)>>(64-8*size))
	if err != nil {
		return failRead[U](err)
	}

	return U(n), i, nil
}

// ReadInt is ReadUint for signed types. An optional leading minus or plus
// sign is consumed and counted; negative magnitudes are admitted up to
// |min| of I.
func ReadInt[I Int](data []byte, base int) (I, int, error) {
	var (
		neg  bool
		sign int
	)
	if len(data) > 0 {
		switch data[0] {
		case '-':
			neg, sign = true, 1
		case '+':
			sign = 1
		}
	}

	size := unsafe.Sizeof(I(0))
	max := uint64(1)<<(8*size-1) - 1
	if neg {
		// the magnitude of the minimal value is one greater than max
		max++
	}

	n, i, err := read(data[sign:], base, maxDigits(size, true, base), max)
	if err != nil {
		return failRead[I](err)
	}

	if neg {
		return I(-int64(n)), sign + i, nil
	}

	return I(n), sign + i, nil
}

func read(data []byte, base, limit int, max uint64) (uint64, int, error) {
	switch base {
	case 10:
		return readDec(data, limit, max)
	case 16:
		return readHex(data, limit, max)
	default:
		panic("unsupported base")
	}
}

func readDec(data []byte, limit int, max uint64) (uint64, int, error) {
	var (
		n uint64
		i int
	)

	// no sequence shorter than limit-1 digits can exceed max, whatever
	// the digits are, so no checks until then
	for ; i < limit-1 && i < len(data); i++ {
		d := data[i] - '0'
		if d > 9 {
			if i == 0 {
				return 0, 0, ErrBadDigit
			}

			return n, i, nil
		}

		n = n*10 + uint64(d)
	}

	cutoff := max/10 + 1

	for ; i < len(data); i++ {
		d := data[i] - '0'
		if d > 9 {
			return n, i, nil
		}
		if i >= limit || n >= cutoff {
			return 0, 0, ErrOverflow
		}

		n *= 10
		next := n + uint64(d)
		if next < n || next > max {
			return 0, 0, ErrOverflow
		}
		n = next
	}

	if i == 0 {
		return 0, 0, ErrBadDigit
	}

	return n, i, nil
}

func readHex(data []byte, limit int, max uint64) (uint64, int, error) {
	var (
		n uint64
		i int
	)

	for ; i < limit-1 && i < len(data); i++ {
		d := hexconv.Halfbyte[data[i]]
		if d == hexconv.Invalid {
			if i == 0 {
				return 0, 0, ErrBadDigit
			}

			return n, i, nil
		}

		n = n<<4 | uint64(d)
	}

	for ; i < len(data); i++ {
		d := hexconv.Halfbyte[data[i]]
		if d == hexconv.Invalid {
			return n, i, nil
		}
		if i >= limit || n > max>>4 {
			return 0, 0, ErrOverflow
		}

		n = n<<4 | uint64(d)
		if n > max {
			return 0, 0, ErrOverflow
		}
	}

	if i == 0 {
		return 0, 0, ErrBadDigit
	}

	return n, i, nil
}
