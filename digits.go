package intconv

// Digit counts of the greatest magnitude each width can represent,
// indexed by size in bytes. For unsigned widths that is the maximum
// value, for signed ones it is |min|, which is never shorter than max:
//
//	base 10: 255, 65535, 4294967295, 18446744073709551615
//	         128, 32768, 2147483648, 9223372036854775808
//	base 16: ff, ffff, ffffffff, ffffffffffffffff
//	         80, 8000, 80000000, 8000000000000000
//
// Note that 64-bit signed is the only entry where |min| and max differ in
// length from the unsigned counterpart: 19 digits against 20.
var (
	decDigits = [2][9]int8{
		{1: 3, 2: 5, 4: 10, 8: 20},
		{1: 3, 2: 5, 4: 10, 8: 19},
	}
	hexDigits = [2][9]int8{
		{1: 2, 2: 4, 4: 8, 8: 16},
		{1: 2, 2: 4, 4: 8, 8: 16},
	}
)

// MaxDigits returns the digit count of the greatest magnitude an integer
// of the given width can represent, which doubles as the point at which a
// digit accumulation loop must switch to overflow-checked steps: any
// value shorter than MaxDigits-1 digits fits the type no matter what the
// digits are. Supported widths are 8, 16, 32 and 64 bits, bases are 10
// and 16; anything else is a programming error.
func MaxDigits(bits int, signed bool, base int) int {
	switch bits {
	case 8, 16, 32, 64:
	default:
		panic("unsupported integer width")
	}

	return maxDigits(uintptr(bits/8), signed, base)
}

func maxDigits(size uintptr, signed bool, base int) int {
	s := 0
	if signed {
		s = 1
	}

	switch base {
	case 10:
		return int(decDigits[s][size])
	case 16:
		return int(hexDigits[s][size])
	default:
		panic("unsupported base")
	}
}
