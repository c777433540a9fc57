package hexconv

// Invalid is what Halfbyte maps every byte outside of 0-9, a-f and A-F
// to. It cannot collide with a decoded nibble, as those never exceed 15.
const Invalid = 0xFF

// Halfbyte maps a byte to the value of the hexadecimal digit it spells,
// or to Invalid. The table is total, thereby it can be indexed by any raw
// input byte without prior validation. It is filled once before main and
// never written afterwards, so unsynchronized concurrent reads are safe.
var Halfbyte = func() (table [256]byte) {
	for c := range table {
		switch {
		case c >= '0' && c <= '9':
			table[c] = byte(c) - '0'
		case c >= 'a' && c <= 'f':
			table[c] = byte(c) - 'a' + 10
		case c >= 'A' && c <= 'F':
			table[c] = byte(c) - 'A' + 10
		default:
			table[c] = Invalid
		}
	}

	return table
}()

// Is reports whether c is a hexadecimal digit.
func Is(c byte) bool {
	return Halfbyte[c] != Invalid
}
