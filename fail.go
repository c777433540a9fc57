package intconv

// The funnels below are the single exit for every malformed parse. They
// zero every output, so a caller never observes a partially accumulated
// value, and they are kept out of line so the accumulation loops stay
// small enough to inline themselves.

//go:noinline
func failRead[T Integer](err error) (T, int, error) {
	return 0, 0, err
}

//go:noinline
func failParse[T Integer](err error) (T, error) {
	return 0, err
}
