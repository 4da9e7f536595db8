package physics

// invariant reports whether cond holds. Builds tagged physdebug panic with
// msg instead of returning false.
func invariant(cond bool, msg string) bool {
	if !cond && strictInvariants {
		panic("physics: " + msg)
	}
	return cond
}
