//go:build !physdebug

package physics

const strictInvariants = false
