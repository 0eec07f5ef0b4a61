//go:build !debug

package omega

const checkInvariants = false
