//go:build debug

package omega

// checkInvariants enables the uniqueness assertions of deterministic lookups.
const checkInvariants = true
