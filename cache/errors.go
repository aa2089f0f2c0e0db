package cache

import "github.com/akashihi/stlcache/policy"

type constError string

func (e constError) Error() string { return string(e) }

const (
	// ErrCacheFull is returned by Insert when the policy cannot name
	// an eviction victim to make room for a new entry.
	ErrCacheFull constError = "cache: full, no victim available"

	// ErrInvalidKey is returned when Insert is called with a key that
	// is already present.
	ErrInvalidKey constError = "cache: invalid key"
)

// ErrInvalidPolicy is returned by Swap when the two caches were built
// with different concrete Policy implementations.
var ErrInvalidPolicy = policy.ErrInvalidPolicy
