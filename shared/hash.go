package shared

import (
	"github.com/spaolacci/murmur3"
	"strings"
)

// ContentHash derives a stable 64-bit key from the given parts. Used to
// dedup scheduled tweets and engagement targets without comparing full text.
func ContentHash(parts ...string) int64 {
	joined := strings.Join(parts, "\x1f")
	return int64(murmur3.Sum64([]byte(joined)))
}
