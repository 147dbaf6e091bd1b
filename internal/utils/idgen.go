// internal/utils/idgen.go
package utils

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Entity prefixes embedded in generated IDs. The prefixes are
// client-visible (they leak into URLs and stored references), so
// changing them is a breaking change.
const (
	PrefixProduct     = 100
	PrefixReview      = 101
	PrefixColor       = 102
	PrefixForm        = 103
	PrefixCategory    = 104
	PrefixPreCategory = 105
	PrefixMetatag     = 106
)

// NewID returns a probabilistically-unique identifier: the decimal
// entity prefix concatenated with the low 32 bits of a random UUID.
// 32 bits of entropy per entity kind is acceptable at admin-panel
// write volumes; it is not collision-safe at scale.
func NewID(prefix int) int64 {
	suffix := uuid.New().ID()
	id, err := strconv.ParseInt(fmt.Sprintf("%d%d", prefix, suffix), 10, 64)
	if err != nil {
		// prefix + 10 decimal digits always fits in int64 for the
		// prefixes above; reaching this means a programming error.
		panic(err)
	}
	return id
}
