// Package identifier generates the opaque ids used for marketplace
// entities: a base36 millisecond timestamp followed by a base36 random
// suffix. Unique with high probability, sortable-ish by creation time,
// and not cryptographically secure.
package identifier

import (
	"math/rand/v2"
	"strconv"
	"strings"
	"time"
)

const (
	alphabet     = "0123456789abcdefghijklmnopqrstuvwxyz"
	randomLength = 7
)

// New returns a fresh entity id, e.g. "m1x2abc-k39fh2a".
func New() string {
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	b.WriteByte('-')
	for i := 0; i < randomLength; i++ {
		b.WriteByte(alphabet[rand.IntN(len(alphabet))])
	}
	return b.String()
}
