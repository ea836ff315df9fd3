package cart

import (
	"sort"
	"strconv"
	"strings"

	"github.com/martpe-org/martpeApp-sub003/models"
)

// Fingerprint is a cheap structural digest of a cart set: sorted
// "storeID:lineCount" pairs. Two snapshots with the same stores and the same
// line counts fingerprint equal even when deep content differs; the sync
// orchestrator uses this to skip redundant overwrites.
type Fingerprint string

func FingerprintOf(carts []models.Cart) Fingerprint {
	pairs := make([]string, 0, len(carts))
	for _, c := range carts {
		pairs = append(pairs, c.Store.ID+":"+strconv.Itoa(len(c.Items)))
	}
	sort.Strings(pairs)
	return Fingerprint(strings.Join(pairs, ";"))
}
