package assemble

import (
	"fmt"
	"strings"

	"github.com/takaaki-mizuno/local-book-translator/internal/chunk"
	"github.com/takaaki-mizuno/local-book-translator/internal/translate"
)

// MissingIndexError reports a gap in the per-chunk results. A gap means an
// earlier stage dropped a chunk; skipping it would silently mask the loss, so
// assembly fails instead.
type MissingIndexError struct {
	Index int
}

func (e *MissingIndexError) Error() string {
	return fmt.Sprintf("missing translation for chunk %d", e.Index)
}

// Join reconstructs one Markdown document from per-chunk results in ascending
// index order, restoring the blank-line block separation used when chunking.
// The result indices must be exactly 0..n-1; results may arrive in any order.
func Join(results []translate.Result) (string, error) {
	texts := make([]string, len(results))
	seen := make([]bool, len(results))

	for _, r := range results {
		if r.Index < 0 || r.Index >= len(results) || seen[r.Index] {
			// An out-of-range or duplicate index leaves some slot
			// unfilled; the gap check below names it.
			continue
		}
		seen[r.Index] = true
		texts[r.Index] = r.Text
	}

	for i, ok := range seen {
		if !ok {
			return "", &MissingIndexError{Index: i}
		}
	}

	return strings.Join(texts, chunk.Separator), nil
}
