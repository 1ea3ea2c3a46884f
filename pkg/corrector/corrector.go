// Package corrector wraps the bk-tree behind the (candidate, tolerance)
// query the transport layer invokes.
package corrector

import (
	"time"
	"unicode/utf8"

	"github.com/fahmi-a-r/typo-corrector/pkg/bktree"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Corrector struct {
	tree *bktree.BKTree
	log  *zap.Logger
}

func New(tree *bktree.BKTree, log *zap.Logger) *Corrector {
	return &Corrector{
		tree: tree,
		log:  log,
	}
}

// Search returns every dictionary entry within tolerance of candidate,
// ranked (distance asc, priority desc), plus the wall time of the tree
// traversal in milliseconds. The dictionary was lowercased at load, so
// the candidate is lowercased the same way before the lookup. A candidate
// that is not valid UTF-8 yields an empty result list, not an error: one
// bad sub-query must not abort its batch.
func (c *Corrector) Search(candidate string, tolerance uint32) ([]bktree.SearchResult, int64) {
	if !utf8.ValidString(candidate) {
		c.log.Warn("candidate is not valid UTF-8", zap.String("candidate", candidate))
		return []bktree.SearchResult{}, 0
	}

	word := []rune(cases.Lower(language.Und).String(candidate))

	start := time.Now()
	results := c.tree.FindSimilar(word, tolerance)
	elapsed := time.Since(start).Milliseconds()

	return results, elapsed
}
