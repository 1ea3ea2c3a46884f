package corrector

import (
	"testing"

	"github.com/fahmi-a-r/typo-corrector/pkg/bktree"
	"github.com/fahmi-a-r/typo-corrector/pkg/metric"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCorrector(words map[string]uint32) *Corrector {
	tree := bktree.New(metric.NewLevenshtein())
	for word, priority := range words {
		tree.Insert([]rune(word), priority)
	}
	return New(tree, zap.NewNop())
}

func TestSearch(t *testing.T) {
	t.Run("lowercases the candidate", func(t *testing.T) {
		c := newTestCorrector(map[string]uint32{"café": 1})

		results, _ := c.Search("CAFÉ", 0)
		require.Len(t, results, 1)
		assert.Equal(t, "café", results[0].Word)
	})

	t.Run("ranked corrections", func(t *testing.T) {
		c := newTestCorrector(map[string]uint32{"cat": 5, "car": 3, "bat": 2})

		results, elapsed := c.Search("cat", 1)
		require.Len(t, results, 3)
		assert.Equal(t, "cat", results[0].Word)
		assert.Equal(t, "car", results[1].Word)
		assert.Equal(t, "bat", results[2].Word)
		assert.GreaterOrEqual(t, elapsed, int64(0))
	})

	t.Run("invalid utf-8 yields empty results", func(t *testing.T) {
		c := newTestCorrector(map[string]uint32{"cat": 1})

		results, elapsed := c.Search("ca\xff", 2)
		assert.NotNil(t, results)
		assert.Empty(t, results)
		assert.Zero(t, elapsed)
	})

	t.Run("empty tree", func(t *testing.T) {
		c := New(bktree.New(metric.NewLevenshtein()), zap.NewNop())

		results, _ := c.Search("anything", 5)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	})
}
