package metric

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func (wm *WeightedLevenshtein) addInsertDeleteCostForTest(r rune, cost uint32) {
	wm.insertDeleteCosts[r] = cost
	wm.insertDeleteCache.Add(runeHash(r))
}

func (wm *WeightedLevenshtein) addReplaceCostForTest(first, second rune, cost uint32) {
	wm.replaceCosts[[2]rune{first, second}] = cost
	wm.replaceCosts[[2]rune{second, first}] = cost
	wm.replaceCache.Add(runePairHash(first, second))
	wm.replaceCache.Add(runePairHash(second, first))
}

func TestWeightedDefaultsMatchUniform(t *testing.T) {
	wm := NewWeightedLevenshtein()
	lv := NewLevenshtein()
	rnd := rand.New(rand.NewSource(7))

	for i := 0; i < 300; i++ {
		a := randomWord(rnd, 10)
		b := randomWord(rnd, 10)
		assert.Equal(t, lv.Distance(a, b), wm.Distance(a, b),
			"unit-cost weighted metric must agree with uniform on %q vs %q", string(a), string(b))
	}
}

func TestWeightedDistance(t *testing.T) {
	t.Run("custom replace override", func(t *testing.T) {
		wm := NewWeightedLevenshtein()
		wm.defaultReplace = 3
		wm.addReplaceCostForTest('e', 'a', 1)

		assert.Equal(t, uint32(1), wm.Distance([]rune("grey"), []rune("gray")))
		// no override for this pair: replace 3 loses to delete+insert 2
		assert.Equal(t, uint32(2), wm.Distance([]rune("grey"), []rune("groy")))
	})

	t.Run("expensive replace falls back to insert plus delete", func(t *testing.T) {
		wm := NewWeightedLevenshtein()
		wm.defaultReplace = 3
		wm.caseSensitive = false
		wm.addReplaceCostForTest('e', 'i', 1)

		// the S4 dictionary: no override for y, so "fyle" is 2 away from both
		assert.Equal(t, uint32(2), wm.Distance([]rune("fyle"), []rune("file")))
		assert.Equal(t, uint32(2), wm.Distance([]rune("file"), []rune("fole")))
		assert.Equal(t, uint32(0), wm.Distance([]rune("fole"), []rune("fole")))
	})

	t.Run("insert delete cost from empty", func(t *testing.T) {
		// the first DP row carries cumulative configured costs, not unit steps
		wm := NewWeightedLevenshtein()
		for _, vowel := range "aeiou" {
			wm.addInsertDeleteCostForTest(vowel, 2)
		}

		assert.Equal(t, uint32(2), wm.Distance([]rune("a"), []rune("")))
		assert.Equal(t, uint32(4), wm.Distance([]rune(""), []rune("ae")))
		assert.Equal(t, uint32(3), wm.Distance([]rune("ab"), []rune("")))
	})

	t.Run("case folding", func(t *testing.T) {
		sensitive := NewWeightedLevenshtein()
		insensitive := NewWeightedLevenshtein()
		insensitive.caseSensitive = false

		assert.Equal(t, uint32(0), insensitive.Distance([]rune("FILE"), []rune("file")))
		assert.Equal(t, uint32(4), sensitive.Distance([]rune("FILE"), []rune("file")))
	})
}

func TestWeightedMetricAxioms(t *testing.T) {
	wm := NewWeightedLevenshtein()
	wm.defaultReplace = 3
	wm.caseSensitive = false
	wm.addReplaceCostForTest('e', 'i', 1)
	wm.addInsertDeleteCostForTest('a', 2)

	rnd := rand.New(rand.NewSource(99))
	for i := 0; i < 500; i++ {
		a := randomWord(rnd, 8)
		b := randomWord(rnd, 8)
		c := randomWord(rnd, 8)

		assert.Zero(t, wm.Distance(a, a))
		assert.Equal(t, wm.Distance(a, b), wm.Distance(b, a),
			"weighted metric must be symmetric on %q vs %q", string(a), string(b))
		assert.LessOrEqual(t, wm.Distance(a, c), wm.Distance(a, b)+wm.Distance(b, c))
	}
}
