package metric

import "unicode"

// WeightedLevenshtein generalizes Levenshtein with per-rune insert/delete
// costs and per-ordered-pair replace costs. The cost tables are written
// once by the config loader and read-only afterwards; the bloom caches
// short-circuit the common "no custom cost" case.
type WeightedLevenshtein struct {
	defaultInsertDelete uint32
	defaultReplace      uint32
	caseSensitive       bool

	insertDeleteCosts map[rune]uint32
	replaceCosts      map[[2]rune]uint32
	insertDeleteCache *BloomCache
	replaceCache      *BloomCache
}

func NewWeightedLevenshtein() *WeightedLevenshtein {
	return &WeightedLevenshtein{
		defaultInsertDelete: 1,
		defaultReplace:      1,
		caseSensitive:       true,
		insertDeleteCosts:   make(map[rune]uint32),
		replaceCosts:        make(map[[2]rune]uint32),
		insertDeleteCache:   NewBloomCache(DEFAULT_BLOOM_BITS),
		replaceCache:        NewBloomCache(DEFAULT_BLOOM_BITS),
	}
}

func (wm *WeightedLevenshtein) fold(r rune) rune {
	if wm.caseSensitive {
		return r
	}
	return unicode.ToLower(r)
}

func (wm *WeightedLevenshtein) insertDeleteCost(r rune) uint32 {
	r = wm.fold(r)
	if !wm.insertDeleteCache.Check(runeHash(r)) {
		return wm.defaultInsertDelete
	}
	if cost, ok := wm.insertDeleteCosts[r]; ok {
		return cost
	}
	return wm.defaultInsertDelete
}

func (wm *WeightedLevenshtein) replaceCost(first, second rune) uint32 {
	first = wm.fold(first)
	second = wm.fold(second)
	if first == second {
		return 0
	}
	if !wm.replaceCache.Check(runePairHash(first, second)) {
		return wm.defaultReplace
	}
	if cost, ok := wm.replaceCosts[[2]rune{first, second}]; ok {
		return cost
	}
	return wm.defaultReplace
}

// Distance keeps the uniform metric's two-row skeleton: outer axis i over
// the longer string, inner axis j over the shorter one. The insert/delete
// arm of the shorter string indexes left[j-1], keeping the function
// symmetric in its arguments, and the first row is the cumulative
// insert/delete cost prefix rather than unit-scaled.
func (wm *WeightedLevenshtein) Distance(left, right []rune) uint32 {
	if len(left) > len(right) {
		left, right = right, left
	}

	bufSrc := make([]uint32, len(left)+1)
	bufDst := make([]uint32, len(left)+1)
	for j := 1; j <= len(left); j++ {
		bufSrc[j] = bufSrc[j-1] + wm.insertDeleteCost(left[j-1])
	}

	for i := 1; i <= len(right); i++ {
		rightCost := wm.insertDeleteCost(right[i-1])
		bufDst[0] = bufSrc[0] + rightCost
		for j := 1; j <= len(left); j++ {
			deletion := bufSrc[j] + rightCost
			insertion := bufDst[j-1] + wm.insertDeleteCost(left[j-1])
			substitution := bufSrc[j-1] + wm.replaceCost(left[j-1], right[i-1])
			bufDst[j] = min(deletion, insertion, substitution)
		}
		bufSrc, bufDst = bufDst, bufSrc
	}
	return bufSrc[len(left)]
}
