// Package bktree implements a Burkhard-Keller tree over the dictionary.
// Every edge is labeled with the metric distance between its endpoints,
// which lets a tolerance query prune whole subtrees via the triangle
// inequality.
package bktree

import (
	"math"
	"sort"

	"github.com/fahmi-a-r/typo-corrector/pkg/metric"
)

// SearchResult is one dictionary entry within tolerance of the query.
// Tolerance carries the actual distance of this entry, not the query bound.
type SearchResult struct {
	Word      string `json:"word"`
	Tolerance uint32 `json:"tolerance"`
	Priority  uint32 `json:"priority"`
}

type TreeNode struct {
	data     []rune
	priority uint32
	children map[uint32]*TreeNode

	// edge-label bounds over children, maintained on every insert so the
	// search can scan a tight contiguous interval instead of iterating
	// the map
	minChildDist uint32
	maxChildDist uint32
}

func newTreeNode(data []rune, priority uint32) *TreeNode {
	return &TreeNode{
		data:         data,
		priority:     priority,
		children:     make(map[uint32]*TreeNode),
		minChildDist: math.MaxUint32,
		maxChildDist: 0,
	}
}

func (node *TreeNode) insert(data []rune, priority uint32, m metric.Metric) bool {
	distance := m.Distance(data, node.data)
	if distance == 0 {
		// duplicate word: accumulate priority, no new node
		node.priority += priority
		return false
	}
	if child, ok := node.children[distance]; ok {
		return child.insert(data, priority, m)
	}
	if distance > node.maxChildDist {
		node.maxChildDist = distance
	}
	if distance < node.minChildDist {
		node.minChildDist = distance
	}
	node.children[distance] = newTreeNode(data, priority)
	return true
}

func (node *TreeNode) findSimilar(data []rune, tolerance uint32, m metric.Metric, results *[]SearchResult) {
	myDistance := m.Distance(data, node.data)
	if myDistance <= tolerance {
		*results = append(*results, SearchResult{
			Word:      string(node.data),
			Tolerance: myDistance,
			Priority:  node.priority,
		})
	}

	// any child x with d(query,x) <= tolerance and edge label k satisfies
	// |myDistance - k| <= tolerance
	start := node.minChildDist
	if myDistance >= tolerance && myDistance-tolerance > start {
		start = myDistance - tolerance
	}
	end := node.maxChildDist
	if sum := uint64(myDistance) + uint64(tolerance); sum < uint64(end) {
		end = uint32(sum)
	}
	for dist := start; dist <= end; dist++ {
		if child, ok := node.children[dist]; ok {
			child.findSimilar(data, tolerance, m, results)
		}
	}
}

// edge label of each parent/child pair, for invariant checks in tests
func (node *TreeNode) walkEdges(visit func(parent, child *TreeNode, label uint32)) {
	for label, child := range node.children {
		visit(node, child, label)
		child.walkEdges(visit)
	}
}

// BKTree owns its nodes and the metric it was built with. Built once from
// the dictionary, read-only afterwards: concurrent FindSimilar calls need
// no locking.
type BKTree struct {
	metric metric.Metric
	root   *TreeNode
	size   int
}

func New(m metric.Metric) *BKTree {
	return &BKTree{metric: m}
}

// Insert adds a word or, when the word is already present, adds priority
// to the existing node. Reports whether a new node was created.
func (t *BKTree) Insert(data []rune, priority uint32) bool {
	if t.root == nil {
		t.root = newTreeNode(data, priority)
		t.size++
		return true
	}
	inserted := t.root.insert(data, priority, t.metric)
	if inserted {
		t.size++
	}
	return inserted
}

// FindSimilar returns every dictionary entry within tolerance of data,
// sorted by distance ascending then priority descending.
func (t *BKTree) FindSimilar(data []rune, tolerance uint32) []SearchResult {
	results := []SearchResult{}
	if t.root == nil {
		return results
	}
	t.root.findSimilar(data, tolerance, t.metric, &results)
	sort.Slice(results, func(i, j int) bool {
		if results[i].Tolerance != results[j].Tolerance {
			return results[i].Tolerance < results[j].Tolerance
		}
		return results[i].Priority > results[j].Priority
	})
	return results
}

// Len reports the number of distinct words in the tree.
func (t *BKTree) Len() int {
	return t.size
}

func (t *BKTree) Metric() metric.Metric {
	return t.metric
}

// WalkEdges visits every parent/child edge with its label.
func (t *BKTree) WalkEdges(visit func(parentData, childData []rune, label uint32)) {
	if t.root == nil {
		return
	}
	t.root.walkEdges(func(parent, child *TreeNode, label uint32) {
		visit(parent.data, child.data, label)
	})
}
