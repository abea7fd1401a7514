package huff2

// maxNodes bounds the flat node array: at most symbolRange leaves, and at
// most symbolRange-1 internal nodes are ever created to join them.
const maxNodes = 2 * symbolRange

// node is one entry in the flat, arena-style tree representation. A leaf has
// left == right == -1 and symbol in [0, 255]; an internal node has
// symbol == -1 and left/right pointing at earlier entries in the same
// array. Indices, not pointers, keep the whole tree one contiguous
// allocation with trivial bounds and no ownership cycles to reason about.
type node struct {
	weight      uint64
	left, right int32
	symbol      int32
}

// emptyRoot and noBuildErr are returned by buildTree to signal its
// degenerate cases without forcing callers to special-case node counts.
const (
	emptyRoot  = -1
	noBuildErr = -2 // sentinel "root" for a build failure; never a valid index
)

// mergeHeap is a small binary min-heap over node indices into a shared
// nodes slice, ordered by (weight, index) so that ties are always broken
// in favor of the earlier-inserted node. Its push/pop are array-indexed,
// not pointer-linked, matching how the tree builder itself stores nodes.
//
// Bit width aside, this is the same heap as in the reference huffman
// implementation this package's container format is drawn from: a fixed
// array of indices with sift-up on push and sift-down-from-root on pop.
type mergeHeap struct {
	data  []int
	nodes []node
}

func (h *mergeHeap) less(a, b int) bool {
	if h.nodes[a].weight != h.nodes[b].weight {
		return h.nodes[a].weight < h.nodes[b].weight
	}
	return a < b
}

func (h *mergeHeap) push(index int) {
	h.data = append(h.data, index)
	i := len(h.data) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(h.data[i], h.data[parent]) {
			break
		}
		h.data[i], h.data[parent] = h.data[parent], h.data[i]
		i = parent
	}
}

func (h *mergeHeap) pop() int {
	root := h.data[0]
	last := len(h.data) - 1
	h.data[0] = h.data[last]
	h.data = h.data[:last]

	i := 0
	for {
		left, right := i*2+1, i*2+2
		smallest := i
		if left < len(h.data) && h.less(h.data[left], h.data[smallest]) {
			smallest = left
		}
		if right < len(h.data) && h.less(h.data[right], h.data[smallest]) {
			smallest = right
		}
		if smallest == i {
			break
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
	return root
}

// buildTree builds a Huffman tree over the symbols with non-zero frequency
// in freq, returning the flat node array and the index of the root.
//
// It returns (emptyRoot, nodes, nil) when freq is entirely zero. Otherwise
// the root index is always >= 0, even when exactly one symbol is present
// (the returned tree is then a single leaf).
//
// Ties in the priority queue are broken by ascending insertion index — the
// slot a leaf or internal node occupies in nodes — which is what makes the
// derived lengths, and therefore the canonical codes, identical across
// runs and platforms for inputs with equal-frequency symbols.
func buildTree(freq [symbolRange]uint64) (root int, nodes []node, err error) {
	nodes = make([]node, 0, maxNodes)
	h := &mergeHeap{nodes: nodes}

	for symbol := 0; symbol < symbolRange; symbol++ {
		if freq[symbol] == 0 {
			continue
		}
		idx := len(nodes)
		nodes = append(nodes, node{weight: freq[symbol], left: -1, right: -1, symbol: int32(symbol)})
		h.nodes = nodes
		h.push(idx)
	}

	if len(h.data) == 0 {
		return emptyRoot, nodes, nil
	}
	if len(h.data) == 1 {
		return h.data[0], nodes, nil
	}

	for len(h.data) > 1 {
		a := h.pop()
		b := h.pop()
		if len(nodes) >= maxNodes {
			return noBuildErr, nil, errf(KindUnknown, "build tree", nil)
		}
		idx := len(nodes)
		nodes = append(nodes, node{
			weight: nodes[a].weight + nodes[b].weight,
			left:   int32(a),
			right:  int32(b),
			symbol: -1,
		})
		h.nodes = nodes
		h.push(idx)
	}

	return h.pop(), nodes, nil
}

func (n node) isLeaf() bool { return n.left < 0 && n.right < 0 }
