package engine

import "container/heap"

// predHeap is a bounded min-heap of Predictions ordered so the weakest
// candidate sits at index 0 — that's the one a full heap evicts when a
// better candidate arrives. Ties are unspecified; container/heap does not
// guarantee insertion-order stability.
type predHeap []Prediction

func (h predHeap) Len() int            { return len(h) }
func (h predHeap) Less(i, j int) bool  { return h[i].LogProb < h[j].LogProb }
func (h predHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *predHeap) Push(x any)         { *h = append(*h, x.(Prediction)) }
func (h *predHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// Predict computes the hidden vector for input and returns up to k
// highest-scoring classes, sorted descending by log-probability. Under
// hierarchical softmax it prunes the Huffman tree DFS using the heap's
// current worst score; under negative sampling or full softmax it scores
// every class via full softmax.
func (s *State) Predict(input []int32, k int) []Prediction {
	s.computeHidden(input)

	h := &predHeap{}
	heap.Init(h)

	if s.args.Loss == HierarchicalSoftmax {
		s.predictHS(h, k)
	} else {
		s.predictFlat(h, k)
	}

	out := make([]Prediction, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(h).(Prediction)
	}
	return out
}

func (s *State) predictFlat(h *predHeap, k int) {
	s.output.Mul(s.wo, s.hidden)
	softmaxInPlace(s.output)
	for i := 0; i < s.wo.R; i++ {
		lp := s.logtab.Lookup(s.output[i])
		pushBounded(h, Prediction{Class: int32(i), LogProb: lp}, k)
	}
}

func (s *State) predictHS(h *predHeap, k int) {
	osz := s.tree.NumClasses()
	root := osz - 2 + osz // root's flat index
	if osz == 1 {
		pushBounded(h, Prediction{Class: 0, LogProb: 0}, k)
		return
	}
	s.dfsHS(h, k, root, 0)
}

func (s *State) dfsHS(h *predHeap, k, flatIdx int, score float32) {
	osz := s.tree.NumClasses()
	if flatIdx < osz {
		pushBounded(h, Prediction{Class: int32(flatIdx), LogProb: score}, k)
		return
	}
	if h.Len() >= k && score < (*h)[0].LogProb {
		return
	}
	n := flatIdx - osz
	f := s.sigmoid.Lookup(s.wo.DotRow(s.hidden, n))
	s.dfsHS(h, k, s.tree.Left(n), score+s.logtab.Lookup(1-f))
	s.dfsHS(h, k, s.tree.Right(n), score+s.logtab.Lookup(f))
}

func pushBounded(h *predHeap, p Prediction, k int) {
	if h.Len() < k {
		heap.Push(h, p)
		return
	}
	if k == 0 {
		return
	}
	if p.LogProb > (*h)[0].LogProb {
		heap.Pop(h)
		heap.Push(h, p)
	}
}
