package engine

// binaryLogistic is the shared primitive behind all three loss kernels.
// It scores output row t against s.hidden, accumulates the hidden-space
// gradient in s.grad BEFORE mutating wo[t] (the gradient needs the
// pre-update row), then updates wo[t] in place.
func (s *State) binaryLogistic(t int32, y, lr float32) float32 {
	score := s.sigmoid.Lookup(s.wo.DotRow(s.hidden, int(t)))
	alpha := lr * (y - score)
	s.grad.AddRowScaled(s.wo, int(t), alpha)
	s.wo.AddRow(s.hidden, int(t), alpha)
	if y > 0.5 {
		return -s.logtab.Lookup(score)
	}
	return -s.logtab.Lookup(1 - score)
}

// negativeSampling runs binaryLogistic once on the true target with
// y=1, then Neg times with y=0 on fresh negatives drawn from the
// negative-sampling table, none of them equal to target.
func (s *State) negativeSampling(target int32, lr float32) float32 {
	s.grad.Zero()
	loss := s.binaryLogistic(target, 1.0, lr)
	for i := 0; i < s.args.Neg; i++ {
		neg := s.negTbl.GetNegative(target)
		loss += s.binaryLogistic(neg, 0.0, lr)
	}
	return loss
}

// hierarchicalSoftmax runs binaryLogistic once per (internal node, bit)
// pair along target's leaf-to-root path in the Huffman tree.
func (s *State) hierarchicalSoftmax(target int32, lr float32) float32 {
	s.grad.Zero()
	path := s.tree.Path(int(target))
	code := s.tree.Code(int(target))
	var loss float32
	for i, node := range path {
		y := float32(0)
		if code[i] {
			y = 1
		}
		loss += s.binaryLogistic(node, y, lr)
	}
	return loss
}

// softmaxLoss runs the full osz-way softmax: project hidden through wo,
// normalize, then for every class treat the (indicator - prob) difference
// as the binary-logistic alpha, accumulating grad and updating wo[i] in
// the same order binaryLogistic would.
func (s *State) softmaxLoss(target int32, lr float32) float32 {
	s.grad.Zero()
	s.output.Mul(s.wo, s.hidden)
	softmaxInPlace(s.output)
	for i := 0; i < s.wo.R; i++ {
		indicator := float32(0)
		if int32(i) == target {
			indicator = 1
		}
		alpha := lr * (indicator - s.output[i])
		s.grad.AddRowScaled(s.wo, i, alpha)
		s.wo.AddRow(s.hidden, i, alpha)
	}
	return -s.logtab.Lookup(s.output[target])
}

// runLoss dispatches to the configured loss kernel. It is the single call
// site that turns the closed {ns, hs, softmax} variant into a branch,
// kept out of the update drivers so Update/UpdateAttn/UpdateAttn2 don't
// repeat the switch three times.
func (s *State) runLoss(target int32, lr float32) float32 {
	switch s.args.Loss {
	case NegativeSampling:
		return s.negativeSampling(target, lr)
	case HierarchicalSoftmax:
		return s.hierarchicalSoftmax(target, lr)
	case Softmax:
		return s.softmaxLoss(target, lr)
	default:
		panic("engine: unknown loss mode")
	}
}
