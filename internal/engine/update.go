package engine

// Update runs one bag-of-features training step: forward pass, the
// configured loss kernel, and the scatter of the resulting gradient back
// into every input row of wi. A no-op on empty input.
func (s *State) Update(input []int32, target int32, lr float32) {
	if len(input) == 0 {
		return
	}
	s.computeHidden(input)
	loss := s.runLoss(target, lr)
	s.lossSum += loss
	s.nExamples++

	if s.args.Model == Supervised {
		s.grad.MulScalar(1.0 / float32(len(input)))
	}
	for _, idx := range input {
		s.wi.AddRow(s.grad, int(idx), 1.0)
	}
}

// UpdateAttn is the context-view attention update: pairs whose feature
// equals target are filtered out before the forward pass (a feature can't
// attend to itself as the prediction target), and a no-op if nothing
// survives the filter.
func (s *State) UpdateAttn(input []PosFeature, target int32, lr float32) {
	if len(input) == 0 {
		return
	}
	filtered := s.filterSelf(input, target)
	if len(filtered) == 0 {
		return
	}
	s.computeAttnHidden(filtered)
	loss := s.runLoss(target, lr)
	s.lossSum += loss
	s.nExamples++
	s.backpropAttn(filtered, target, false)
}

// UpdateAttn2 is identical to UpdateAttn except it uses the feature-view
// forward pass and backpropagates through attn rows indexed by target
// rather than by context feature.
func (s *State) UpdateAttn2(input []PosFeature, target int32, lr float32) {
	if len(input) == 0 {
		return
	}
	filtered := s.filterSelf(input, target)
	if len(filtered) == 0 {
		return
	}
	s.computeAttnHidden2(filtered, target)
	loss := s.runLoss(target, lr)
	s.lossSum += loss
	s.nExamples++
	s.backpropAttn(filtered, target, true)
}

func (s *State) filterSelf(input []PosFeature, target int32) []PosFeature {
	s.filterBuf = s.filterBuf[:0]
	for _, pf := range input {
		if pf.Feature != target {
			s.filterBuf = append(s.filterBuf, pf)
		}
	}
	return s.filterBuf
}
