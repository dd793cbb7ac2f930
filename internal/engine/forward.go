package engine

// computeHidden sets s.hidden to the mean of the input rows of wi. Input
// must be non-empty; callers guard against the empty case (Update does,
// by returning early before ever calling this).
func (s *State) computeHidden(input []int32) {
	s.hidden.Zero()
	for _, idx := range input {
		s.hidden.AddRow(s.wi, int(idx))
	}
	s.hidden.MulScalar(1.0 / float32(len(input)))
}

// computeAttnHidden is the context view: the attention logit for pair i
// is attn[feature_i, position_i] + bias[position_i]. The resulting
// softmax weights are stashed in s.softmaxattn for the backward pass.
func (s *State) computeAttnHidden(input []PosFeature) {
	s.ensureAttnScratch(len(input))
	for i, pf := range input {
		s.attnLogits[i] = s.attn.At(int(pf.Feature), int(pf.Position)) + s.bias[pf.Position]
	}
	softmaxInPlace(s.attnLogits)
	copy(s.softmaxattn, s.attnLogits)

	s.hidden.Zero()
	for i, pf := range input {
		s.hidden.AddRowScaled(s.wi, int(pf.Feature), s.softmaxattn[i])
	}
}

// computeAttnHidden2 is the feature view: the attention logit is indexed
// by the output target rather than by the context feature.
func (s *State) computeAttnHidden2(input []PosFeature, target int32) {
	s.ensureAttnScratch(len(input))
	for i, pf := range input {
		s.attnLogits[i] = s.attn.At(int(target), int(pf.Position)) + s.bias[pf.Position]
	}
	softmaxInPlace(s.attnLogits)
	copy(s.softmaxattn, s.attnLogits)

	s.hidden.Zero()
	for i, pf := range input {
		s.hidden.AddRowScaled(s.wi, int(pf.Feature), s.softmaxattn[i])
	}
}

// softmaxInPlace is the numerically-stable softmax used by the attention
// forward paths: subtract the max, clamp anything that would underflow
// badly to exp-zero, normalize by the sum.
func softmaxInPlace(x []float32) {
	if len(x) == 0 {
		return
	}
	maxv := x[0]
	for _, v := range x[1:] {
		if v > maxv {
			maxv = v
		}
	}
	var sum float32
	for i, v := range x {
		d := v - maxv
		var e float32
		if d < -50 {
			e = 0
		} else {
			e = expf(d)
		}
		x[i] = e
		sum += e
	}
	if sum == 0 {
		return
	}
	inv := 1 / sum
	for i := range x {
		x[i] *= inv
	}
}
