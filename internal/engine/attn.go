package engine

import "github.com/samcharles93/shallowmodel/internal/tensor"

// backpropAttn back-propagates the hidden-space gradient s.grad through
// the attention weights computed during the forward pass, for one of
// input's (feature, position) pairs at a time.
//
// Two asymmetries here are deliberate, not bugs: the full softmax
// Jacobian would include a (1 - alpha_i) factor in gAttn that this
// implementation drops (simplified from the observation that
// sum_j alpha_j * <wi[feature_j], g> == <g, hidden>, which only cancels
// part of the Jacobian, not all of it), and the input-row update scales
// alpha_i by len(input) rather than using alpha_i alone. Both are
// reproduced here for parity with the rest of this training path rather
// than "fixed" — see the open questions this leaves for anyone comparing
// against a from-scratch derivation.
//
// featureView selects which row of attn gets the gradient: the context
// feature (context view, featureView=false) or target (feature view,
// featureView=true).
func (s *State) backpropAttn(input []PosFeature, target int32, featureView bool) {
	ghidden := tensor.Dot(s.grad, s.hidden)
	n := float32(len(input))
	for i, pf := range input {
		wiGDot := s.wi.DotRow(s.grad, int(pf.Feature))
		gAttn := s.softmaxattn[i] * (wiGDot - ghidden)

		s.wi.AddRow(s.grad, int(pf.Feature), s.softmaxattn[i]*n)

		idx := pf.Feature
		if featureView {
			idx = target
		}
		s.attn.AddAt(int(idx), int(pf.Position), gAttn)
		s.bias[pf.Position] += gAttn
	}
}
