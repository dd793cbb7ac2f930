package engine

import (
	"math/rand"

	"github.com/samcharles93/shallowmodel/internal/huffman"
	"github.com/samcharles93/shallowmodel/internal/negsample"
	"github.com/samcharles93/shallowmodel/internal/tensor"
)

// Sigmoid and log tables are semantically immutable and identical across
// engines, so they are built once per process rather than once per State.
var (
	sharedSigmoid = tensor.NewSigmoidTable()
	sharedLog     = tensor.NewLogTable()
)

// State is one worker's view of a shared model: it holds references to
// the parameter matrices and bias vector (shared, racy, mutated without
// locks — see the Hogwild note below) plus scratch buffers and a
// pseudo-random generator that belong to this State alone.
//
// Hogwild!: wi, wo, attn, and bias are written by every worker State
// built against the same parameters, concurrently and without
// synchronization. That is intentional. Do not add a mutex here — it
// would serialize training and defeat the point of running N workers.
type State struct {
	wi, wo, attn *tensor.Mat
	bias         tensor.Vector
	args         Args

	tree    *huffman.Tree
	negTbl  *negsample.Table
	sigmoid *tensor.SigmoidTable
	logtab  *tensor.LogTable
	rng     *rand.Rand

	hidden      tensor.Vector
	output      tensor.Vector
	grad        tensor.Vector
	softmaxattn tensor.Vector
	attnLogits  tensor.Vector
	filterBuf   []PosFeature

	lossSum   float32
	nExamples int64
}

// New constructs a State around shared parameter references. wi, wo, and
// attn are shared mutable matrices; bias is a shared mutable vector.
// Multiple States built from the same matrices form one Hogwild training
// group. seed controls this State's own RNG, which shuffles the
// negative-sampling table — give each worker a distinct seed or negative
// draws will correlate across workers.
func New(wi, wo, attn *tensor.Mat, bias tensor.Vector, args Args, seed int64) *State {
	if args.Dim <= 0 {
		panic("engine: dim must be positive")
	}
	return &State{
		wi:          wi,
		wo:          wo,
		attn:        attn,
		bias:        bias,
		args:        args,
		sigmoid:     sharedSigmoid,
		logtab:      sharedLog,
		rng:         rand.New(rand.NewSource(seed)),
		hidden:      tensor.NewVector(args.Dim),
		output:      tensor.NewVector(wo.R),
		grad:        tensor.NewVector(args.Dim),
		softmaxattn: tensor.NewVector(0),
		attnLogits:  tensor.NewVector(0),
	}
}

// SetTargetCounts is a one-shot call that populates the Huffman tree (for
// hs) and/or the negative-sampling table (for ns). It must precede any
// Update/UpdateAttn/UpdateAttn2/Predict call when the configured loss
// mode needs the structure being built.
func (s *State) SetTargetCounts(counts []int64) {
	switch s.args.Loss {
	case HierarchicalSoftmax:
		s.tree = huffman.Build(counts)
	case NegativeSampling:
		s.negTbl = negsample.New(counts, s.rng)
	case Softmax:
		// Full softmax needs neither structure.
	}
}

// GetLoss returns the running average loss over every Update*/ call made
// on this State so far.
func (s *State) GetLoss() float32 {
	if s.nExamples == 0 {
		return 0
	}
	return s.lossSum / float32(s.nExamples)
}

func (s *State) ensureAttnScratch(n int) {
	if cap(s.softmaxattn) < n {
		s.softmaxattn = tensor.NewVector(n)
	} else {
		s.softmaxattn = s.softmaxattn[:n]
	}
	if cap(s.attnLogits) < n {
		s.attnLogits = tensor.NewVector(n)
	} else {
		s.attnLogits = s.attnLogits[:n]
	}
}
