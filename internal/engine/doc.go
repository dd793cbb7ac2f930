// Package engine implements the forward pass, loss kernels, update
// drivers, and prediction for a shallow discrete-feature embedding model.
// It owns no I/O and no concurrency of its own: a State is constructed
// around shared parameter matrices and driven by a caller that decides
// how many goroutines to run and when to stop. Every exported method on
// State is safe to call concurrently with the same methods on other
// States sharing the same matrices — not because of any locking here, but
// because there isn't any: see the Hogwild note in the State doc comment
// in state.go.
package engine
