package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/samcharles93/shallowmodel/internal/tensor"
	"github.com/samcharles93/shallowmodel/internal/version"
)

// modelParams bundles the three shared parameter matrices and bias vector
// a training run mutates and a prediction run reads.
type modelParams struct {
	wi, wo, attn tensor.Mat
	bias         tensor.Vector
}

// writeString and readString frame a string the same way tensor.Vector
// frames a float32 slice: an int64 length followed by the raw bytes.
// model.go uses this once, to stamp a model file with the build that
// trained it.
func writeString(w io.Writer, s string) error {
	if err := binary.Write(w, binary.LittleEndian, int64(len(s))); err != nil {
		return err
	}
	_, err := w.Write([]byte(s))
	return err
}

func readString(r io.Reader) (string, error) {
	var n int64
	if err := binary.Read(r, binary.LittleEndian, &n); err != nil {
		return "", err
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := io.ReadFull(r, buf); err != nil {
			return "", err
		}
	}
	return string(buf), nil
}

func newModelParams(vocabSize, osz, dim, positions int, seed int64) modelParams {
	wi := tensor.NewMat(vocabSize, dim)
	wo := tensor.NewMat(osz, dim)
	attn := tensor.NewMat(vocabSize, positions)
	tensor.FillRand(&wi, seed)
	tensor.FillRand(&wo, seed+1)
	tensor.FillRand(&attn, seed+2)
	return modelParams{wi: wi, wo: wo, attn: attn, bias: tensor.NewVector(positions)}
}

// saveMat writes a matrix as its row and column counts followed by the
// flattened data via tensor.Vector's wire format — the model file is just
// a small header around the one serialization primitive the engine
// itself owns.
func saveMat(w io.Writer, m *tensor.Mat) error {
	if err := binary.Write(w, binary.LittleEndian, int64(m.R)); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int64(m.C)); err != nil {
		return err
	}
	_, err := tensor.Vector(m.Data).WriteTo(w)
	return err
}

func loadMat(r io.Reader) (tensor.Mat, error) {
	var rows, cols int64
	if err := binary.Read(r, binary.LittleEndian, &rows); err != nil {
		return tensor.Mat{}, err
	}
	if err := binary.Read(r, binary.LittleEndian, &cols); err != nil {
		return tensor.Mat{}, err
	}
	v, err := tensor.ReadVector(r)
	if err != nil {
		return tensor.Mat{}, err
	}
	return tensor.NewMatFromData(int(rows), int(cols), []float32(v)), nil
}

// save writes the model file as a version stamp (the build that produced
// these weights, from internal/version) followed by the three matrices
// and the bias vector. The stamp is provenance only — loadModelParams
// never refuses to load a model stamped by a different build.
func (p modelParams) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file %s: %w", path, err)
	}
	defer f.Close()

	if err := writeString(f, version.String()); err != nil {
		return fmt.Errorf("write model file %s: %w", path, err)
	}
	for _, m := range []*tensor.Mat{&p.wi, &p.wo, &p.attn} {
		if err := saveMat(f, m); err != nil {
			return fmt.Errorf("write model file %s: %w", path, err)
		}
	}
	if _, err := p.bias.WriteTo(f); err != nil {
		return fmt.Errorf("write model file %s: %w", path, err)
	}
	return nil
}

// loadModelParams reads a model file back along with the version stamp
// it was saved with, so a predict run can log which build trained the
// weights it's scoring against.
func loadModelParams(path string) (modelParams, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return modelParams{}, "", fmt.Errorf("open model file %s: %w", path, err)
	}
	defer f.Close()

	trainedWith, err := readString(f)
	if err != nil {
		return modelParams{}, "", fmt.Errorf("read model file %s: %w", path, err)
	}

	var p modelParams
	if p.wi, err = loadMat(f); err != nil {
		return modelParams{}, "", fmt.Errorf("read model file %s: %w", path, err)
	}
	if p.wo, err = loadMat(f); err != nil {
		return modelParams{}, "", fmt.Errorf("read model file %s: %w", path, err)
	}
	if p.attn, err = loadMat(f); err != nil {
		return modelParams{}, "", fmt.Errorf("read model file %s: %w", path, err)
	}
	if p.bias, err = tensor.ReadVector(f); err != nil {
		return modelParams{}, "", fmt.Errorf("read model file %s: %w", path, err)
	}
	return p, trainedWith, nil
}
