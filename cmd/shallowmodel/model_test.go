package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/samcharles93/shallowmodel/internal/version"
)

func TestModelParamsSaveLoadRoundTrip(t *testing.T) {
	p := newModelParams(5, 3, 4, 2, 1)
	path := filepath.Join(t.TempDir(), "model.bin")

	if err := p.save(path); err != nil {
		t.Fatalf("save returned error: %v", err)
	}

	got, trainedWith, err := loadModelParams(path)
	if err != nil {
		t.Fatalf("loadModelParams returned error: %v", err)
	}
	if trainedWith != version.String() {
		t.Fatalf("trainedWith=%q want %q", trainedWith, version.String())
	}

	for i := range p.wi.Data {
		if got.wi.Data[i] != p.wi.Data[i] {
			t.Fatalf("wi mismatch at %d: got %v want %v", i, got.wi.Data[i], p.wi.Data[i])
		}
	}
	for i := range p.wo.Data {
		if got.wo.Data[i] != p.wo.Data[i] {
			t.Fatalf("wo mismatch at %d: got %v want %v", i, got.wo.Data[i], p.wo.Data[i])
		}
	}
	for i := range p.attn.Data {
		if got.attn.Data[i] != p.attn.Data[i] {
			t.Fatalf("attn mismatch at %d: got %v want %v", i, got.attn.Data[i], p.attn.Data[i])
		}
	}
	for i := range p.bias {
		if got.bias[i] != p.bias[i] {
			t.Fatalf("bias mismatch at %d: got %v want %v", i, got.bias[i], p.bias[i])
		}
	}
}

func TestWriteStringReadStringRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "str.bin")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := writeString(f, "v0.0.0-test"); err != nil {
		t.Fatalf("writeString: %v", err)
	}
	f.Close()

	f2, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f2.Close()
	got, err := readString(f2)
	if err != nil {
		t.Fatalf("readString: %v", err)
	}
	if got != "v0.0.0-test" {
		t.Fatalf("got %q want %q", got, "v0.0.0-test")
	}
}
