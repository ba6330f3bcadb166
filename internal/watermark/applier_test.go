package watermark

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/fpang/watermark-manager/internal/filehandler"
)

func newApplier(t *testing.T) *Applier {
	t.Helper()
	return NewApplier(newStamper(t, white), filehandler.MaxQuality, DefaultOpacity)
}

func TestApplyTextWritesOutput(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "test-with-watermark.png")
	base := imaging.New(320, 240, color.NRGBA{A: 255})

	if err := newApplier(t).ApplyText(base, "hello", output); err != nil {
		t.Fatalf("ApplyText() error = %v", err)
	}

	got, err := filehandler.Load(output)
	if err != nil {
		t.Fatalf("failed to reload output: %v", err)
	}
	if got.Bounds().Size() != base.Bounds().Size() {
		t.Errorf("output size = %v, want %v", got.Bounds().Size(), base.Bounds().Size())
	}
	if inkBounds(imaging.Clone(got)).Empty() {
		t.Error("output has no text")
	}
}

func TestApplyImageWritesComposite(t *testing.T) {
	dir := t.TempDir()
	markPath := filepath.Join(dir, "logo.png")
	output := filepath.Join(dir, "test-with-watermark.png")

	mark := imaging.New(100, 100, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	if err := filehandler.Save(mark, markPath, filehandler.MaxQuality); err != nil {
		t.Fatal(err)
	}
	base := imaging.New(400, 400, color.NRGBA{A: 255})

	if err := newApplier(t).ApplyImage(base, markPath, output); err != nil {
		t.Fatalf("ApplyImage() error = %v", err)
	}

	got, err := filehandler.Load(output)
	if err != nil {
		t.Fatalf("failed to reload output: %v", err)
	}
	out := imaging.Clone(got)
	if c := out.NRGBAAt(200, 200); !near(c.R, 128) {
		t.Errorf("centre pixel = %v, want half-blended", c)
	}
	if c := out.NRGBAAt(100, 100); c.R != 0 {
		t.Errorf("pixel outside mark = %v, want black", c)
	}
}

func TestApplyImageMissingMark(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out.png")
	base := imaging.New(10, 10, color.NRGBA{A: 255})

	if err := newApplier(t).ApplyImage(base, filepath.Join(dir, "logo.png"), output); err == nil {
		t.Fatal("ApplyImage() error = nil, want error for missing watermark")
	}
	if filehandler.Exists(output) {
		t.Error("ApplyImage() wrote output without a watermark")
	}
}
