package render

import (
	"bytes"
	"image/png"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gologo-lang/gologo/pkg/turtle"
)

func testCanvas() Canvas {
	return Canvas{Width: 100, Height: 100, Background: turtle.Palette[0]}
}

func TestSVGContainsSegments(t *testing.T) {
	segments := []turtle.Segment{
		{From: turtle.Point{X: 10, Y: 10}, To: turtle.Point{X: 90, Y: 10}, Color: 7},
		{From: turtle.Point{X: 90, Y: 10}, To: turtle.Point{X: 90, Y: 90}, Color: 4},
	}
	var buf bytes.Buffer
	if err := SVG(&buf, testCanvas(), segments); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, `width="100" height="100"`) {
		t.Error("missing canvas dimensions")
	}
	if !strings.Contains(out, `fill="#000000"`) {
		t.Error("missing background rect")
	}
	if !strings.Contains(out, `stroke="#ffffff"`) {
		t.Error("missing white segment")
	}
	if !strings.Contains(out, `stroke="#ff0000"`) {
		t.Error("missing red segment")
	}
	if got := strings.Count(out, "<line"); got != 2 {
		t.Errorf("expected 2 line elements, got %d", got)
	}
}

func TestSVGEmptyTrace(t *testing.T) {
	var buf bytes.Buffer
	if err := SVG(&buf, testCanvas(), nil); err != nil {
		t.Fatalf("SVG: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "<line") {
		t.Error("expected no line elements")
	}
	if !strings.HasSuffix(out, "</svg>\n") {
		t.Error("document not closed")
	}
}

func TestPNGEncodesValidImage(t *testing.T) {
	segments := []turtle.Segment{
		{From: turtle.Point{X: 10, Y: 50}, To: turtle.Point{X: 90, Y: 50}, Color: 4},
	}
	var buf bytes.Buffer
	if err := PNG(&buf, testCanvas(), segments); err != nil {
		t.Fatalf("PNG: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() != 100 || bounds.Dy() != 100 {
		t.Fatalf("unexpected bounds %v", bounds)
	}

	// The horizontal line at y=50 should be red, the corner background.
	r, g, b, _ := img.At(50, 50).RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected red pixel on the line, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
	r, g, b, _ = img.At(0, 0).RGBA()
	if r>>8 != 0 || g>>8 != 0 || b>>8 != 0 {
		t.Errorf("expected black background, got (%d,%d,%d)", r>>8, g>>8, b>>8)
	}
}

func TestPNGClipsOutOfBoundsSegments(t *testing.T) {
	segments := []turtle.Segment{
		{From: turtle.Point{X: -50, Y: 50}, To: turtle.Point{X: 150, Y: 50}, Color: 7},
	}
	var buf bytes.Buffer
	if err := PNG(&buf, testCanvas(), segments); err != nil {
		t.Fatalf("PNG: %v", err)
	}
}

func TestSaveDispatchesByExtension(t *testing.T) {
	dir := t.TempDir()
	segments := []turtle.Segment{
		{From: turtle.Point{X: 0, Y: 0}, To: turtle.Point{X: 10, Y: 10}, Color: 1},
	}
	for _, name := range []string{"out.svg", "out.png", "OUT.SVG"} {
		if err := Save(filepath.Join(dir, name), testCanvas(), segments); err != nil {
			t.Errorf("Save(%s): %v", name, err)
		}
	}
	if err := Save(filepath.Join(dir, "out.gif"), testCanvas(), segments); err == nil {
		t.Error("expected an error for unsupported extension")
	}
}
