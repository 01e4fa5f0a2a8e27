// Package render turns a segment trace into SVG or PNG output. It is a
// collaborator of the interpreter core: it consumes segments in emission
// order and maps color indices through the shared palette.
package render

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gologo-lang/gologo/pkg/turtle"
)

// Canvas describes the drawing surface.
type Canvas struct {
	Width      int
	Height     int
	Background turtle.RGB
}

// Save writes the trace to path, choosing the format from the file
// extension (.svg or .png).
func Save(path string, canvas Canvas, segments []turtle.Segment) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg":
		return saveFile(path, func(w io.Writer) error {
			return SVG(w, canvas, segments)
		})
	case ".png":
		return saveFile(path, func(w io.Writer) error {
			return PNG(w, canvas, segments)
		})
	default:
		return fmt.Errorf("unsupported output extension %q: want .svg or .png", filepath.Ext(path))
	}
}

// SVG writes the trace as an SVG document.
func SVG(w io.Writer, canvas Canvas, segments []turtle.Segment) error {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		canvas.Width, canvas.Height, canvas.Width, canvas.Height)
	fmt.Fprintf(&b, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", canvas.Background.Hex())
	for _, seg := range segments {
		fmt.Fprintf(&b, `  <line x1="%g" y1="%g" x2="%g" y2="%g" stroke="%s" stroke-width="1"/>`+"\n",
			seg.From.X, seg.From.Y, seg.To.X, seg.To.Y, turtle.Palette[seg.Color].Hex())
	}
	b.WriteString("</svg>\n")
	_, err := io.WriteString(w, b.String())
	return err
}
