// Package obj writes polygon loops as Wavefront OBJ n-gon faces.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

// Writer accumulates polygons into a shared vertex table
type Writer struct {
	name     string
	vertices []geometry.Vector3
	index    map[geometry.Vector3]int
	faces    [][]int
}

// NewWriter creates a writer for an object called name
func NewWriter(name string) *Writer {
	return &Writer{name: name, index: make(map[geometry.Vector3]int)}
}

// Add appends one polygon. Loops with fewer than three vertices are ignored.
func (w *Writer) Add(loop []geometry.Vector3) {
	if len(loop) < 3 {
		return
	}
	face := make([]int, len(loop))
	for i, v := range loop {
		idx, ok := w.index[v]
		if !ok {
			w.vertices = append(w.vertices, v)
			idx = len(w.vertices)
			w.index[v] = idx
		}
		face[i] = idx
	}
	w.faces = append(w.faces, face)
}

// FaceCount returns the number of polygons added so far
func (w *Writer) FaceCount() int {
	return len(w.faces)
}

// VertexCount returns the number of distinct vertices
func (w *Writer) VertexCount() int {
	return len(w.vertices)
}

// WriteTo writes the object in OBJ text form
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	bw := bufio.NewWriter(out)
	cw := &countingWriter{w: bw}

	fmt.Fprintf(cw, "# polyclip: %d vertices, %d faces\n", len(w.vertices), len(w.faces))
	if w.name != "" {
		fmt.Fprintf(cw, "o %s\n", w.name)
	}

	buf := make([]byte, 0, 64)
	for _, v := range w.vertices {
		buf = append(buf[:0], 'v')
		for _, c := range [3]float64{v.X, v.Y, v.Z} {
			buf = append(buf, ' ')
			buf = strconv.AppendFloat(buf, c, 'g', -1, 64)
		}
		buf = append(buf, '\n')
		cw.Write(buf)
	}
	for _, face := range w.faces {
		buf = append(buf[:0], 'f')
		for _, idx := range face {
			buf = append(buf, ' ')
			buf = strconv.AppendInt(buf, int64(idx), 10)
		}
		buf = append(buf, '\n')
		cw.Write(buf)
	}

	if cw.err != nil {
		return cw.n, cw.err
	}
	if err := bw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// Write writes polygons as a single OBJ object
func Write(out io.Writer, name string, polygons [][]geometry.Vector3) error {
	w := NewWriter(name)
	for _, p := range polygons {
		w.Add(p)
	}
	_, err := w.WriteTo(out)
	return err
}

// WriteFile writes polygons to the OBJ file at path
func WriteFile(path, name string, polygons [][]geometry.Vector3) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := Write(file, name, polygons); err != nil {
		file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return file.Close()
}

// countingWriter remembers the first error so the format loop stays flat
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
