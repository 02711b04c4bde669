package obj

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

func v(x, y, z float64) geometry.Vector3 { return geometry.NewVector3(x, y, z) }

func TestWriteSharesVertices(t *testing.T) {
	square := []geometry.Vector3{v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0)}
	tri := []geometry.Vector3{v(1, 0, 0), v(2, 0, 0), v(1, 1, 0)}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "part", [][]geometry.Vector3{square, tri, square[:2]}))

	want := `# polyclip: 5 vertices, 2 faces
o part
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
v 2 0 0
f 1 2 3 4
f 2 5 3
`
	assert.Equal(t, want, buf.String())
}

func TestWriterCounts(t *testing.T) {
	w := NewWriter("")
	w.Add([]geometry.Vector3{v(0.5, 0, 0), v(1, 0, 0), v(1, 1e-3, 0)})
	assert.Equal(t, 1, w.FaceCount())
	assert.Equal(t, 3, w.VertexCount())

	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)
	assert.NotContains(t, buf.String(), "\no ")
	assert.Contains(t, buf.String(), "v 1 0.001 0\n")
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.obj")
	require.NoError(t, WriteFile(path, "empty", nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# polyclip: 0 vertices, 0 faces\no empty\n", string(data))

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.obj"), "x", nil)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteReportsErrors(t *testing.T) {
	err := Write(failingWriter{}, "x", [][]geometry.Vector3{{v(0, 0, 0), v(1, 0, 0), v(0, 1, 0)}})
	assert.EqualError(t, err, "disk full")
}
