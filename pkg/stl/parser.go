package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/polyclip/pkg/geometry"
)

const (
	headerSize   = 80
	facetSize    = 50
	binaryPrefix = headerSize + 4
)

// ErrInvalidFormat is returned for input that is neither ASCII nor binary STL
var ErrInvalidFormat = errors.New("stl: invalid format")

// ParseFile reads an STL file and returns a Model
func ParseFile(filename string) (*Model, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse reads an STL stream and returns a Model.
// It automatically detects whether the data is ASCII or binary. Binary files
// whose header happens to start with "solid" are recognised by their size.
func Parse(r io.ReadSeeker) (*Model, error) {
	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to determine size: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	prefix := make([]byte, binaryPrefix)
	n, err := io.ReadFull(r, prefix)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("failed to read file header: %w", err)
	}
	prefix = prefix[:n]

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to reset file pointer: %w", err)
	}

	if n == binaryPrefix {
		count := binary.LittleEndian.Uint32(prefix[headerSize:])
		if int64(binaryPrefix)+int64(count)*facetSize == size {
			return parseBinary(r)
		}
	}
	if bytes.HasPrefix(bytes.TrimLeft(prefix, " \t\r\n"), []byte("solid")) {
		return parseASCII(r)
	}
	return nil, ErrInvalidFormat
}

// parseASCII parses an ASCII STL file
func parseASCII(reader io.Reader) (*Model, error) {
	scanner := bufio.NewScanner(reader)
	model := NewModel("")

	var currentNormal geometry.Vector3
	var vertices []geometry.Vector3
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())

		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "facet":
			if len(fields) < 5 || fields[1] != "normal" {
				return nil, fmt.Errorf("%w: line %d: malformed facet", ErrInvalidFormat, line)
			}
			normal, err := parseVector(fields[2:5])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidFormat, line, err)
			}
			currentNormal = normal

		case "vertex":
			if len(fields) < 4 {
				return nil, fmt.Errorf("%w: line %d: malformed vertex", ErrInvalidFormat, line)
			}
			vertex, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidFormat, line, err)
			}
			vertices = append(vertices, vertex)

		case "endfacet":
			if len(vertices) != 3 {
				return nil, fmt.Errorf("%w: line %d: facet has %d vertices", ErrInvalidFormat, line, len(vertices))
			}
			model.AddTriangle(geometry.NewTriangle(currentNormal, vertices[0], vertices[1], vertices[2]))
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	var c [3]float64
	for i, f := range fields {
		value, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return geometry.Vector3{}, err
		}
		c[i] = value
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// facet is the on-disk layout of one binary STL triangle
type facet struct {
	Normal     [3]float32
	V1, V2, V3 [3]float32
	Attributes uint16
}

// parseBinary parses a binary STL file
func parseBinary(reader io.Reader) (*Model, error) {
	model := NewModel("")
	reader = bufio.NewReader(reader)

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	model.Name = strings.TrimSpace(string(bytes.TrimRight(header, "\x00")))

	var triangleCount uint32
	if err := binary.Read(reader, binary.LittleEndian, &triangleCount); err != nil {
		return nil, fmt.Errorf("failed to read triangle count: %w", err)
	}

	model.Triangles = make([]geometry.Triangle, 0, triangleCount)
	for i := uint32(0); i < triangleCount; i++ {
		var f facet
		if err := binary.Read(reader, binary.LittleEndian, &f); err != nil {
			return nil, fmt.Errorf("failed to read triangle %d: %w", i, err)
		}
		model.AddTriangle(geometry.NewTriangle(vec(f.Normal), vec(f.V1), vec(f.V2), vec(f.V3)))
	}

	return model, nil
}

func vec(c [3]float32) geometry.Vector3 {
	return geometry.NewVector3(float64(c[0]), float64(c[1]), float64(c[2]))
}
