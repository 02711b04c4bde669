// Package config loads job files describing a clip, split or box operation.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/philipparndt/polyclip/pkg/clip"
	"github.com/philipparndt/polyclip/pkg/geometry"
)

// Operation names a job kind
type Operation string

const (
	OpClip  Operation = "clip"
	OpSplit Operation = "split"
	OpBox   Operation = "box"
)

// Format is a job file encoding
type Format int

const (
	YAML Format = iota
	TOML
)

var (
	// ErrUnknownFormat is returned for job files that are neither YAML nor TOML
	ErrUnknownFormat = errors.New("config: unknown job file format")
	// ErrInvalidJob is returned by Validate
	ErrInvalidJob = errors.New("config: invalid job")
)

// Job is one operation on one input model
type Job struct {
	Input     string    `yaml:"input" toml:"input"`
	Operation Operation `yaml:"operation" toml:"operation"`

	// Plane holds a, b, c, d of the kept half-space a·x+b·y+c·z+d >= 0
	Plane     []float64 `yaml:"plane,omitempty" toml:"plane,omitempty"`
	// Rotate turns the plane by rx, ry, rz degrees
	Rotate    []float64 `yaml:"rotate,omitempty" toml:"rotate,omitempty"`
	Exclusive bool      `yaml:"exclusive,omitempty" toml:"exclusive,omitempty"`

	Box *BoxSpec `yaml:"box,omitempty" toml:"box,omitempty"`

	Output   string `yaml:"output,omitempty" toml:"output,omitempty"`
	Negative string `yaml:"negative,omitempty" toml:"negative,omitempty"`
	Positive string `yaml:"positive,omitempty" toml:"positive,omitempty"`
}

// BoxSpec gives two opposite box corners
type BoxSpec struct {
	Min []float64 `yaml:"min" toml:"min"`
	Max []float64 `yaml:"max" toml:"max"`
}

// FormatOf picks the format from the file extension
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Load reads and validates a job file. Relative paths in the job are
// resolved against the directory of the file.
func Load(path string) (*Job, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read job file: %w", err)
	}

	job, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	job.resolve(filepath.Dir(path))
	return job, nil
}

// Parse decodes and validates a job
func Parse(data []byte, format Format) (*Job, error) {
	job := &Job{}
	switch format {
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(job); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case TOML:
		md, err := toml.Decode(string(data), job)
		if err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse TOML: unknown key %s", undecoded[0])
		}
	default:
		return nil, ErrUnknownFormat
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return job, nil
}

func (j *Job) resolve(dir string) {
	for _, p := range []*string{&j.Input, &j.Output, &j.Negative, &j.Positive} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(dir, *p)
		}
	}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidJob, fmt.Sprintf(format, args...))
}

// Validate checks that the job names everything its operation needs
func (j *Job) Validate() error {
	if j.Input == "" {
		return invalid("input is required")
	}

	switch j.Operation {
	case OpClip, OpSplit:
		if _, err := j.ClipPlane(); err != nil {
			return err
		}
		if j.Box != nil {
			return invalid("%s does not take a box", j.Operation)
		}
	case OpBox:
		if _, err := j.ClipBox(); err != nil {
			return err
		}
		if len(j.Plane) > 0 || len(j.Rotate) > 0 {
			return invalid("box does not take a plane")
		}
	default:
		return invalid("unknown operation %q", j.Operation)
	}

	switch j.Operation {
	case OpClip, OpBox:
		if j.Output == "" {
			return invalid("%s needs an output", j.Operation)
		}
		if j.Exclusive {
			return invalid("exclusive only applies to split")
		}
	case OpSplit:
		if j.Negative == "" && j.Positive == "" {
			return invalid("split needs a negative or positive output")
		}
	}
	return nil
}

// ClipPlane returns the job plane with the rotation applied
func (j *Job) ClipPlane() (clip.Plane[float64], error) {
	if len(j.Plane) != 4 {
		return clip.Plane[float64]{}, invalid("plane needs 4 values, got %d", len(j.Plane))
	}
	if !finite(j.Plane) {
		return clip.Plane[float64]{}, invalid("plane %v has non-finite values", j.Plane)
	}
	plane := clip.NewPlane(j.Plane[0], j.Plane[1], j.Plane[2], j.Plane[3])
	if plane.IsDegenerate() {
		return clip.Plane[float64]{}, invalid("plane normal is zero")
	}
	if len(j.Rotate) == 0 {
		return plane, nil
	}
	if len(j.Rotate) != 3 {
		return clip.Plane[float64]{}, invalid("rotate needs 3 values, got %d", len(j.Rotate))
	}
	if !finite(j.Rotate) {
		return clip.Plane[float64]{}, invalid("rotate %v has non-finite values", j.Rotate)
	}
	rotated, err := clip.TransformPlane(plane, clip.RotationXYZ(j.Rotate[0], j.Rotate[1], j.Rotate[2]))
	if err != nil {
		return clip.Plane[float64]{}, invalid("%v", err)
	}
	return rotated, nil
}

// ClipBox returns the job box
func (j *Job) ClipBox() (clip.Box[float64], error) {
	if j.Box == nil {
		return clip.Box[float64]{}, invalid("box is required")
	}
	if len(j.Box.Min) != 3 || len(j.Box.Max) != 3 {
		return clip.Box[float64]{}, invalid("box corners need 3 values each")
	}
	if !finite(j.Box.Min) || !finite(j.Box.Max) {
		return clip.Box[float64]{}, invalid("box corners %v %v have non-finite values", j.Box.Min, j.Box.Max)
	}
	return clip.BoxFromCorners(
		geometry.NewVector3(j.Box.Min[0], j.Box.Min[1], j.Box.Min[2]),
		geometry.NewVector3(j.Box.Max[0], j.Box.Max[1], j.Box.Max[2]),
	), nil
}

// Policy returns the boundary policy of a split job
func (j *Job) Policy() clip.Policy {
	if j.Exclusive {
		return clip.Exclusive
	}
	return clip.Inclusive
}

func finite(values []float64) bool {
	for _, v := range values {
		if !geometry.IsFinite(v) {
			return false
		}
	}
	return true
}
