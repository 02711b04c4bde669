// Package openscad renders OpenSCAD sources to STL with the openscad binary.
package openscad

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
)

// ErrNotInstalled is returned when the openscad binary cannot be found
var ErrNotInstalled = errors.New("openscad not found in PATH, install it from https://openscad.org/")

// dependencyRegex matches use <file.scad> and include <file.scad>
var dependencyRegex = regexp.MustCompile(`^\s*(?:use|include)\s*<([^>]+)>`)

// Renderer handles OpenSCAD file rendering to STL
type Renderer struct {
	// Binary is the openscad executable, looked up in PATH
	Binary  string
	workDir string
}

// NewRenderer creates a renderer resolving relative paths against workDir
func NewRenderer(workDir string) *Renderer {
	return &Renderer{
		Binary:  "openscad",
		workDir: workDir,
	}
}

func (r *Renderer) abs(scadFile string) string {
	if filepath.IsAbs(scadFile) {
		return scadFile
	}
	return filepath.Join(r.workDir, scadFile)
}

// RenderToSTL renders an OpenSCAD file to STL format
func (r *Renderer) RenderToSTL(ctx context.Context, scadFile, outputFile string) error {
	binary, err := exec.LookPath(r.Binary)
	if err != nil {
		return ErrNotInstalled
	}

	cmd := exec.CommandContext(ctx, binary, "-o", outputFile, r.abs(scadFile))
	cmd.Dir = r.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var msg strings.Builder
		fmt.Fprintf(&msg, "failed to render %s: %v", scadFile, err)
		if stderr.Len() > 0 {
			msg.WriteString("\nstderr: ")
			msg.WriteString(strings.TrimSpace(stderr.String()))
		}
		if stdout.Len() > 0 {
			msg.WriteString("\nstdout: ")
			msg.WriteString(strings.TrimSpace(stdout.String()))
		}
		return errors.New(msg.String())
	}

	return nil
}

// ResolveDependencies returns the absolute paths of scadFile and every file
// it reaches through use/include statements, each once, in discovery order.
func (r *Renderer) ResolveDependencies(scadFile string) ([]string, error) {
	visited := make(map[string]bool)
	var deps []string

	queue := []string{filepath.Clean(r.abs(scadFile))}
	for len(queue) > 0 {
		file := queue[0]
		queue = queue[1:]
		if visited[file] {
			continue
		}
		visited[file] = true
		deps = append(deps, file)

		fileDeps, err := r.parseDependencies(file)
		if err != nil {
			return nil, err
		}
		queue = append(queue, fileDeps...)
	}

	return deps, nil
}

// parseDependencies parses a single OpenSCAD file to find use/include statements
func (r *Renderer) parseDependencies(scadFile string) ([]string, error) {
	file, err := os.Open(scadFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", scadFile, err)
	}
	defer file.Close()

	var deps []string
	scanner := bufio.NewScanner(file)
	scadDir := filepath.Dir(scadFile)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}

		if matches := dependencyRegex.FindStringSubmatch(line); len(matches) > 1 {
			deps = append(deps, r.resolveDepPath(matches[1], scadDir))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading %s: %w", scadFile, err)
	}

	return deps, nil
}

// resolveDepPath resolves a dependency relative to the including file, then
// to the work directory.
func (r *Renderer) resolveDepPath(depPath, currentDir string) string {
	if strings.HasPrefix(depPath, "./") || strings.HasPrefix(depPath, "../") {
		return filepath.Clean(filepath.Join(currentDir, depPath))
	}

	absPath := filepath.Join(currentDir, depPath)
	if _, err := os.Stat(absPath); err == nil {
		return filepath.Clean(absPath)
	}

	return filepath.Clean(filepath.Join(r.workDir, depPath))
}
