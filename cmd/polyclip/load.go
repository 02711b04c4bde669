package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/philipparndt/polyclip/pkg/openscad"
	"github.com/philipparndt/polyclip/pkg/stl"
)

// loadModel loads a model from either STL or OpenSCAD file
func loadModel(ctx context.Context, filePath string) (*stl.Model, error) {
	filePath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(filePath)); ext {
	case ".scad":
		tempDir, err := os.MkdirTemp("", "polyclip-")
		if err != nil {
			return nil, fmt.Errorf("failed to create temp dir: %w", err)
		}
		defer os.RemoveAll(tempDir)

		tempFile := filepath.Join(tempDir, "render.stl")
		logger.Info("rendering OpenSCAD file", "file", filePath)
		renderer := openscad.NewRenderer(filepath.Dir(filePath))
		if err := renderer.RenderToSTL(ctx, filePath, tempFile); err != nil {
			return nil, fmt.Errorf("failed to render OpenSCAD file: %w", err)
		}

		model, err := stl.ParseFile(tempFile)
		if err != nil {
			return nil, fmt.Errorf("failed to parse rendered STL: %w", err)
		}
		if model.Name == "" {
			model.Name = modelName(filePath)
		}
		return model, nil

	case ".stl":
		model, err := stl.ParseFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to parse STL file: %w", err)
		}
		if model.Name == "" {
			model.Name = modelName(filePath)
		}
		logger.Debug("loaded model", "file", filePath, "triangles", model.TriangleCount())
		return model, nil

	default:
		return nil, fmt.Errorf("unsupported file type: %s (expected .stl or .scad)", ext)
	}
}

// sourceFiles lists the files a model is built from
func sourceFiles(filePath string) ([]string, error) {
	filePath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if strings.ToLower(filepath.Ext(filePath)) != ".scad" {
		return []string{filePath}, nil
	}
	deps, err := openscad.NewRenderer(filepath.Dir(filePath)).ResolveDependencies(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve dependencies: %w", err)
	}
	return deps, nil
}

func modelName(filePath string) string {
	return strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
}
