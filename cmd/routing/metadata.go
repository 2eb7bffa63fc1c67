package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"routeopt/internal/errors"
	"routeopt/internal/infra/routing/graph"
	"routeopt/internal/util"
)

const metadataVersion = "1.0"

func runMetadata(out io.Writer, dir, region, source string) error {
	metadata, err := generateMetadata(dir, region, source, time.Now().UTC())
	if err != nil {
		return err
	}

	path := filepath.Join(dir, graph.MetadataFile)
	if err := writeMetadata(metadata, path); err != nil {
		return err
	}

	fmt.Fprintf(out, "Metadata written to %s (%d vertices, %d edges)\n",
		path, metadata.VerticesCount, metadata.EdgesCount)

	return nil
}

// generateMetadata loads the graph to count it and records the checksum of
// each data file.
func generateMetadata(dir, region, source string, now time.Time) (*graph.Metadata, error) {
	data, err := graph.Load(dir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load graph")
	}

	files := make(map[string]*graph.FileInfo, 2)
	for _, name := range []string{graph.VerticesFile, graph.EdgesFile} {
		path := filepath.Join(dir, name)

		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", name)
		}
		sum, err := util.CalculateFileChecksum(path)
		if err != nil {
			return nil, err
		}
		files[name] = &graph.FileInfo{SizeBytes: info.Size(), SHA256: sum}
	}

	return &graph.Metadata{
		Version:       metadataVersion,
		Region:        region,
		Source:        source,
		GeneratedAt:   now,
		VerticesCount: len(data.Vertices),
		EdgesCount:    len(data.Edges),
		Files:         files,
	}, nil
}

func writeMetadata(metadata *graph.Metadata, path string) error {
	raw, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal metadata")
	}

	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return errors.Wrap(err, "failed to write metadata")
	}

	return nil
}
