package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"routeopt/internal/errors"
	"routeopt/internal/infra/routing/graph"
	"routeopt/internal/util"
)

func runValidate(out io.Writer, dir string) error {
	fmt.Fprintf(out, "Validating road graph in directory: %s\n", dir)

	if err := validateGraphDir(out, dir); err != nil {
		fmt.Fprintf(out, "Validation failed: %v\n", err)

		return err
	}

	fmt.Fprintln(out, "Validation passed")

	return nil
}

func validateGraphDir(out io.Writer, dir string) error {
	if _, err := os.Stat(dir); err != nil {
		return errors.Wrapf(err, "directory not accessible: %s", dir)
	}

	fmt.Fprintln(out, "Checking required files...")
	for _, name := range []string{graph.MetadataFile, graph.VerticesFile, graph.EdgesFile} {
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			return errors.Errorf("required file missing: %s", name)
		}
		fmt.Fprintf(out, "  %s (%s)\n", name, util.FormatBytes(info.Size()))
	}

	fmt.Fprintln(out, "\nValidating metadata...")
	metadata, err := graph.LoadMetadata(dir)
	if err != nil {
		return err
	}
	if err := metadata.Validate(); err != nil {
		return err
	}
	fmt.Fprintf(out, "  version %s, region %s, generated %s\n",
		metadata.Version, metadata.Region, metadata.GeneratedAt.Format("2006-01-02 15:04:05"))

	fmt.Fprintln(out, "\nVerifying checksums...")
	if err := metadata.VerifyChecksums(dir); err != nil {
		return err
	}
	fmt.Fprintf(out, "  %d file(s) match\n", len(metadata.Files))

	fmt.Fprintln(out, "\nLoading graph...")
	data, err := graph.Load(dir)
	if err != nil {
		return err
	}

	if len(data.Vertices) != metadata.VerticesCount {
		return errors.Errorf("vertex count mismatch: metadata %d, file %d", metadata.VerticesCount, len(data.Vertices))
	}
	if len(data.Edges) != metadata.EdgesCount {
		return errors.Errorf("edge count mismatch: metadata %d, file %d", metadata.EdgesCount, len(data.Edges))
	}
	fmt.Fprintf(out, "  vertices: %d\n  edges: %d\n", len(data.Vertices), len(data.Edges))

	return nil
}
