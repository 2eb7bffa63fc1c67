// Package graph is the offline routing tier: a road graph loaded from CSV
// files and queried with Dijkstra between snapped waypoints.
package graph

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"routeopt/internal/errors"
	"routeopt/internal/util"

	"golang.org/x/sync/errgroup"
)

// Data file names inside a graph directory.
const (
	VerticesFile = "vertices.csv"
	EdgesFile    = "edges.csv"
	MetadataFile = "metadata.json"
)

// Vertex is a road network node. ID equals its index in the vertex slice.
type Vertex struct {
	ID  int
	Lat float64
	Lng float64
}

// Edge is a directed road segment with its length in meters.
type Edge struct {
	From           int
	To             int
	DistanceMeters float64
}

// Data is a loaded road graph.
type Data struct {
	Vertices []Vertex
	Edges    []Edge
	Metadata *Metadata
}

// Metadata records the provenance of a graph directory.
type Metadata struct {
	Version       string               `json:"version"`
	Region        string               `json:"region"`
	Source        string               `json:"source,omitempty"`
	GeneratedAt   time.Time            `json:"generated_at"`
	VerticesCount int                  `json:"vertices_count"`
	EdgesCount    int                  `json:"edges_count"`
	Files         map[string]*FileInfo `json:"files,omitempty"`
}

// FileInfo holds the checksum of one data file.
type FileInfo struct {
	SizeBytes int64  `json:"size_bytes"`
	SHA256    string `json:"sha256"`
}

// LoadMetadata reads metadata.json from dir
func LoadMetadata(dir string) (*Metadata, error) {
	raw, err := os.ReadFile(filepath.Join(dir, MetadataFile))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read metadata.json")
	}

	var m Metadata
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, errors.Wrap(err, "failed to parse metadata.json")
	}

	return &m, nil
}

// Validate checks the required metadata fields
func (m *Metadata) Validate() error {
	switch {
	case m.Version == "":
		return errors.New("metadata version is required")
	case m.Region == "":
		return errors.New("metadata region is required")
	case m.GeneratedAt.IsZero():
		return errors.New("metadata generated_at is required")
	case m.VerticesCount <= 0:
		return errors.New("metadata vertices_count must be positive")
	case m.EdgesCount <= 0:
		return errors.New("metadata edges_count must be positive")
	}

	return nil
}

// VerifyChecksums compares the listed files in dir against their recorded
// SHA256 sums.
func (m *Metadata) VerifyChecksums(dir string) error {
	for name, info := range m.Files {
		if info == nil || info.SHA256 == "" {
			continue
		}

		sum, err := util.CalculateFileChecksum(filepath.Join(dir, name))
		if err != nil {
			return errors.Wrapf(err, "checksum %s", name)
		}
		if sum != info.SHA256 {
			return errors.Errorf("checksum mismatch for %s: got %s, want %s", name, sum, info.SHA256)
		}
	}

	return nil
}

// Load reads vertices and edges from dir concurrently, then checks that every
// edge references a known vertex. Metadata is optional.
func Load(dir string) (*Data, error) {
	var (
		data  Data
		group errgroup.Group
	)

	group.Go(func() error {
		vertices, err := loadVertices(filepath.Join(dir, VerticesFile))
		data.Vertices = vertices

		return err
	})
	group.Go(func() error {
		edges, err := loadEdges(filepath.Join(dir, EdgesFile))
		data.Edges = edges

		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for i, e := range data.Edges {
		if e.From < 0 || e.From >= len(data.Vertices) || e.To < 0 || e.To >= len(data.Vertices) {
			return nil, errors.Errorf("edge %d references unknown vertex (%d -> %d)", i, e.From, e.To)
		}
	}

	if m, err := LoadMetadata(dir); err == nil {
		data.Metadata = m
	}

	return &data, nil
}

// loadVertices expects the header id,lat,lng with ids equal to row order.
func loadVertices(path string) ([]Vertex, error) {
	var vertices []Vertex
	err := readCSV(path, 3, func(line int, record []string) error {
		id, err := strconv.Atoi(record[0])
		if err != nil {
			return errors.Wrapf(err, "%s line %d: id", VerticesFile, line)
		}
		if id != len(vertices) {
			return errors.Errorf("%s line %d: id %d out of sequence", VerticesFile, line, id)
		}
		lat, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return errors.Wrapf(err, "%s line %d: lat", VerticesFile, line)
		}
		lng, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return errors.Wrapf(err, "%s line %d: lng", VerticesFile, line)
		}

		vertices = append(vertices, Vertex{ID: id, Lat: lat, Lng: lng})

		return nil
	})

	return vertices, err
}

// loadEdges expects the header from,to,distance_m.
func loadEdges(path string) ([]Edge, error) {
	var edges []Edge
	err := readCSV(path, 3, func(line int, record []string) error {
		from, err := strconv.Atoi(record[0])
		if err != nil {
			return errors.Wrapf(err, "%s line %d: from", EdgesFile, line)
		}
		to, err := strconv.Atoi(record[1])
		if err != nil {
			return errors.Wrapf(err, "%s line %d: to", EdgesFile, line)
		}
		distance, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			return errors.Wrapf(err, "%s line %d: distance", EdgesFile, line)
		}
		if distance < 0 {
			return errors.Errorf("%s line %d: negative distance", EdgesFile, line)
		}

		edges = append(edges, Edge{From: from, To: to, DistanceMeters: distance})

		return nil
	})

	return edges, err
}

func readCSV(path string, columns int, row func(line int, record []string) error) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return errors.Wrapf(err, "%s: missing header", filepath.Base(path))
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return errors.WithStack(err)
		}
		if len(record) < columns {
			return errors.Errorf("%s line %d: expected %d columns, got %d", filepath.Base(path), line, columns, len(record))
		}
		if err := row(line, record); err != nil {
			return err
		}
	}
}
