package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"routeopt/internal/infra/routing/graph"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	fixtureVertices = "id,lat,lng\n" +
		"0,35.8200,10.6300\n" +
		"1,35.8200,10.6400\n" +
		"2,35.8300,10.6300\n" +
		"3,35.8300,10.6400\n"
	fixtureEdges = "from,to,distance_m\n" +
		"0,1,900\n1,0,900\n" +
		"0,2,1100\n2,0,1100\n" +
		"1,3,1100\n3,1,1100\n" +
		"2,3,900\n3,2,900\n"
)

func writeFixture(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, graph.VerticesFile), []byte(fixtureVertices), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, graph.EdgesFile), []byte(fixtureEdges), 0o600))

	return dir
}

func TestGenerateMetadata(t *testing.T) {
	dir := writeFixture(t)
	now := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	metadata, err := generateMetadata(dir, "sousse", "osm-extract", now)
	require.NoError(t, err)

	assert.Equal(t, metadataVersion, metadata.Version)
	assert.Equal(t, "sousse", metadata.Region)
	assert.Equal(t, now, metadata.GeneratedAt)
	assert.Equal(t, 4, metadata.VerticesCount)
	assert.Equal(t, 8, metadata.EdgesCount)
	require.Contains(t, metadata.Files, graph.VerticesFile)
	require.Contains(t, metadata.Files, graph.EdgesFile)
	assert.Len(t, metadata.Files[graph.EdgesFile].SHA256, 64)
	assert.Equal(t, int64(len(fixtureVertices)), metadata.Files[graph.VerticesFile].SizeBytes)
}

func TestMetadataThenValidate(t *testing.T) {
	dir := writeFixture(t)

	var out bytes.Buffer
	require.NoError(t, runMetadata(&out, dir, "sousse", ""))
	assert.Contains(t, out.String(), "4 vertices, 8 edges")

	out.Reset()
	require.NoError(t, runValidate(&out, dir))
	assert.Contains(t, out.String(), "Validation passed")
	assert.Contains(t, out.String(), "vertices: 4")
}

func TestValidate_Failures(t *testing.T) {
	t.Run("missing metadata", func(t *testing.T) {
		dir := writeFixture(t)

		var out bytes.Buffer
		err := runValidate(&out, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), graph.MetadataFile)
	})

	t.Run("tampered edges", func(t *testing.T) {
		dir := writeFixture(t)
		var out bytes.Buffer
		require.NoError(t, runMetadata(&out, dir, "sousse", ""))

		require.NoError(t, os.WriteFile(filepath.Join(dir, graph.EdgesFile), []byte(fixtureEdges+"0,3,2000\n"), 0o600))

		err := runValidate(&out, dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "checksum mismatch")
	})

	t.Run("missing directory", func(t *testing.T) {
		var out bytes.Buffer
		require.Error(t, runValidate(&out, filepath.Join(t.TempDir(), "absent")))
	})
}

func TestParseWaypoints(t *testing.T) {
	points, err := parseWaypoints("35.82,10.63; 35.83,10.64;")
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.InDelta(t, 35.83, points[1].Lat, 1e-9)
	assert.InDelta(t, 10.64, points[1].Lng, 1e-9)

	for _, raw := range []string{"35.82", "x,10.63", "35.82,y", "95,10"} {
		_, err := parseWaypoints(raw)
		assert.Error(t, err, raw)
	}
}

func TestRunRoute(t *testing.T) {
	dir := writeFixture(t)

	var out bytes.Buffer
	err := runRoute(context.Background(), &out, routeOptions{
		dir:      dir,
		points:   "35.8200,10.6300;35.8300,10.6400",
		speedKmh: 30,
		snapKm:   0.5,
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Distance: 2.00 km")
	assert.Contains(t, out.String(), "Duration: 4.0 min")

	err = runRoute(context.Background(), &out, routeOptions{dir: dir, points: "35.82,10.63", speedKmh: 30, snapKm: 0.5})
	require.Error(t, err)
}
