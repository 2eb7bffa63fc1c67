package pmtiles

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"routeopt/internal/errors"

	"github.com/protomaps/go-pmtiles/pmtiles"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
)

const headerLength = 127

// archiveLocation splits an archive source into the bucket URL the tile
// server opens, the object key and the tileset name it serves.
type archiveLocation struct {
	bucketURL string
	key       string
	tileset   string
}

// parseSourcePath accepts file:// URLs, http(s) URLs and plain paths.
//
//   - "file:///srv/tiles/sousse.pmtiles" -> ("file:///srv/tiles", "sousse.pmtiles", "sousse")
//   - "data/sousse.pmtiles"             -> ("file://<abs>/data", "sousse.pmtiles", "sousse")
//   - "https://cdn.example/sousse.pmtiles" -> ("https://cdn.example", "sousse.pmtiles", "sousse")
func parseSourcePath(source string) (archiveLocation, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		lastSlash := strings.LastIndex(source, "/")
		key := source[lastSlash+1:]
		if key == "" || lastSlash < strings.Index(source, "://")+len("://") {
			return archiveLocation{}, errors.Errorf("tile archive URL %q has no file name", source)
		}

		return archiveLocation{
			bucketURL: source[:lastSlash],
			key:       key,
			tileset:   strings.TrimSuffix(key, ".pmtiles"),
		}, nil
	}

	path := strings.TrimPrefix(source, "file://")
	abs, err := filepath.Abs(path)
	if err != nil {
		return archiveLocation{}, errors.Wrapf(err, "failed to resolve tile archive path %s", path)
	}
	key := filepath.Base(abs)

	return archiveLocation{
		bucketURL: "file://" + filepath.ToSlash(filepath.Dir(abs)),
		key:       key,
		tileset:   strings.TrimSuffix(key, ".pmtiles"),
	}, nil
}

// isLocal reports whether the archive lives on the local filesystem
func (l archiveLocation) isLocal() bool {
	return strings.HasPrefix(l.bucketURL, "file://")
}

// readHeader opens the archive through its blob bucket and decodes the
// PMTiles header.
func readHeader(ctx context.Context, loc archiveLocation) (pmtiles.HeaderV3, error) {
	bucket, err := blob.OpenBucket(ctx, loc.bucketURL)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrapf(err, "failed to open tile bucket %s", loc.bucketURL)
	}
	defer bucket.Close()

	exists, err := bucket.Exists(ctx, loc.key)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrapf(err, "failed to stat tile archive %s", loc.key)
	}
	if !exists {
		return pmtiles.HeaderV3{}, errors.Errorf("tile archive %s not found in %s", loc.key, loc.bucketURL)
	}

	reader, err := bucket.NewRangeReader(ctx, loc.key, 0, headerLength, nil)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrapf(err, "failed to read tile archive %s", loc.key)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrapf(err, "failed to read tile archive %s", loc.key)
	}
	if len(raw) < headerLength {
		return pmtiles.HeaderV3{}, errors.Errorf("tile archive %s is truncated (%d bytes)", loc.key, len(raw))
	}

	header, err := pmtiles.DeserializeHeader(raw)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrapf(err, "tile archive %s is not a PMTiles v3 file", loc.key)
	}

	return header, nil
}
