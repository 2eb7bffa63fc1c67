package util

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"time"

	"routeopt/internal/errors"
)

// CalculateFileChecksum returns the hex SHA256 of a graph data file.
func CalculateFileChecksum(filePath string) (string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to open %s", filePath)
	}
	defer file.Close()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return "", errors.Wrapf(err, "failed to hash %s", filePath)
	}

	return hex.EncodeToString(hash.Sum(nil)), nil
}

// FormatBytes renders a size with binary units, e.g. "1.5 KB".
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes)
	suffix := 0
	for value >= unit && suffix < len(byteSuffixes)-1 {
		value /= unit
		suffix++
	}

	return fmt.Sprintf("%.1f %s", value, byteSuffixes[suffix])
}

//nolint:gochecknoglobals
var byteSuffixes = []string{"B", "KB", "MB", "GB", "TB"}

// FormatDuration renders elapsed time for CLI output. Sub-second values keep
// millisecond precision since graph loads usually finish under a second.
func FormatDuration(duration time.Duration) string {
	switch {
	case duration < time.Second:
		return fmt.Sprintf("%dms", duration.Milliseconds())
	case duration < time.Minute:
		return fmt.Sprintf("%.1fs", duration.Seconds())
	case duration < time.Hour:
		duration = duration.Round(time.Second)

		return fmt.Sprintf("%dm%02ds", int(duration.Minutes()), int(duration.Seconds())%60)
	default:
		duration = duration.Round(time.Minute)

		return fmt.Sprintf("%dh%02dm", int(duration.Hours()), int(duration.Minutes())%60)
	}
}
