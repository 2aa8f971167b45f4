package parser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Format is the format of a zone export
type Format string

const (
	// FormatAuto detects the format from the file name
	FormatAuto Format = "auto"
	// FormatRoute53 is the Route53 JSON export format
	FormatRoute53 Format = "route53"
	// FormatZone is the RFC 1035 master file format
	FormatZone Format = "zone"
)

var zoneFileExtensions = map[string]struct{}{
	".zone":  {},
	".db":    {},
	".bind":  {},
	".hosts": {},
}

// DetectFormat guesses the format of a zone export from its file name
func DetectFormat(filename string) Format {
	name := strings.TrimSuffix(strings.ToLower(filename), ".gz")
	if _, ok := zoneFileExtensions[filepath.Ext(name)]; ok {
		return FormatZone
	}
	return FormatRoute53
}

// ParseFormatFile parses filename in the given format, detecting it if
// format is FormatAuto.
func ParseFormatFile(filename string, format Format, origin string, onRecord OnRecordFN) error {
	if format == FormatAuto {
		format = DetectFormat(filename)
	}
	switch format {
	case FormatRoute53:
		return ParseFile(filename, onRecord)
	case FormatZone:
		return ParseZoneFile(filename, origin, onRecord)
	default:
		return fmt.Errorf("unknown input format: %s", format)
	}
}

// openFile opens a file for reading, decompressing it if it is gzipped.
// The returned close function releases all the underlying readers.
func openFile(filename string) (io.Reader, func(), error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, err
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".gz") {
		return file, func() { _ = file.Close() }, nil
	}

	gz, err := gzip.NewReader(file)
	if err != nil {
		_ = file.Close()
		return nil, nil, fmt.Errorf("could not open gzip reader: %w", err)
	}
	return gz, func() {
		_ = gz.Close()
		_ = file.Close()
	}, nil
}
