// Package input opens line-oriented files for the collate command: it undoes any
// compression implied by the file extension, decodes the text to UTF-8 and splits
// it into a stream of lines.
package input

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec names a compression format recognized by file extension.
type Codec string

const (
	None   Codec = "none"
	Gzip   Codec = "gzip"
	Zstd   Codec = "zstd"
	Snappy Codec = "snappy"
	Brotli Codec = "br"
	LZ4    Codec = "lz4"
)

var extensions = map[string]Codec{ //nolint:gochecknoglobals
	".gz":   Gzip,
	".gzip": Gzip,
	".zst":  Zstd,
	".zstd": Zstd,
	".sz":   Snappy,
	".br":   Brotli,
	".lz4":  LZ4,
}

// CodecFor returns the codec implied by the extension of name, or None.
func CodecFor(name string) Codec {
	if codec, ok := extensions[strings.ToLower(filepath.Ext(name))]; ok {
		return codec
	}

	return None
}

// Decompress wraps r in a decoder for codec. The returned closer releases the
// decoder only; it may be nil, and it never closes r.
func Decompress(codec Codec, r io.Reader) (io.Reader, io.Closer, error) {
	switch codec {
	case None, "":
		return r, nil, nil
	case Gzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating gzip reader: %w", err)
		}

		return gr, gr, nil
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("error creating zstd reader: %w", err)
		}

		rc := zr.IOReadCloser()

		return rc, rc, nil
	case Snappy:
		return snappy.NewReader(r), nil, nil
	case Brotli:
		return brotli.NewReader(r), nil, nil
	case LZ4:
		return lz4.NewReader(r), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown codec %q", codec)
	}
}
