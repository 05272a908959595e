package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	collerrors "github.com/amp-labs/collate/errors"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html/charset"
)

const (
	// AutoCharset asks Decode to detect the encoding from the first bytes of input.
	AutoCharset = "auto"

	utf8Charset = "utf-8"

	// detectLen is how much input the detector looks at.
	detectLen = 4096
)

// Decode returns a reader producing r as UTF-8, along with the name of the
// charset it decoded from. With AutoCharset (or an empty label) the charset is
// detected, falling back to UTF-8 when detection fails. Any other label must be
// one x/net/html/charset knows, or the error wraps errors.ErrUnsupportedEncoding.
func Decode(r io.Reader, label string) (io.Reader, string, error) {
	label = strings.ToLower(strings.TrimSpace(label))

	if label != "" && label != AutoCharset {
		decoded, err := charset.NewReaderLabel(label, r)
		if err != nil {
			return nil, "", fmt.Errorf("%w: %s", collerrors.ErrUnsupportedEncoding, label)
		}

		return decoded, label, nil
	}

	br := bufio.NewReaderSize(r, detectLen)

	data, err := br.Peek(detectLen)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, "", fmt.Errorf("error reading input: %w", err)
	}

	if len(data) == 0 {
		return br, utf8Charset, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return br, utf8Charset, nil //nolint:nilerr
	}

	decoded, err := charset.NewReaderLabel(best.Charset, br)
	if err != nil {
		return br, utf8Charset, nil //nolint:nilerr
	}

	return decoded, strings.ToLower(best.Charset), nil
}
