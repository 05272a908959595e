package input

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/amp-labs/collate/stream"
)

const maxLineLen = 1 << 20

// Lines returns a Source yielding each line of r without its line terminator.
// A trailing carriage return is dropped too.
func Lines(r io.Reader) stream.Source[string] { //nolint:ireturn
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineLen)

	return stream.SourceFunc[string](func(ctx context.Context) (string, bool, error) {
		if err := ctx.Err(); err != nil {
			return "", false, err
		}

		if !scanner.Scan() {
			return "", false, scanner.Err()
		}

		return strings.TrimSuffix(scanner.Text(), "\r"), true, nil
	})
}
