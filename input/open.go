package input

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/amp-labs/collate/closer"
	"github.com/amp-labs/collate/logger"
	"github.com/amp-labs/collate/should"
)

// Open opens the file at path, decompressing it by extension and decoding it
// from charsetLabel (see Decode). Closing the result closes the decoder and then
// the file.
func Open(ctx context.Context, path string, charsetLabel string) (io.ReadCloser, error) {
	file, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, err
	}

	codec := CodecFor(path)

	decompressed, decoder, err := Decompress(codec, file)
	if err != nil {
		should.Close(ctx, file, "closing input after decoder failure", "path", path)

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	closers := closer.NewCloser(decoder, file)

	text, name, err := Decode(decompressed, charsetLabel)
	if err != nil {
		should.Close(ctx, closers, "closing input after charset failure", "path", path)

		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Get(ctx).Debug("opened input", "path", path, "codec", string(codec), "charset", name)

	return closer.ReadCloser(text, closer.CloseOnce(closers)), nil
}
