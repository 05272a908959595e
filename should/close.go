// Package should runs cleanup steps whose failure is worth logging but not
// worth returning, such as closing an input file in a defer.
package should

import (
	"context"
	"io"

	"github.com/amp-labs/collate/logger"
)

// Close closes closer and logs msg with the error if that fails.
//
//	defer should.Close(ctx, file, "closing input")
func Close(ctx context.Context, closer io.Closer, msg string, args ...any) {
	if err := closer.Close(); err != nil {
		logger.Get(ctx).Warn(msg, append(args, "error", err)...)
	}
}
