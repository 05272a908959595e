package input

import (
	"fmt"
	"io"
	"strings"

	"github.com/amp-labs/collate/xform"
	"golang.org/x/text/unicode/norm"
)

// NoNormalization leaves text as decoded.
const NoNormalization = "none"

var forms = map[string]norm.Form{ //nolint:gochecknoglobals
	"nfc":  norm.NFC,
	"nfd":  norm.NFD,
	"nfkc": norm.NFKC,
	"nfkd": norm.NFKD,
}

// Normalize returns r rewritten to the named Unicode normalization form (nfc,
// nfd, nfkc or nfkd). NoNormalization or an empty name returns r unchanged.
// Lines that differ only in normalization then compare as equal.
func Normalize(r io.Reader, form string) (io.Reader, error) {
	form = strings.ToLower(strings.TrimSpace(form))

	if form == "" || form == NoNormalization {
		return r, nil
	}

	f, ok := forms[form]
	if !ok {
		_, err := xform.OneOf("nfc", "nfd", "nfkc", "nfkd", NoNormalization)(form)

		return nil, fmt.Errorf("unknown normalization form: %w", err)
	}

	return f.Reader(r), nil
}
