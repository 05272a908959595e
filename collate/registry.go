package collate

import (
	"fmt"
	"strings"

	"github.com/amp-labs/collate/errors"
	"golang.org/x/text/language"
)

const (
	reversePrefix = "reverse:"
	localePrefix  = "locale:"
)

// ByName builds a string collator from a short textual description, which is
// how configuration files and command line flags select an order:
//
//	lexical          byte order (the default for most tools)
//	natural          digits compare numerically: file2 < file10
//	locale:<tag>     language-aware collation, e.g. locale:de or locale:sv-SE
//	reverse:<name>   the opposite of any of the above
//
// Names are case-insensitive. An unrecognized name yields errors.ErrUnknownCollator.
func ByName(name string) (Collator[string], error) {
	normalized := strings.ToLower(strings.TrimSpace(name))

	switch {
	case strings.HasPrefix(normalized, reversePrefix):
		inner, err := ByName(normalized[len(reversePrefix):])
		if err != nil {
			return nil, err
		}

		return Reverse(inner), nil
	case strings.HasPrefix(normalized, localePrefix):
		tag, err := language.Parse(normalized[len(localePrefix):])
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", errors.ErrUnknownCollator, name, err)
		}

		return Locale(tag), nil
	case normalized == "lexical":
		return Lexical(), nil
	case normalized == "natural":
		return NaturalString(), nil
	default:
		return nil, fmt.Errorf("%w %q", errors.ErrUnknownCollator, name)
	}
}
