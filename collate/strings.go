package collate

import (
	"sync"

	"facette.io/natsort"
	textcollate "golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Lexical orders strings by their bytes, which for UTF-8 is code point order.
func Lexical() Collator[string] {
	return Natural[string]()
}

type naturalString struct{}

func (naturalString) Compare(a, b string) Ordering {
	if a == b {
		return Equal
	}

	// natsort.Compare is a "less or equal" and reports numeric peers such as
	// "a01" and "a1" as less in both directions. Peers fall back to byte order.
	less, greater := natsort.Compare(a, b), natsort.Compare(b, a)

	switch {
	case less && !greater:
		return Less
	case greater && !less:
		return Greater
	default:
		return Natural[string]().Compare(a, b)
	}
}

// NaturalString orders strings the way people do: runs of digits compare by
// numeric value, so "file2" sorts before "file10".
func NaturalString() Collator[string] {
	return naturalString{}
}

// LocaleCollator orders strings using the collation rules of a language.
//
// The underlying x/text collators keep scratch buffers and aren't safe for
// concurrent use, so a LocaleCollator hands each Compare call its own one from a pool.
type LocaleCollator struct {
	tag  language.Tag
	pool *sync.Pool
}

var _ Collator[string] = (*LocaleCollator)(nil)

// Locale returns a collator for the given language. Options such as
// IgnoreCase or Numeric from golang.org/x/text/collate are passed through to x/text.
// Strings the options make equivalent ("a" and "A" under IgnoreCase, or
// canonically equivalent Unicode forms) compare Equal.
func Locale(tag language.Tag, opts ...textcollate.Option) *LocaleCollator {
	return &LocaleCollator{
		tag: tag,
		pool: &sync.Pool{
			New: func() any {
				return textcollate.New(tag, opts...)
			},
		},
	}
}

// Tag returns the language this collator was built for.
func (l *LocaleCollator) Tag() language.Tag {
	return l.tag
}

func (l *LocaleCollator) Compare(a, b string) Ordering {
	c := l.pool.Get().(*textcollate.Collator) //nolint:forcetypeassert
	defer l.pool.Put(c)

	return FromInt(c.CompareString(a, b))
}
