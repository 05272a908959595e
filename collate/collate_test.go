package collate_test

import (
	"fmt"
	"math"
	"slices"
	"sync"
	"testing"

	"github.com/Pallinder/go-randomdata"
	"github.com/amp-labs/collate/collate"
	collateerrors "github.com/amp-labs/collate/errors"
	"github.com/amp-labs/collate/sortable"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	textcollate "golang.org/x/text/collate"
	"golang.org/x/text/language"
)

func TestOrdering(t *testing.T) {
	t.Parallel()

	assert.Equal(t, collate.Less, collate.FromInt(-42))
	assert.Equal(t, collate.Equal, collate.FromInt(0))
	assert.Equal(t, collate.Greater, collate.FromInt(7))

	assert.Equal(t, collate.Greater, collate.Less.Reverse())
	assert.Equal(t, collate.Equal, collate.Equal.Reverse())

	assert.Equal(t, collate.Less, collate.Less.Then(collate.Greater))
	assert.Equal(t, collate.Greater, collate.Equal.Then(collate.Greater))

	called := false
	collate.Greater.ThenFunc(func() collate.Ordering {
		called = true

		return collate.Less
	})
	assert.False(t, called, "ThenFunc must short-circuit")

	assert.Equal(t, "Less", collate.Less.String())
	assert.Equal(t, "Equal", collate.Equal.String())
	assert.Equal(t, "Greater", collate.Greater.String())
	assert.Equal(t, "Ordering(5)", collate.Ordering(5).String())
	assert.Equal(t, -1, collate.Less.Int())
}

func TestNatural(t *testing.T) {
	t.Parallel()

	ints := collate.Natural[int]()
	assert.Equal(t, collate.Less, ints.Compare(1, 2))
	assert.Equal(t, collate.Equal, ints.Compare(2, 2))
	assert.Equal(t, collate.Greater, ints.Compare(3, 2))

	floats := collate.Natural[float64]()
	assert.Equal(t, collate.Less, floats.Compare(math.NaN(), math.Inf(-1)))
	assert.Equal(t, collate.Equal, floats.Compare(math.NaN(), math.NaN()))

	assert.Equal(t, collate.Natural[int](), collate.Natural[int](), "natural collators carry no state")
}

func TestReverse(t *testing.T) {
	t.Parallel()

	natural := collate.Natural[string]()
	reversed := collate.Reverse(natural)

	assert.Equal(t, collate.Greater, reversed.Compare("a", "b"))
	assert.Equal(t, collate.Equal, reversed.Compare("a", "a"))
	assert.Equal(t, natural, collate.Reverse(reversed))
}

func TestRef(t *testing.T) {
	t.Parallel()

	c := collate.Ref(collate.Natural[int]())
	one, two := 1, 2

	assert.Equal(t, collate.Less, c.Compare(&one, &two))
	assert.Equal(t, collate.Equal, c.Compare(&one, &one))
	assert.Equal(t, collate.Less, c.Compare(nil, &one))
	assert.Equal(t, collate.Greater, c.Compare(&one, nil))
	assert.Equal(t, collate.Equal, c.Compare(nil, nil))
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	c := collate.Complex128()
	assert.Equal(t, complex(1, 0), collate.Min(c, complex(1, 0), complex(0, 1)), "ties prefer the first argument")
	assert.Equal(t, complex(0, 3), collate.Max(c, complex(2, 2), complex(0, 3)))
	assert.Equal(t, 1, collate.Min(collate.Natural[int](), 3, 1))
}

func TestIsSorted(t *testing.T) {
	t.Parallel()

	c := collate.Natural[int]()
	assert.True(t, collate.IsSorted(c, []int{}))
	assert.True(t, collate.IsSorted(c, []int{1, 1, 2, 9}))
	assert.False(t, collate.IsSorted(c, []int{1, 3, 2}))
}

func TestComplex(t *testing.T) {
	t.Parallel()

	c := collate.Complex128()
	assert.Equal(t, collate.Equal, c.Compare(complex(3, 4), complex(-5, 0)))
	assert.Equal(t, collate.Less, c.Compare(complex(1, 1), complex(0, -2)))

	c64 := collate.Complex64()
	assert.Equal(t, collate.Greater, c64.Compare(complex64(complex(0, 3)), complex64(complex(2, 2))))
}

func TestBytesAndUUID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, collate.Less, collate.Bytes().Compare([]byte("ab"), []byte("abc")))
	assert.Equal(t, collate.Equal, collate.Bytes().Compare(nil, []byte{}))

	first := uuid.MustParse("00000000-0000-7000-8000-000000000001")
	second := uuid.MustParse("00000000-0000-7000-8000-000000000002")

	assert.Equal(t, collate.Less, collate.UUID().Compare(first, second))
	assert.Equal(t, collate.Equal, collate.UUID().Compare(second, second))
}

func TestSortable(t *testing.T) {
	t.Parallel()

	c := collate.Sortable[sortable.Version]()
	assert.Equal(t, collate.Less, c.Compare(sortable.Version{1, 9}, sortable.Version{1, 10}))
	assert.Equal(t, collate.Equal, c.Compare(sortable.Version{2}, sortable.Version{2, 0, 0}))
}

func TestNaturalString(t *testing.T) {
	t.Parallel()

	c := collate.NaturalString()
	files := []string{"file10", "file2", "file1", "file20"}
	slices.SortFunc(files, func(a, b string) int { return c.Compare(a, b).Int() })

	assert.Equal(t, []string{"file1", "file2", "file10", "file20"}, files)
	assert.Equal(t, collate.Equal, c.Compare("same", "same"))

	// Numeric peers are distinct strings, so they still get a strict, antisymmetric order.
	assert.Equal(t, collate.Less, c.Compare("a01", "a1"))
	assert.Equal(t, collate.Greater, c.Compare("a1", "a01"))
	assert.Equal(t, collate.Less, c.Compare("a2", "a10"))
	assert.Equal(t, collate.Greater, c.Compare("a10", "a2"))
}

func TestLocale(t *testing.T) {
	t.Parallel()

	swedish := collate.Locale(language.Swedish)
	german := collate.Locale(language.German)

	assert.Equal(t, language.Swedish, swedish.Tag())

	// In Swedish "ö" sorts after "z"; in German it sorts with "o".
	assert.Equal(t, collate.Greater, swedish.Compare("ö", "z"))
	assert.Equal(t, collate.Less, german.Compare("ö", "z"))

	folded := collate.Locale(language.English, textcollate.IgnoreCase)
	assert.Equal(t, collate.Equal, folded.Compare("Apple", "apple"))
}

func TestLocale_Concurrent(t *testing.T) {
	t.Parallel()

	c := collate.Locale(language.French)

	words := make([]string, 64)
	for i := range words {
		words[i] = randomdata.SillyName()
	}

	expected := make([]collate.Ordering, len(words)-1)
	for i := range expected {
		expected[i] = c.Compare(words[i], words[i+1])
	}

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range expected {
				assert.Equal(t, expected[i], c.Compare(words[i], words[i+1]))
			}
		}()
	}

	wg.Wait()
}

func TestCounting(t *testing.T) {
	t.Parallel()

	c := collate.Counting(collate.Natural[int]())
	c.Compare(1, 2)
	c.Compare(2, 1)

	assert.EqualValues(t, 2, c.Calls())
	assert.EqualValues(t, 2, c.Reset())
	assert.EqualValues(t, 0, c.Calls())
}

func TestByName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     string
		expected collate.Ordering
	}{
		{name: "lexical", a: "file10", b: "file2", expected: collate.Less},
		{name: "natural", a: "file10", b: "file2", expected: collate.Greater},
		{name: " Natural ", a: "file10", b: "file2", expected: collate.Greater},
		{name: "reverse:lexical", a: "a", b: "b", expected: collate.Greater},
		{name: "reverse:reverse:natural", a: "x2", b: "x10", expected: collate.Less},
		{name: "locale:sv", a: "ö", b: "z", expected: collate.Greater},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c, err := collate.ByName(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, c.Compare(tc.a, tc.b))
		})
	}
}

func TestByName_Unknown(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "numeric", "reverse:", "locale:not a tag!"} {
		_, err := collate.ByName(name)
		require.ErrorIs(t, err, collateerrors.ErrUnknownCollator, name)
	}
}

// Every built-in string collator must behave as a total order over random input.
func TestStringCollators_TotalOrder(t *testing.T) {
	t.Parallel()

	words := make([]string, 40)
	for i := range words {
		words[i] = randomdata.SillyName() + fmt.Sprint(randomdata.Number(0, 100))
	}

	for _, name := range []string{"lexical", "natural", "locale:en", "reverse:natural"} {
		c, err := collate.ByName(name)
		require.NoError(t, err)

		for _, a := range words {
			for _, b := range words {
				assert.Equal(t, c.Compare(a, b), c.Compare(b, a).Reverse(), "%s: %q vs %q", name, a, b)
			}
		}

		sorted := slices.Clone(words)
		slices.SortFunc(sorted, func(a, b string) int { return c.Compare(a, b).Int() })
		assert.True(t, collate.IsSorted(c, sorted), name)
	}
}
