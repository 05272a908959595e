package interval

import "fmt"

// Overlap is the result of comparing one range (the left) against another (the
// right). It plays the role Ordering plays for single values.
type Overlap uint8

const (
	// Less means the left range lies entirely before the right, without touching it.
	Less Overlap = iota
	// Greater means the left range lies entirely after the right.
	Greater
	// Equal means both ranges have identical bounds.
	Equal
	// Narrow means the left range is a proper subset of the right.
	Narrow
	// Wide means the left range is a proper superset of the right.
	Wide
	// WideLess means the left range starts at or before the right one and ends inside it.
	WideLess
	// WideGreater means the left range starts inside the right one and ends at or after it.
	WideGreater
)

var overlapNames = [...]string{ //nolint:gochecknoglobals
	Less:        "Less",
	Greater:     "Greater",
	Equal:       "Equal",
	Narrow:      "Narrow",
	Wide:        "Wide",
	WideLess:    "WideLess",
	WideGreater: "WideGreater",
}

func (o Overlap) String() string {
	if int(o) < len(overlapNames) {
		return overlapNames[o]
	}

	return fmt.Sprintf("Overlap(%d)", uint8(o))
}

// Reverse gives the overlap of the right range against the left.
func (o Overlap) Reverse() Overlap {
	switch o {
	case Less:
		return Greater
	case Greater:
		return Less
	case Narrow:
		return Wide
	case Wide:
		return Narrow
	case WideLess:
		return WideGreater
	case WideGreater:
		return WideLess
	default:
		return o
	}
}

// thenTable joins two overlaps. Think of each value as the set of regions of the
// right range the left one reaches: below it (Less, or WideLess which also reaches
// inside), inside it (Narrow, Equal), above it (Greater, WideGreater), or past both
// ends (Wide). The join reaches every region either operand reaches. So Wide
// absorbs everything, below plus above is Wide, below plus inside is WideLess and
// inside plus above is WideGreater. The join is commutative and associative.
var thenTable = [7][7]Overlap{ //nolint:gochecknoglobals
	//           Less      Greater      Equal        Narrow       Wide  WideLess  WideGreater
	Less:        {Less, Wide, WideLess, WideLess, Wide, WideLess, Wide},
	Greater:     {Wide, Greater, WideGreater, WideGreater, Wide, Wide, WideGreater},
	Equal:       {WideLess, WideGreater, Equal, Equal, Wide, WideLess, WideGreater},
	Narrow:      {WideLess, WideGreater, Equal, Narrow, Wide, WideLess, WideGreater},
	Wide:        {Wide, Wide, Wide, Wide, Wide, Wide, Wide},
	WideLess:    {WideLess, Wide, WideLess, WideLess, Wide, WideLess, Wide},
	WideGreater: {Wide, WideGreater, WideGreater, WideGreater, Wide, Wide, WideGreater},
}

// Then widens o by other: the narrowest overlap that covers both. It folds the
// classifications of several pieces of a range against the same right range
// into one classification.
func (o Overlap) Then(other Overlap) Overlap {
	return thenTable[o][other]
}

// Fold joins any number of overlaps with Then, left to right. It returns Equal for no input.
func Fold(overlaps ...Overlap) Overlap {
	if len(overlaps) == 0 {
		return Equal
	}

	result := overlaps[0]
	for _, o := range overlaps[1:] {
		result = result.Then(o)
	}

	return result
}
