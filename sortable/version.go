package sortable

import "cmp"

// Version is a dotted numeric version such as 1.10.2. Missing trailing
// components count as zero, so 1.2 and 1.2.0 are equal.
type Version []int

var _ Sortable[Version] = Version(nil)

func (v Version) at(i int) int {
	if i < len(v) {
		return v[i]
	}

	return 0
}

func (v Version) compare(other Version) int {
	for i := range max(len(v), len(other)) {
		if c := cmp.Compare(v.at(i), other.at(i)); c != 0 {
			return c
		}
	}

	return 0
}

func (v Version) Equals(other Version) bool {
	return v.compare(other) == 0
}

func (v Version) LessThan(other Version) bool {
	return v.compare(other) < 0
}
