package schemes

import "cmp"

// Category ranks a k-mer by where its minimal t-mer falls. Lower sorts first.
type Category uint8

const (
	CategoryOpen Category = iota
	CategoryClosed
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryOpen:
		return "open"
	case CategoryClosed:
		return "closed"
	case CategoryOther:
		return "other"
	default:
		return "unknown"
	}
}

// Key is the composite OpenClosed key, ordered by Category then Tiebreak.
type Key struct {
	Category Category
	Tiebreak uint64
}

// Compare returns -1, 0 or +1 as k sorts before, with, or after o.
func (k Key) Compare(o Key) int {
	if c := cmp.Compare(k.Category, o.Category); c != 0 {
		return c
	}
	return cmp.Compare(k.Tiebreak, o.Tiebreak)
}

// Less reports whether k sorts strictly before o.
func (k Key) Less(o Key) bool { return k.Compare(o) < 0 }
