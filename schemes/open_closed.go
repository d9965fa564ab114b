package schemes

import (
	"fmt"
	"iter"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/minimizers/internal/logging"
	"github.com/katalvlaran/minimizers/minimizer"
	"github.com/katalvlaran/minimizers/order"
)

// OpenClosed configures the open/closed syncmer order.
type OpenClosed struct {
	// R is the t-mer length.
	R int `yaml:"r"`
	// Open ranks open syncmers first.
	Open bool `yaml:"open"`
	// Closed ranks closed syncmers second.
	Closed bool `yaml:"closed"`
	// Offset overrides the open-syncmer position (default: middle).
	Offset *int `yaml:"offset,omitempty"`
	// Modulo makes any position x with x%w == offset open.
	Modulo bool `yaml:"modulo"`

	OpenByTmer   bool `yaml:"open_by_tmer"`
	ClosedByTmer bool `yaml:"closed_by_tmer"`
	OtherByTmer  bool `yaml:"other_by_tmer"`
	// AntiTmer breaks ties by the complemented t-mer key when the
	// category's ByTmer flag is off.
	AntiTmer bool `yaml:"anti_tmer"`

	// O is the secondary t-mer order; nil means order.Random{}.
	O order.ToOrder[uint64] `yaml:"-"`
	// Log receives construction events; the zero value discards them.
	Log logr.Logger `yaml:"-"`
}

// DefaultOpenClosed returns a configuration with every flag off and a random
// secondary order.
func DefaultOpenClosed(r int) OpenClosed {
	return OpenClosed{R: r, O: order.Random{}}
}

// Validate checks the configuration against window count w and k-mer
// length k.
func (c OpenClosed) Validate(w, k int) error {
	if w < 1 {
		return fmt.Errorf("%w: w=%d", ErrBadWindow, w)
	}
	if c.R < 1 || c.R > k {
		return fmt.Errorf("%w: r=%d, k=%d", ErrTmerLength, c.R, k)
	}
	if c.Offset != nil && *c.Offset < 0 {
		return fmt.Errorf("%w: offset=%d", ErrBadOffset, *c.Offset)
	}
	return nil
}

// resolveOffset picks the open-syncmer position: the explicit Offset, or the
// middle of the k-r+1 candidates; under Modulo it is reduced mod w.
func (c OpenClosed) resolveOffset(w, k int) int {
	if c.Modulo {
		off := (k - c.R) % w / 2
		if c.Offset != nil {
			off = *c.Offset
		}
		return off % w
	}
	if c.Offset != nil {
		return *c.Offset
	}
	return (k - c.R) / 2
}

// ToOrder builds the order. It panics with the Validate error on an invalid
// configuration.
func (c OpenClosed) ToOrder(w, k, sigma int) order.Order[Key] {
	if err := c.Validate(w, k); err != nil {
		panic(err)
	}
	secondary := c.O
	if secondary == nil {
		secondary = order.Random{}
	}
	o := &OpenClosedOrder{
		cfg:    c,
		w:      w,
		k:      k,
		offset: c.resolveOffset(w, k),
		m:      minimizer.BuildFromOrder(secondary, k-c.R+1, c.R, sigma),
	}
	c.Log.V(logging.DEBUG).Info("Built open-closed order",
		"w", w, "k", k, "r", c.R, "offset", o.offset, "modulo", c.Modulo,
		"open", c.Open, "closed", c.Closed)
	return o
}

// OpenClosedOrder is the Order built by OpenClosed.
type OpenClosedOrder struct {
	cfg    OpenClosed
	w      int
	k      int
	offset int
	m      *minimizer.Minimizer[uint64]
}

// Offset returns the resolved open-syncmer position.
func (o *OpenClosedOrder) Offset() int { return o.offset }

// Minimizer returns the sampler over the secondary order.
func (o *OpenClosedOrder) Minimizer() *minimizer.Minimizer[uint64] { return o.m }

func (o *OpenClosedOrder) Key(kmer []byte) Key {
	order.CheckKmer(len(kmer), o.k)
	return o.classify(kmer, o.m.Sample(kmer))
}

func (o *OpenClosedOrder) Keys(text []byte, k int) iter.Seq[Key] {
	order.CheckText(len(text), k, o.k)
	xs := o.m.Stream(text)
	return func(yield func(Key) bool) {
		for i, x := range xs {
			if !yield(o.classify(text[i:i+k], x)) {
				return
			}
		}
	}
}

// classify builds the key of kmer whose minimal t-mer sits at offset x.
func (o *OpenClosedOrder) classify(kmer []byte, x int) Key {
	r := o.cfg.R
	w0 := o.k - r
	if x < 0 || x > w0 {
		panic(order.Violation(order.ErrWindow, "t-mer offset %d outside [0, %d]", x, w0))
	}

	pos := x
	if o.cfg.Modulo {
		pos = x % o.w
	}
	isOpen := pos == o.offset
	isClosed := x == 0 || x == w0

	var (
		cat    Category
		byTmer bool
	)
	switch {
	case o.cfg.Open && isOpen:
		cat, byTmer = CategoryOpen, o.cfg.OpenByTmer
	case o.cfg.Closed && isClosed:
		cat, byTmer = CategoryClosed, o.cfg.ClosedByTmer
	default:
		cat, byTmer = CategoryOther, o.cfg.OtherByTmer
	}

	var tiebreak uint64
	switch {
	case byTmer:
		tiebreak = o.m.Ord().Key(kmer[x : x+r])
	case o.cfg.AntiTmer:
		tiebreak = ^o.m.Ord().Key(kmer[x : x+r])
	}
	return Key{Category: cat, Tiebreak: tiebreak}
}
