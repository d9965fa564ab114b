// Package schemes implements the open/closed syncmer order on top of the
// minimizer sampler.
//
// What
//
//	Each k-mer is classified by where the minimal t-mer (length r) falls
//	inside it, as reported by a minimizer.Minimizer over the secondary order:
//
//	  • open   (category 0) – the t-mer sits at the configured offset
//	                          (or offset mod w when Modulo is set);
//	  • closed (category 1) – the t-mer sits at either end (x == 0 or x == k-r);
//	  • other  (category 2) – anything else, or a disabled category.
//
//	Open is checked before closed. Within a category the tiebreak is the
//	t-mer's secondary key (when the category's ByTmer flag is set), its
//	bitwise complement (AntiTmer), or zero. The resulting Key compares
//	category first, tiebreak second.
//
// Configuration
//
//	OpenClosed is a plain value: construct it with DefaultOpenClosed(r) and set
//	fields, or decode YAML with LoadOpenClosed. Every flag combination is legal;
//	with neither Open nor Closed set every k-mer lands in category 2.
//
//	  r: 4
//	  open: true
//	  closed: true
//	  offset: 3
//	  modulo: false
//	  open_by_tmer: true
//
// Usage
//
//	cfg := schemes.DefaultOpenClosed(4)
//	cfg.Open, cfg.Closed = true, true
//	o := cfg.ToOrder(w, k, 4)
//	for key := range o.Keys(seq, k) {
//	    // ...
//	}
//
// Errors
//
//   - ErrBadWindow   if w < 1.
//   - ErrTmerLength  if r < 1 or r > k.
//   - ErrBadOffset   if Offset is negative.
//   - ErrConfig      if a YAML document cannot be decoded.
//
//	Validate returns these; ToOrder panics with them, since an invalid
//	configuration reaching ToOrder is a defect in the calling code.
package schemes
