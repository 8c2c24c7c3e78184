package fm

import "context"

// Options configures the elimination driver, the single step and the
// minimization pass.
//   - Ctx: cooperative cancellation; consulted at driver-step, pairwise-
//     check and minimization-round boundaries. Defaults to
//     context.Background().
//   - Observer: progress hooks (see Observer). Defaults to NopObserver.
//
// A nil *Options is valid and means "all defaults".
type Options struct {
	Ctx      context.Context
	Observer Observer
}

// DefaultOptions returns an Options with all defaults materialized.
func DefaultOptions() *Options {
	return &Options{Ctx: context.Background(), Observer: NopObserver{}}
}

// normalized returns a value copy with every field defaulted, so the
// algorithms never branch on nil.
func (o *Options) normalized() Options {
	n := Options{}
	if o != nil {
		n = *o
	}
	if n.Ctx == nil {
		n.Ctx = context.Background()
	}
	if n.Observer == nil {
		n.Observer = NopObserver{}
	}

	return n
}
