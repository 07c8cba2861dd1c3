package pagination

// Options contains limit/offset pagination parameters
type Options struct {
	Limit  int
	Offset int
}

// Normalize applies the default limit when none is given and caps it at maxLimit.
func (o Options) Normalize(defaultLimit, maxLimit int) Options {
	if o.Limit <= 0 {
		o.Limit = defaultLimit
	}
	if maxLimit > 0 && o.Limit > maxLimit {
		o.Limit = maxLimit
	}
	if o.Offset < 0 {
		o.Offset = 0
	}
	return o
}

// Page is one slice of a listing together with the total row count.
type Page[T any] struct {
	Items     []T
	TotalRows int
	Options   Options
}
