package jsonld

type options struct {
	id               string
	contextURL       string
	maxStandardNames int
	engine           GraphEngine
}

type Option func(*options)

// WithID sets the @id of the root node instead of a generated blank node.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}

// WithContext replaces SSNOContextURL as the imported context.
func WithContext(contextURL string) Option {
	return func(o *options) {
		o.contextURL = contextURL
	}
}

// WithMaxStandardNames limits how many standard names of a table are
// embedded. A negative n embeds all of them.
func WithMaxStandardNames(n int) Option {
	return func(o *options) {
		o.maxStandardNames = n
	}
}

func WithGraphEngine(e GraphEngine) Option {
	return func(o *options) {
		o.engine = e
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		contextURL:       SSNOContextURL,
		maxStandardNames: -1,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
