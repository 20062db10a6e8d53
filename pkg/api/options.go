package api

// Options represents configuration options for the document generator
type Options struct {
	// Document metadata
	Creator string
	Author  string
}

// Option is a function that modifies Options
type Option func(*Options)

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		Creator: "site-backend",
	}
}

// WithCreator sets the PDF creator metadata field
func WithCreator(creator string) Option {
	return func(o *Options) {
		o.Creator = creator
	}
}

// WithAuthor sets the PDF author metadata field. When empty, the
// author defaults to the person named in the document data.
func WithAuthor(author string) Option {
	return func(o *Options) {
		o.Author = author
	}
}
