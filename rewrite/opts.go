package rewrite

// An Option is passed to New() to change default options
type Option interface {
	applyTo(rw *Rewriter)
}

type option func(rw *Rewriter)

func (o option) applyTo(rw *Rewriter) { o(rw) }

// ExternalPath changes the side-folder that links leaving the site root are
// redirected into, from "nice_mirror_external_path"
func ExternalPath(name string) Option {
	return option(func(rw *Rewriter) {
		rw.externalPath = name
	})
}

// DefaultDocument changes the name of the document served for directories,
// from "index.html". Matching is always case-insensitive.
func DefaultDocument(name string) Option {
	return option(func(rw *Rewriter) {
		rw.defaultDoc = name
	})
}
