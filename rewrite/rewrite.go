// Package rewrite implements the text substitutions applied to a mirrored
// site's pages and stylesheets
package rewrite

import (
	"bytes"
	"errors"
	"strings"

	"github.com/dlclark/regexp2"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

const (
	// DefaultExternalPath is the side-folder that references above the site
	// root are redirected into
	DefaultExternalPath = "nice_mirror_external_path"

	// DefaultDocumentName is the document a server returns for a directory
	DefaultDocumentName = "index.html"

	// ParentDir is the literal token used to climb a directory
	ParentDir = "../"
)

// A Rewriter rewrites links in a single file
type Rewriter struct {
	externalPath string
	defaultDoc   string
	reDefaultDoc *regexp2.Regexp
}

// New creates a new Rewriter
func New(opts ...Option) *Rewriter {
	rw := &Rewriter{
		externalPath: DefaultExternalPath,
		defaultDoc:   DefaultDocumentName,
	}

	for _, opt := range opts {
		opt.applyTo(rw)
	}

	// Anything may follow the name (quotes, "#hash", "?q"), but it must not be
	// the tail of a longer word, eg. "myindex.html".
	rw.reDefaultDoc = regexp2.MustCompile(
		`(?<!\w)`+regexp2.Escape(rw.defaultDoc),
		regexp2.IgnoreCase)

	return rw
}

// ExternalPath gets the side-folder name links are redirected into
func (rw *Rewriter) ExternalPath() string {
	return rw.externalPath
}

// CollapseIndex replaces every reference to the default document with ".".
//
// An empty replacement would break unquoted attributes (`href=index.html`
// would become `href=`), while "." is always valid and means "this directory".
func (rw *Rewriter) CollapseIndex(s string) (string, error) {
	return rw.reDefaultDoc.Replace(s, ".", -1, -1)
}

// RedirectExternal replaces every run of depth parent-directory tokens with
// depth-1 tokens followed by the external path. With depth <= 0, nothing can
// leave the root, so s is returned unchanged.
func (rw *Rewriter) RedirectExternal(s string, depth int) string {
	if depth <= 0 {
		return s
	}

	return strings.ReplaceAll(s,
		strings.Repeat(ParentDir, depth),
		strings.Repeat(ParentDir, depth-1)+rw.externalPath+"/")
}

// Transform applies all substitutions to the contents of a file at the given
// depth. The default document is always collapsed before external paths are
// redirected.
func (rw *Rewriter) Transform(b []byte, depth int) ([]byte, error) {
	_, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return nil, err
	}

	s, err := rw.CollapseIndex(string(b))
	if err != nil {
		return nil, err
	}

	return []byte(rw.RedirectExternal(s, depth)), nil
}

// File rewrites the file at path in place. The file is always rewritten, even
// if nothing in it changed; changed reports if the contents differ.
func (rw *Rewriter) File(fs billy.Basic, path string, depth int) (changed bool, err error) {
	b, err := util.ReadFile(fs, path)
	if err != nil {
		err = &FileError{Op: OpRead, Path: path, Err: err}
		return
	}

	out, err := rw.Transform(b, depth)
	if err != nil {
		op := OpRewrite
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			op = OpDecode
		}

		err = &FileError{Op: op, Path: path, Err: err}
		return
	}

	// Truncating an existing file keeps its mode; perm only matters if the file
	// vanished since it was read.
	err = util.WriteFile(fs, path, out, 0640)
	if err != nil {
		err = &FileError{Op: OpWrite, Path: path, Err: err}
		return
	}

	changed = !bytes.Equal(b, out)
	return
}
