// Package walk finds the pages and stylesheets of a mirrored site
package walk

import (
	"os"
	"path/filepath"
	"strings"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// Exts are the extensions of files that are rewritten
var Exts = []string{
	".html",
	".css",
}

// A File is a page or stylesheet found in the site
type File struct {
	Path  string // Path relative to the site root, eg. "/sub/page.html"
	Depth int    // Directories between the site root and the file's parent
}

// Each calls fn for every regular file in fs with one of Exts, as each is
// found. Symlinks are neither followed nor yielded. If fn returns an error,
// the walk stops and that error is returned.
func Each(fs billy.Filesystem, fn func(f File) error) error {
	return util.Walk(fs, string(filepath.Separator),
		func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if !info.Mode().IsRegular() || !HasExt(path) {
				return nil
			}

			return fn(File{
				Path:  path,
				Depth: Depth(path),
			})
		})
}

// HasExt checks if the path ends with any of Exts. Matching is case-sensitive.
func HasExt(path string) bool {
	for _, ext := range Exts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}

	return false
}

// Depth gets the number of directories between the site root and the parent
// of the file at path. Paths are taken as relative to the root, with or
// without a leading separator.
func Depth(path string) int {
	sep := string(filepath.Separator)

	dir := filepath.Dir(filepath.Clean(sep + path))
	if dir == sep {
		return 0
	}

	return strings.Count(dir, sep)
}
