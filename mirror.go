// Package nicemirror rewrites a mirrored static site in place so that it can
// be served nicely: links to "index.html" point at their directory instead,
// and links that climb out of the site are redirected into a side-folder that
// external assets can be moved into.
package nicemirror

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/thatguystone/nicemirror/rewrite"
	"github.com/thatguystone/nicemirror/walk"
)

// Mirror rewrites every page and stylesheet under a site root
type Mirror struct {
	Root         string // Publish root of the site
	ExternalPath string // Side-folder for external assets
	Logf         func(string, ...interface{})
}

// Stats describes what a run did
type Stats struct {
	Files    int // Files rewritten
	Changed  int // Files whose contents changed
	Duration time.Duration
}

// Do rewrites the site. Files are processed one at a time, and the first error
// aborts the run; files that were already rewritten stay rewritten.
func (m *Mirror) Do() (stats Stats, err error) {
	m.init()

	start := time.Now()
	defer func() {
		stats.Duration = time.Since(start)
	}()

	// The walk never follows symlinks, so the root itself must be resolved
	// first or a linked root would be walked as a lone symlink
	root, err := filepath.EvalSymlinks(m.Root)
	if err != nil {
		return
	}

	err = checkRoot(root)
	if err != nil {
		if _, ok := err.(NotDirError); ok {
			err = NotDirError{Path: m.Root}
		}

		return
	}

	site := osfs.New(root)
	rw := rewrite.New(rewrite.ExternalPath(m.ExternalPath))

	err = walk.Each(site, func(f walk.File) error {
		m.Logf("Processing %s...", f.Path)

		changed, err := rw.File(site, f.Path, f.Depth)
		if err != nil {
			return err
		}

		stats.Files++
		if changed {
			stats.Changed++
		}

		return nil
	})
	if err != nil {
		return
	}

	m.Logf("")
	m.Logf("Finish.")
	m.Logf("You should move any external folder inside '%s'", m.ExternalPath)
	m.Logf("Example: '/dir/lib' => '/dir/website/%s/lib'", m.ExternalPath)

	return
}

func (m *Mirror) init() {
	if m.ExternalPath == "" {
		m.ExternalPath = rewrite.DefaultExternalPath
	}

	if m.Logf == nil {
		m.Logf = printf
	}
}

func printf(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		return NotDirError{Path: root}
	}

	return nil
}
