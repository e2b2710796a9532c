package nicemirror

import "fmt"

// A NotDirError is returned when the site root is not a directory
type NotDirError struct {
	Path string
}

func (err NotDirError) Error() string {
	return fmt.Sprintf("site root %q is not a directory", err.Path)
}
