package rewrite

import "fmt"

// Operations reported in a FileError
const (
	OpRead    = "read"
	OpDecode  = "decode"
	OpRewrite = "rewrite"
	OpWrite   = "write"
)

// A FileError is returned when a file could not be rewritten
type FileError struct {
	Op   string // What was being done
	Path string // Path of the file, relative to the site root
	Err  error
}

func (err *FileError) Error() string {
	return fmt.Sprintf("failed to %s %q: %v", err.Op, err.Path, err.Err)
}

func (err *FileError) Unwrap() error {
	return err.Err
}
