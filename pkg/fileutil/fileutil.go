package fileutil

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderjkslfj/nicebot/pkg/failure"
)

// ReadInput reads all of path and returns its bytes. The literal name "-"
// reads from stdin instead, so callers can pipe a robots.txt body in without
// writing it to disk first.
func ReadInput(path string, stdin io.Reader) ([]byte, failure.ClassifiedError) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, &FileError{Message: err.Error(), Retryable: false, Cause: ErrCausePathError}
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileError{Message: fmt.Sprintf("%v", err), Retryable: false, Cause: ErrCausePathError}
	}
	return data, nil
}
