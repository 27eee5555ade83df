package texgrow

import "errors"

var (
	// ErrInvalidParams is wrapped by every parameter validation failure.
	ErrInvalidParams = errors.New("invalid synthesis parameters")
	// ErrConfig is wrapped by config read/parse failures.
	ErrConfig = errors.New("config error")
	// ErrImageWrite is wrapped by every image encoding or file write failure.
	ErrImageWrite = errors.New("image write failed")
)
