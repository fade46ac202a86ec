package pipeline

import "errors"

// ErrInvalidInterval is returned by the scheduler when the sampling
// interval is not strictly positive.
var ErrInvalidInterval = errors.New("time interval must be greater than 0")
