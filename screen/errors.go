package screen

import "errors"

// ErrInvalidParameter is returned when a requested size or position is
// outside the range an operation accepts. The buffer is left unchanged.
var ErrInvalidParameter = errors.New("screen: invalid parameter")
