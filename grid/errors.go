package grid

import "errors"

// ErrEmptyAxis indicates Build collected zero x- or y-coordinates — an
// internal logic error, since every call adds common's edges to both axes.
var ErrEmptyAxis = errors.New("grid: x or y coordinate axis is empty")
