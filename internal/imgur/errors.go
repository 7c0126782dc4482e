package imgur

import "errors"

// ErrValidation is returned when a string does not have the shape of an
// imgur album or image link.
var ErrValidation = errors.New("invalid imgur link")

// ErrFormat is returned when the album image data cannot be located in a page.
//
// This typically occurs when:
//   - The album is empty, private or deleted
//   - The page layout changed upstream
var ErrFormat = errors.New("album image data not found in page")
