package color

import "errors"

// Sentinel errors for comparison with errors.Is. All are detected at
// configuration time, before any frame is rendered.
var (
	ErrInvalidColor            = errors.New("invalid color")
	ErrEmptyPalette            = errors.New("empty palette")
	ErrMalformedGradient       = errors.New("malformed gradient")
	ErrUnsupportedGradientKind = errors.New("unsupported gradient kind")
)
