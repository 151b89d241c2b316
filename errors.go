package heat1d

import "errors"

var (
	// ErrOutOfDomain indicates a material property or solution was evaluated
	// outside the interval it is defined on.
	ErrOutOfDomain = errors.New("heat1d: position outside domain")
	// ErrInvalidParameter indicates an element count or domain length the
	// solver cannot work with.
	ErrInvalidParameter = errors.New("heat1d: invalid parameter")
)
