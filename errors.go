package tether

import "errors"

var (
	// ErrInvalidRule is returned for RuleNone, out-of-range rules and
	// unknown rule names.
	ErrInvalidRule = errors.New("tether: invalid rule")

	// ErrInvalidSpace is returned for an unknown tracking space.
	ErrInvalidSpace = errors.New("tether: invalid space")

	// ErrSurfaceLost is the panic value (wrapped) raised when a running
	// Updater is re-pointed at a surface it cannot start on.
	ErrSurfaceLost = errors.New("tether: surface lost while tracking")
)
