// Package errs defines the sentinel errors shared across the iccenc packages.
//
// All errors are plain sentinel values created with errors.New, so callers can
// match them with errors.Is after any amount of fmt.Errorf("%w") wrapping.
package errs

import "errors"

var (
	// ErrInvalidProfileFormat indicates that a curve segment carries a
	// signature that is neither a formula-curve nor a sampled-curve segment.
	// This error aborts the enclosing profile write; bytes already emitted
	// are not rolled back.
	ErrInvalidProfileFormat = errors.New("invalid profile format: unknown curve segment signature")

	// ErrUnknownCurveType indicates a parametric-curve type outside [0,4] or
	// a formula-curve type outside {1,2,3}.
	ErrUnknownCurveType = errors.New("unknown curve type code")

	// ErrInvalidVersion indicates that a profile has no ICC version set.
	ErrInvalidVersion = errors.New("ICC profile version not set")

	// ErrChannelMismatch indicates that the number of response arrays does not
	// match the number of XYZ measurement values in a response curve set.
	ErrChannelMismatch = errors.New("response channel count does not match XYZ value count")

	// ErrTagDataTooLarge indicates tag data whose size cannot be represented
	// in a 32-bit tag table entry.
	ErrTagDataTooLarge = errors.New("tag data exceeds 32-bit size limit")

	// ErrInvalidProfileName indicates an iCCP profile name that violates the
	// PNG restrictions (1-79 printable Latin-1 characters, no leading,
	// trailing or consecutive spaces).
	ErrInvalidProfileName = errors.New("invalid embedded profile name")

	// ErrEmptyProfile indicates an attempt to embed or encode a zero-length
	// profile.
	ErrEmptyProfile = errors.New("empty profile data")

	// ErrProfileTooLarge indicates a profile that exceeds the capacity of
	// its embedding container (255 APP2 segments for JPEG).
	ErrProfileTooLarge = errors.New("profile too large to embed")
)
