package registration

import "errors"

var (
	// ErrUnresolvable is returned by Registrar.Register when the request passed
	// validation but could not be turned into a User. It carries no detail on
	// which component was missing.
	ErrUnresolvable = errors.New("registration: request cannot be resolved into a user")

	ErrUnknownStrategy  = errors.New("registration: unknown validation strategy")
	ErrUnknownRegion    = errors.New("registration: unknown region name")
	ErrEmptyRegionTable = errors.New("registration: region table is empty")
	ErrEmptyCountry     = errors.New("registration: empty country name")
	ErrParseRegionTable = errors.New("registration: failed to parse region table")
	ErrReadRegionTable  = errors.New("registration: failed to read region table")
	ErrInvalidLogLevel  = errors.New("registration: invalid log level")
)
