package location

import (
	goerrors "github.com/goliatone/go-errors"
)

// Error text codes
const (
	TextCodeInvalidConfig   = "INVALID_LOCATION_CONFIG"
	TextCodeMalformedConfig = "MALFORMED_LOCATION_CONFIG"
)

// Error constructors
func newValidationError(err error) *goerrors.Error {
	return goerrors.FromOzzoValidation(err, "invalid location config").
		WithTextCode(TextCodeInvalidConfig)
}

func newMalformedConfigError(err error) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryBadInput, "malformed location config").
		WithTextCode(TextCodeMalformedConfig)
}

func newInternalError(err error, message string) *goerrors.Error {
	return goerrors.Wrap(err, goerrors.CategoryInternal, message)
}
