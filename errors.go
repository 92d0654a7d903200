package aamva

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned by Parse when the raw payload has zero length
	ErrEmptyInput = errors.New("empty input")
	// ErrInvalidFormat is returned by Parse when the payload does not carry a
	// recognizable AAMVA/ANSI header, or when no identity can be built from
	// its body
	ErrInvalidFormat = errors.New("invalid AAMVA format")
	// ErrNoName is returned by Parse when neither the direct name elements
	// (DCS/DAC) nor the composite full name (DAA) yield a name
	ErrNoName = fmt.Errorf("%w: no name elements present", ErrInvalidFormat)
	// ErrUnresolvedDateOfBirth is returned by Parse when
	// ParseOptions.RequireDateOfBirth is set and the DBB element is missing
	// or resolves to no valid calendar date
	ErrUnresolvedDateOfBirth = errors.New("date of birth missing or unresolvable")
)
