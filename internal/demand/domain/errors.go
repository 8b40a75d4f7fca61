package demand

import "errors"

var (
	// ErrNegativeValue is returned when a load or rating below zero is supplied.
	ErrNegativeValue = errors.New("demand: negative value")
	// ErrInvalidFloorArea is returned when the floor area is zero or below.
	ErrInvalidFloorArea = errors.New("demand: floor area must be greater than zero")
	// ErrNoUnits is returned when aggregation is requested over zero units.
	ErrNoUnits = errors.New("demand: no units")
)
