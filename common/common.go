package common

import "fmt"

// OrderSide converts a signal direction into the order side that acts on it
func OrderSide(d Direction) (Direction, error) {
	switch d {
	case Long, Buy:
		return Buy, nil
	case Short, Sell:
		return Sell, nil
	default:
		return DoNothing, fmt.Errorf("%w '%v'", ErrInvalidDirection, d)
	}
}
