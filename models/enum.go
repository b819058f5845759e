package models

import "strings"

// Side is the direction of an order, using the wire values "B" and "S".
type Side string

const (
	SideBuy  Side = "B"
	SideSell Side = "S"
)

// ParseSide maps the wire representation (case-insensitive "B"/"S") to a Side.
func ParseSide(s string) (Side, bool) {
	switch Side(strings.ToUpper(s)) {
	case SideBuy:
		return SideBuy, true
	case SideSell:
		return SideSell, true
	}
	return "", false
}

func (s Side) Valid() bool {
	return s == SideBuy || s == SideSell
}

// Opposite returns the side an aggressor trades against.
func (s Side) Opposite() Side {
	if s == SideBuy {
		return SideSell
	}
	return SideBuy
}

// Verb is the human-readable form used in trade messages.
func (s Side) Verb() string {
	if s == SideBuy {
		return "Buy"
	}
	return "Sell"
}
