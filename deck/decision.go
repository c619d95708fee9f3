package deck

// Direction of a committed swipe
type Direction uint8

const (
	Left Direction = iota
	Right
)

// String returns human-readable direction name
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// sign returns the horizontal travel sign of the direction
func (d Direction) sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// Decision is the outcome of a gesture release
type Decision uint8

const (
	Cancel Decision = iota
	CommitLeft
	CommitRight
)

// String returns human-readable decision name
func (d Decision) String() string {
	switch d {
	case CommitLeft:
		return "commit-left"
	case CommitRight:
		return "commit-right"
	default:
		return "cancel"
	}
}

// Committed reports whether the decision consumes the active card
func (d Decision) Committed() bool {
	return d != Cancel
}

// Direction returns the swipe direction of a committed decision
func (d Decision) Direction() (Direction, bool) {
	switch d {
	case CommitLeft:
		return Left, true
	case CommitRight:
		return Right, true
	}
	return Left, false
}

// Decide maps a release-time horizontal displacement to a decision
// Only dx matters; values exactly at ±threshold cancel
func Decide(dx, threshold float64) Decision {
	if dx > threshold {
		return CommitRight
	}
	if dx < -threshold {
		return CommitLeft
	}
	return Cancel
}
