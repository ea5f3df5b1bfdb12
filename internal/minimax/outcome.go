package minimax

// Outcome classifies a position from the machine's point of view.
type Outcome int8

const (
	Loss Outcome = iota
	Draw
	Win
)

func (that Outcome) String() string {
	switch that {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	default:
		return "unknown"
	}
}
