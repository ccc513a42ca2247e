package core

// Intent is the input snapshot consumed by the simulation once per frame.
// It is abstracted from physical keys so drivers, tests and the autopilot
// can all produce it.
type Intent struct {
	Left  bool // Move paddle left
	Right bool // Move paddle right
	Quit  bool // Stop the frame loop (never seen by the simulation)
}

// NoIntent is the empty input snapshot.
var NoIntent = Intent{}

// String returns a compact representation for logging.
func (in Intent) String() string {
	switch {
	case in.Quit:
		return "quit"
	case in.Left && in.Right:
		return "left+right"
	case in.Left:
		return "left"
	case in.Right:
		return "right"
	default:
		return "none"
	}
}
