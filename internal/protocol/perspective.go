package protocol

// Perspective determines if we're acting as the sender or the receiver of a session.
type Perspective int

// the perspectives
const (
	PerspectiveSender   Perspective = 1
	PerspectiveReceiver Perspective = 2
)

// Opposite returns the perspective of the peer
func (p Perspective) Opposite() Perspective {
	return 3 - p
}

func (p Perspective) String() string {
	switch p {
	case PerspectiveSender:
		return "sender"
	case PerspectiveReceiver:
		return "receiver"
	default:
		return "invalid perspective"
	}
}
