package messages

// PlayerInput is sent from client to server with the latest movement axes of
// the locally controlled character. Axes are already gated by the client's
// action state; the server gates them again before applying.
type PlayerInput struct {
	Sequence  uint32  // Incrementing ID, echoed back in NetPlayerState
	MoveRight float64 // -1..1
	MoveUp    float64 // -1..1, positive is up
	Timestamp int64   // Client timestamp (Unix ms)
}

// NewPlayerInput creates a PlayerInput with the given sequence.
func NewPlayerInput(seq uint32) PlayerInput {
	return PlayerInput{
		Sequence: seq,
	}
}
