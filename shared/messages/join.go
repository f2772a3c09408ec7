package messages

// JoinRequest is sent by a client after connecting to request a character.
// Token is generated by the client and replicated back in
// NetPlayerState.Owner so the client can find its own entity in snapshots.
type JoinRequest struct {
	Version    string
	PlayerName string
	Token      string
}
