package wire

// The handshake is a single round trip before the first batch.
// Its only purpose is measuring the initial RTT.
const (
	// HandshakeRequest is sent by the sender.
	HandshakeRequest = "Network"
	// HandshakeResponse is the receiver's reply.
	HandshakeResponse = "Success"
)
