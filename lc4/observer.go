package lc4

// Direction tells whether a step encrypted or decrypted a symbol.
type Direction int

const (
	Encrypting Direction = iota
	Decrypting
)

func (d Direction) String() string {
	if d == Decrypting {
		return "decrypt"
	}
	return "encrypt"
}

// Phase is the part of a session a step belongs to.
type Phase int

const (
	PhaseNonce Phase = iota
	PhaseHeader
	PhaseMessage
	PhaseSignature
)

func (p Phase) String() string {
	switch p {
	case PhaseNonce:
		return "nonce"
	case PhaseHeader:
		return "header"
	case PhaseSignature:
		return "signature"
	default:
		return "message"
	}
}

// Step describes one processed symbol. Before and After are copies of the
// grid taken around the step; Row and Col are the rotated plaintext row and
// ciphertext column.
type Step struct {
	Mode      Mode
	Direction Direction
	Phase     Phase
	Position  int
	Input     byte
	Output    byte
	Row       int
	Col       int
	Marker    Marker
	Before    *Grid
	After     *Grid
}

// Observer receives every step of a state it is attached to. The grids in a
// Step are copies and may be kept.
type Observer func(Step)
