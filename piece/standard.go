package piece

// Kind names one of the seven standard tetrominoes.
type Kind int

const (
	Stick Kind = iota
	L1
	L2
	S1
	S2
	Square
	Pyramid
)

// NumKinds is the number of standard tetrominoes.
const NumKinds = 7

func (k Kind) String() string {
	switch k {
	case Stick:
		return "stick"
	case L1:
		return "L1"
	case L2:
		return "L2"
	case S1:
		return "S1"
	case S2:
		return "S2"
	case Square:
		return "square"
	case Pyramid:
		return "pyramid"
	default:
		return "unknown"
	}
}

var standardBodies = [NumKinds]string{
	Stick:   "0 0 0 1 0 2 0 3",
	L1:      "0 0 0 1 0 2 1 0",
	L2:      "0 0 1 0 1 1 1 2",
	S1:      "0 0 1 0 1 1 2 1",
	S2:      "0 1 1 1 1 0 2 0",
	Square:  "0 0 0 1 1 0 1 1",
	Pyramid: "0 0 1 0 1 1 2 0",
}

var standard = buildStandard()

func buildStandard() [NumKinds][]*Piece {
	var rings [NumKinds][]*Piece
	for k, body := range standardBodies {
		rings[k] = Ring(MustParse(body))
	}
	return rings
}

// Standard returns the spawn rotation of the given tetromino. Its FastRotation
// ring is prebuilt and shared; pieces are immutable so sharing is safe.
func Standard(k Kind) *Piece {
	return standard[k][0]
}

// Rotations returns every distinct rotation of the given tetromino, starting
// with the spawn rotation.
func Rotations(k Kind) []*Piece {
	rings := standard[k]
	out := make([]*Piece, len(rings))
	copy(out, rings)
	return out
}

// Ring computes the distinct counter-clockwise rotations of p and links them so
// FastRotation cycles through them. The first element is a copy of p.
func Ring(p *Piece) []*Piece {
	first := p.clone()
	ring := []*Piece{first}

	for cur := first.Rotate(); !cur.Equal(first); cur = cur.Rotate() {
		ring = append(ring, cur)
	}

	for i, rot := range ring {
		rot.next = ring[(i+1)%len(ring)]
	}
	return ring
}

func (p *Piece) clone() *Piece {
	c := *p
	c.next = nil
	return &c
}
