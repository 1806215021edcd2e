package internal

// VertexRole is the part a vertex plays for a top-to-bottom sweep. It is
// derived from the vertex and its two ring neighbours, and recomputed on every
// partition pass.
type VertexRole int

const (
	// Both neighbours below, convex corner. A chain pair begins here.
	Start VertexRole = iota
	// Both neighbours above, convex corner. A chain pair ends here.
	End
	// Both neighbours below, reflex corner. Needs a diagonal upward.
	Split
	// Both neighbours above, reflex corner. Needs a diagonal downward.
	Merge
	// Previous neighbour above, next below. The vertex is on a left chain and
	// the interior lies to its right.
	RegularLeft
	// Previous neighbour below, next above. The vertex is on a right chain and
	// the interior lies to its left.
	RegularRight
)

var roleNames = [...]string{
	Start:        "start",
	End:          "end",
	Split:        "split",
	Merge:        "merge",
	RegularLeft:  "regular-left",
	RegularRight: "regular-right",
}

func (r VertexRole) String() string {
	if r < 0 || int(r) >= len(roleNames) {
		return "invalid"
	}
	return roleNames[r]
}

func (r VertexRole) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r VertexRole) IsRegular() bool {
	return r == RegularLeft || r == RegularRight
}

// Classify the vertex curr of a loop with interior to the left. Only a
// strictly positive turn counts as convex, so collinear spikes come out as
// split or merge rather than flipping between runs.
func Classify(prev, curr, next Point) VertexRole {
	prevBelow := IsBelow(prev, curr)
	nextBelow := IsBelow(next, curr)
	convex := Turn(prev, curr, next) > 0

	switch {
	case prevBelow && nextBelow:
		if convex {
			return Start
		}
		return Split
	case !prevBelow && !nextBelow:
		if convex {
			return End
		}
		return Merge
	case prevBelow:
		return RegularRight
	default:
		return RegularLeft
	}
}
