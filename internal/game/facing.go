package game

import "github.com/termgrid/snake/internal/core"

// Facing is the snake's movement direction. The zero value is Up.
type Facing int

const (
	FacingUp Facing = iota
	FacingDown
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse direction. This is a derivable property of
// the type; neither input sampling nor movement consults it, so the player
// can reverse straight into their own neck.
func (f Facing) Opposite() Facing {
	switch f {
	case FacingUp:
		return FacingDown
	case FacingDown:
		return FacingUp
	case FacingLeft:
		return FacingRight
	default:
		return FacingLeft
	}
}

// IsOpposite reports whether o is the reverse of f.
func (f Facing) IsOpposite(o Facing) bool {
	return f.Opposite() == o
}

// Delta returns the one-cell step for this direction. Grid y grows downward,
// so Up is y-1.
func (f Facing) Delta() (dx, dy int) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

// FacingFor maps a directional input action to a Facing value. The mapping
// is total over the four directional actions; anything else reports false.
func FacingFor(a core.Action) (Facing, bool) {
	switch a {
	case core.ActionUp:
		return FacingUp, true
	case core.ActionDown:
		return FacingDown, true
	case core.ActionLeft:
		return FacingLeft, true
	case core.ActionRight:
		return FacingRight, true
	default:
		return FacingUp, false
	}
}
