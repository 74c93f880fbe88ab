package eval

import (
	"fmt"

	"github.com/herohde/chessgo/pkg/board"
)

// Score is a signed static position evaluation, in the material/positional/mobility units the
// evaluator works in. Positive favors White. Checkmate and stalemate are reported as the
// extreme values Inf/NegInf rather than any reachable material score, so they always
// dominate (or are dominated by) an ordinary evaluation.
type Score float64

const (
	NegInf         = MinScore - 1
	MinScore Score = -1000000
	MaxScore Score = 1000000
	Inf            = MaxScore + 1

	ZeroScore Score = 0
)

func (s Score) String() string {
	return fmt.Sprintf("%.3f", float64(s))
}

// Unit returns the signed unit for the color: 1 for White and -1 for Black.
func Unit(c board.Color) Score {
	if c == board.White {
		return 1
	}
	return -1
}

// Crop crops a Score into [MinScore;MaxScore].
func Crop(s Score) Score {
	switch {
	case s > MaxScore:
		return MaxScore
	case s < MinScore:
		return MinScore
	default:
		return s
	}
}

// Max returns the largest of the given scores.
func Max(a, b Score) Score {
	if a < b {
		return b
	}
	return a
}

// Min returns the smallest of the given scores.
func Min(a, b Score) Score {
	if a < b {
		return a
	}
	return b
}

// round3 rounds to 3 decimal digits, matching the evaluator's per-piece accumulation.
func round3(f float64) Score {
	const p = 1000.0
	if f < 0 {
		return -round3(-f)
	}
	return Score(float64(int(f*p+0.5)) / p)
}
