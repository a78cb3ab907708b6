package grading

import "fmt"

// ColorBand is the qualitative label used to tint a grade percentage.
type ColorBand string

const (
	BandEmerald ColorBand = "emerald"
	BandBlue    ColorBand = "blue"
	BandAmber   ColorBand = "amber"
	BandOrange  ColorBand = "orange"
	BandRed     ColorBand = "red"
)

// Bands lists every band from best to worst.
var Bands = []ColorBand{BandEmerald, BandBlue, BandAmber, BandOrange, BandRed}

func (b ColorBand) String() string { return string(b) }

func (b ColorBand) Valid() bool {
	switch b {
	case BandEmerald, BandBlue, BandAmber, BandOrange, BandRed:
		return true
	}
	return false
}

// ParseColorBand accepts one of the band names.
func ParseColorBand(s string) (ColorBand, error) {
	b := ColorBand(s)
	if !b.Valid() {
		return "", fmt.Errorf("unknown color band %q", s)
	}
	return b, nil
}

// GradeColor maps a percentage onto a band; the first threshold met wins.
func GradeColor(percentage float64) ColorBand {
	switch {
	case percentage >= 90:
		return BandEmerald
	case percentage >= 80:
		return BandBlue
	case percentage >= 70:
		return BandAmber
	case percentage >= 60:
		return BandOrange
	default:
		return BandRed
	}
}
