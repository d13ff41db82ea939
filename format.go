package vpath

import (
	"math"
	"strconv"
	"strings"
)

const defaultPrecision = 3

// writeCommand appends the SVG form of c: the verb letter followed by every
// point except the start point. Closes are written as a bare "Z".
func writeCommand(sb *strings.Builder, c Command, precision int) {
	sb.WriteString(c.verb.String())
	if c.verb == Close {
		return
	}
	for _, p := range c.points()[1:] {
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(p.X, precision))
		sb.WriteByte(' ')
		sb.WriteString(FormatNumber(p.Y, precision))
	}
}

// FormatNumber rounds v to precision fractional digits and drops trailing
// zeros. Negative zero prints as "0".
func FormatNumber(v float64, precision int) string {
	if precision >= 0 {
		scale := math.Pow(10, float64(precision))
		v = math.Round(v*scale) / scale
	}
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
