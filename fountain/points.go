package fountain

import (
	"fmt"
	"strconv"
	"strings"
)

// office documents express lengths in assorted units, style math is done in
// points
var unitsToPoints = map[string]float64{
	"pt": 1,
	"pc": 12,
	"in": 72,
	"cm": 28.3465,
	"mm": 2.83465,
}

// ToPoints converts a measurement string like "1.27cm" or "0.5in" to points.
// A value without a recognized unit suffix is taken to be in points already.
func ToPoints(value string) (float64, error) {
	factor := 1.0
	if len(value) > 2 {
		if f, ok := unitsToPoints[value[len(value)-2:]]; ok {
			factor = f
		}
	}
	num, err := strconv.ParseFloat(strings.Trim(value, "cimnpt "), 64)
	if err != nil {
		return 0, fmt.Errorf("bad measurement %q: %w", value, err)
	}
	return num * factor, nil
}
