package instance

import (
	"strconv"

	"github.com/katalvlaran/metatsp/matrix"
)

// reference10Rows is the classic 10-city comparison matrix. City 6 is a
// far outlier, which makes the instance a useful sanity check for selection
// pressure.
var reference10Rows = [][]float64{
	{0, 29, 20, 21, 16, 31, 100, 12, 4, 31},
	{29, 0, 15, 29, 28, 40, 72, 21, 29, 27},
	{20, 15, 0, 28, 24, 27, 81, 9, 23, 30},
	{21, 29, 28, 0, 12, 25, 91, 17, 21, 16},
	{16, 28, 24, 12, 0, 17, 101, 8, 18, 22},
	{31, 40, 27, 25, 17, 0, 110, 19, 31, 14},
	{100, 72, 81, 91, 101, 110, 0, 90, 85, 95},
	{12, 21, 9, 17, 8, 19, 90, 0, 11, 18},
	{4, 29, 23, 21, 18, 31, 85, 11, 0, 25},
	{31, 27, 30, 16, 22, 14, 95, 18, 25, 0},
}

// Reference10 returns a fresh copy of the built-in 10-city instance.
func Reference10() *Instance {
	m, err := matrix.NewDenseFromRows(reference10Rows)
	if err != nil {
		panic(err) // static literal
	}
	labels := make([]string, len(reference10Rows))
	for i := range labels {
		labels[i] = strconv.Itoa(i)
	}

	return &Instance{Name: "reference-10", Labels: labels, Dist: m}
}
