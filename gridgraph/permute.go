package gridgraph

const (
	permuteExponent = 31
	permuteModulus  = 833
)

// PermuteLabels scatters label values so neighboring regions get visibly
// different colors: each label l becomes (l^31 mod 2^64, as a signed value) mod 833,
// with the result always in [0, 833). Equal labels stay equal; distinct labels
// may collide, so the output is for display only.
func PermuteLabels(labels [][]int) [][]int {
	out := make([][]int, len(labels))
	for r, row := range labels {
		out[r] = make([]int, len(row))
		for c, l := range row {
			out[r][c] = permuteLabel(l)
		}
	}
	return out
}

func permuteLabel(l int) int {
	x, p := int64(l), int64(1)
	for k := 0; k < permuteExponent; k++ {
		p *= x // wraps on overflow
	}
	m := p % permuteModulus
	if m < 0 {
		m += permuteModulus
	}
	return int(m)
}
