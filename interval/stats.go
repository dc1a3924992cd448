package interval

// Stats describes the shape of a [Vec].
type Stats struct {
	// Length is the number of values in the sequence.
	Length int

	// Nodes is the number of runs stored.
	Nodes int

	// Height is the height of the run tree, 0 when empty.
	Height int
}

// Ratio returns the average number of values per stored run, or 0 for an
// empty Vec.
func (s Stats) Ratio() float64 {
	if s.Nodes == 0 {
		return 0
	}

	return float64(s.Length) / float64(s.Nodes)
}

// Stats walks the tree and reports its shape.
func (v *Vec[T]) Stats() Stats {
	stats := Stats{
		Length: v.length,
		Height: height(v.root),
	}

	v.root.walk(0, func(T, int, int) bool {
		stats.Nodes++

		return true
	})

	return stats
}
