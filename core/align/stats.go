package align

// Stats summarizes an alignment path for the report header.
type Stats struct {
	Identical int // columns with preserved residue identity
	Similar   int // identical plus isobaric/rotated columns
	Gaps      int // columns present in only one sequence
	Length    int // total report columns
}

// ComputeStats tallies per-column counts over the path.
func ComputeStats(a Alignment) Stats {
	var st Stats
	for _, s := range a.Path {
		cols := s.Columns()
		st.Length += cols
		switch {
		case s.Type.IsIdentity():
			st.Identical += cols
			st.Similar += cols
		case s.Type == Isobaric || s.Type == Rotation:
			st.Similar += cols
		case s.A == 0 || s.B == 0:
			st.Gaps += cols
		}
	}
	return st
}

// Add merges the stats of consecutive chained segments.
func (st Stats) Add(o Stats) Stats {
	return Stats{
		Identical: st.Identical + o.Identical,
		Similar:   st.Similar + o.Similar,
		Gaps:      st.Gaps + o.Gaps,
		Length:    st.Length + o.Length,
	}
}
