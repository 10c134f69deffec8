package germline

// Region is a named contiguous interval of an antibody or TCR domain
// sequence (framework or complementarity-determining region, constant-domain
// region, hinge, ...).
type Region string

// Common region names as they appear in germline datasets. Datasets may
// introduce further names; nothing below is a closed set.
const (
	FR1  Region = "FR1"
	CDR1 Region = "CDR1"
	FR2  Region = "FR2"
	CDR2 Region = "CDR2"
	FR3  Region = "FR3"
	CDR3 Region = "CDR3"
	FR4  Region = "FR4"
)

// CDR reports whether the region is complementarity determining; CDRs get
// background shading in rendered reports.
func (r Region) CDR() bool {
	return r == CDR1 || r == CDR2 || r == CDR3
}

// Span is one entry of a reference's ordered boundary table: the region and
// the number of reference residues it covers.
type Span struct {
	Region Region
	Length int
}

// RegionAt resolves the 0-indexed reference position against an ordered
// boundary table. The second result reports whether pos is the last position
// of its region.
func RegionAt(spans []Span, pos int) (Region, bool) {
	end := 0
	for _, sp := range spans {
		end += sp.Length
		if pos < end {
			return sp.Region, pos == end-1
		}
	}
	return "", false
}
