package germline

import "igreport-core/align"

// builtinRecord keeps the compiled-in dataset in a compact, reviewable form.
type builtinRecord struct {
	name    string
	species string
	seq     string
	spans   []Span
	anns    []PlacedAnnotation
}

// Compiled-in human heavy-chain alleles. This is the reference material the
// demo CLI path and the regression tests run against; full database loading
// is an external concern and lives outside this module.
var builtinRecords = []builtinRecord{
	{
		name:    "IGHV2-26*01",
		species: "Homo sapiens",
		seq:     "QVTLCESGPVCVKPTETLTLTCTVSGFSLPLYPFGVSWIRQPPGKALEWLAHIFSLDEKNYWISLKERLTFSKDTSKPQVVLCTTNMDPVDTATYNCARF",
		spans: []Span{
			{Region: FR1, Length: 25},
			{Region: CDR1, Length: 10},
			{Region: FR2, Length: 17},
			{Region: CDR2, Length: 7},
			{Region: FR3, Length: 38},
			{Region: CDR3, Length: 3},
		},
		anns: []PlacedAnnotation{
			{Annotation: Conserved, Position: 21},
			{Annotation: Conserved, Position: 37},
			{Annotation: Conserved, Position: 96},
		},
	},
	{
		name:    "IGHJ5*01",
		species: "Homo sapiens",
		seq:     "DSWFDSWGSGTAVTVSS",
		spans: []Span{
			{Region: CDR3, Length: 6},
			{Region: FR4, Length: 11},
		},
		anns: []PlacedAnnotation{
			{Annotation: Conserved, Position: 6},
			{Annotation: Conserved, Position: 7},
			{Annotation: Conserved, Position: 9},
		},
	},
	{
		name:    "IGHG1*01",
		species: "Homo sapiens",
		seq:     "ASTKGPSVFPLAPSSKSTSGGTAALGCLVKDYFPEPVTVSWNSGALTSGVHTFPAVLQSSGLYSLSSVVTVPSSSLGTQTYICNVNHKPSNTKVDKKVEPKSCDK",
		spans: []Span{
			{Region: "CH1", Length: 98},
			{Region: "H", Length: 7},
		},
	},
}

// NewBuiltinDataset constructs the compiled-in dataset. Callers construct it
// once and inject it; successive calls return independent values.
func NewBuiltinDataset() (*Dataset, error) {
	alleles := make([]*Allele, 0, len(builtinRecords))
	for _, r := range builtinRecords {
		seq, err := align.ParseSequence(r.seq)
		if err != nil {
			return nil, err
		}
		a, err := NewAllele(r.name, r.species, seq, r.spans, r.anns)
		if err != nil {
			return nil, err
		}
		alleles = append(alleles, a)
	}
	return NewDataset(alleles)
}
