package alignfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igreport-core/germline"
)

const sampleTSV = `# report_id	reference	regions	annotations	query	start_a	start_b	path
mab-1	@IGHJ5*01	-	-	DSWFDSWGSGTAVTVSS	0	0	17=
mab-2	ACDEFG	FR3:3;CDR3:3	-	ACDEFG	0	0	6=
mab-2	HIKLMN	CDR3:2;FR4:4	Conserved:2	HIKLMN	0	0	6=
`

func TestReadRecords(t *testing.T) {
	recs, err := ReadRecords(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, "mab-1", recs[0].ReportID)
	assert.Equal(t, "@IGHJ5*01", recs[0].Reference)
	assert.Empty(t, recs[0].Regions)
	assert.Equal(t, "CDR3:2;FR4:4", recs[2].Regions)
	assert.Equal(t, "Conserved:2", recs[2].Annotations)
}

func TestReadRecordsErrors(t *testing.T) {
	cases := map[string]string{
		"short row":   "id\t@X\t-\t-\tQ\t0\t0\n",
		"bad start_a": "id\t@X\t-\t-\tQ\tx\t0\t1=\n",
		"empty file":  "# only a comment\n",
	}
	for name, in := range cases {
		_, err := ReadRecords(strings.NewReader(in))
		assert.Error(t, err, name)
	}
}

func TestBuildReportsGrouping(t *testing.T) {
	recs, err := ReadRecords(strings.NewReader(sampleTSV))
	require.NoError(t, err)
	ds, err := germline.NewBuiltinDataset()
	require.NoError(t, err)

	reports, err := BuildReports(recs, ds)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "mab-1", reports[0].ID)
	assert.Len(t, reports[0].Chain, 1)
	assert.Equal(t, "mab-2", reports[1].ID)
	assert.Len(t, reports[1].Chain, 2)
}

func TestBuildReportsRejectsSplitGroups(t *testing.T) {
	ds, err := germline.NewBuiltinDataset()
	require.NoError(t, err)
	recs := []Record{
		{ReportID: "a", Reference: "@IGHJ5*01", Query: "DSWFDSWGSGTAVTVSS", Path: "17="},
		{ReportID: "b", Reference: "@IGHJ5*01", Query: "DSWFDSWGSGTAVTVSS", Path: "17="},
		{ReportID: "a", Reference: "@IGHJ5*01", Query: "DSWFDSWGSGTAVTVSS", Path: "17="},
	}
	_, err = BuildReports(recs, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not consecutive")
}

func TestBuildReportsUnknownAllele(t *testing.T) {
	ds, err := germline.NewBuiltinDataset()
	require.NoError(t, err)
	_, err = BuildReports([]Record{{ReportID: "a", Reference: "@NOPE*00", Query: "Q", Path: "1="}}, ds)
	assert.Error(t, err)
}

func TestBuildReportsInlineNeedsRegions(t *testing.T) {
	ds, err := germline.NewBuiltinDataset()
	require.NoError(t, err)
	_, err = BuildReports([]Record{{ReportID: "a", Reference: "ACDEF", Query: "ACDEF", Path: "5="}}, ds)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "regions")
}

func TestParseSpansAndAnnotations(t *testing.T) {
	spans, err := ParseSpans("FR1:25;CDR1:10")
	require.NoError(t, err)
	assert.Equal(t, []germline.Span{
		{Region: germline.FR1, Length: 25},
		{Region: germline.CDR1, Length: 10},
	}, spans)

	anns, err := ParseAnnotations("Conserved:21;NGlycan:84")
	require.NoError(t, err)
	require.Len(t, anns, 2)
	assert.Equal(t, germline.NGlycan, anns[1].Annotation)
	assert.Equal(t, 84, anns[1].Position)

	for _, bad := range []string{"FR1", "FR1:-2", "FR1:x", ":5"} {
		_, err := ParseSpans(bad)
		assert.Error(t, err, bad)
	}
	_, err = ParseAnnotations("Conserved")
	assert.Error(t, err)
}
