package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"igreport-core/align"
	"igreport-core/germline"
	"igreport-core/report"
)

func sampleResults() []Result {
	return []Result{
		{
			ID:      "mab-1",
			Alleles: []string{"IGHV2-26*01", "IGHJ5*01"},
			Paths:   []string{"4=1X", "17="},
			Regions: report.RegionLengths{
				{Region: germline.FR1, Length: 25},
				{Region: germline.CDR1, Length: 10},
			},
			Annotations: report.AnnotationPositions{
				{Annotation: germline.Conserved, Position: 21},
			},
			Stats:    align.Stats{Identical: 30, Similar: 32, Gaps: 2, Length: 35},
			Rendered: "QVTLC\nQVTLR\n    ⨯\n",
		},
		{
			ID:      "odd,id",
			Alleles: []string{"IGHG1*01"},
			Regions: report.RegionLengths{{Region: "CH1", Length: 98}},
			Stats:   align.Stats{Identical: 98, Similar: 98, Length: 98},
		},
	}
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("text", &buf, sampleResults(), true))
	out := buf.String()

	assert.Contains(t, out, ">mab-1  IGHV2-26*01 > IGHJ5*01\n")
	assert.Contains(t, out, "identity: 30/35 (85.7%)  similar: 32 (91.4%)  gaps: 2\n")
	assert.Contains(t, out, "path: 4=1X > 17=\n")
	assert.Contains(t, out, "QVTLC\nQVTLR\n")
	assert.Contains(t, out, "regions: FR1:25;CDR1:10\n")
	assert.Contains(t, out, "annotations: Conserved:21\n")
	// Reports with no annotations skip the line.
	assert.Equal(t, 1, strings.Count(out, "annotations:"))
}

func TestWriteTextNoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("text", &buf, sampleResults(), false))
	assert.NotContains(t, buf.String(), ">mab-1")
	assert.NotContains(t, buf.String(), "identity:")
}

func TestWriteCSVEscaping(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("csv", &buf, sampleResults(), true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "report_id,alleles,length,identity,similar,gaps,regions,annotations", lines[0])
	assert.Equal(t, "mab-1,IGHV2-26*01>IGHJ5*01,35,30,32,2,FR1:25;CDR1:10,Conserved:21", lines[1])
	// The comma-bearing ID gets quoted.
	assert.True(t, strings.HasPrefix(lines[2], `"odd,id",`), lines[2])
}

func TestCSVFieldQuoteReplacement(t *testing.T) {
	assert.Equal(t, `plain`, csvField(`plain`))
	assert.Equal(t, `"a,b"`, csvField(`a,b`))
	assert.Equal(t, `it's`, csvField(`it"s`))
}

func TestWriteJSONShape(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("json", &buf, sampleResults(), true))

	var got []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "mab-1", got[0]["report_id"])
	assert.Equal(t, float64(35), got[0]["length"])
	regions := got[0]["regions"].([]interface{})
	assert.Len(t, regions, 2)
	_, hasAnn := got[1]["annotations"]
	assert.False(t, hasAnn)
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write("table", &buf, sampleResults(), true))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// Top border, header, separator, two rows, bottom border.
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.Contains(t, lines[1], "report")
	assert.Contains(t, lines[3], "mab-1")
	assert.True(t, strings.HasPrefix(lines[5], "└"))
}

func TestWriteUnknownFormat(t *testing.T) {
	err := Write("yaml", &bytes.Buffer{}, nil, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestFormatsRegistered(t *testing.T) {
	assert.Equal(t, []string{"csv", "json", "table", "text"}, Formats())
}
