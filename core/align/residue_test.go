package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSequence(t *testing.T) {
	tests := map[string]struct {
		in       string
		want     string
		modified []int
		wantErr  bool
	}{
		"plain":           {in: "QVTLR", want: "QVTLR"},
		"lowercase":       {in: "qvtlr", want: "QVTLR"},
		"modified":        {in: "QVC[+57.02]LR", want: "QVCLR", modified: []int{2}},
		"nested brackets": {in: "QC[Formula:[13]C2]A", want: "QCA", modified: []int{1}},
		"n-terminal":      {in: "[+42.01]-PEPTIDE", want: "PEPTIDE", modified: []int{0}},
		"bad char":        {in: "QV1LR", wantErr: true},
		"unbalanced":      {in: "QV[ox", wantErr: true},
		"stray close":     {in: "QV]ox", wantErr: true},
		"empty":           {in: "", wantErr: true},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			seq, err := ParseSequence(tc.in)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, seq.String())
			var mods []int
			for i, r := range seq {
				if r.Modified {
					mods = append(mods, i)
				}
			}
			assert.Equal(t, tc.modified, mods)
		})
	}
}

func TestAlignmentValidation(t *testing.T) {
	ref := MustSequence("ACDEF")
	qry := MustSequence("ACDEFGH")

	_, err := New(ref, qry, 0, 0, MustPath("5="))
	assert.NoError(t, err)

	_, err = New(ref, qry, 1, 0, MustPath("5="))
	assert.Error(t, err, "path runs past reference end")

	_, err = New(ref, qry, 0, 5, MustPath("3="))
	assert.Error(t, err, "path runs past query end")

	_, err = New(ref, qry, -1, 0, MustPath("3="))
	assert.Error(t, err)

	_, err = New(ref, qry, 0, 0, Path{{A: 0, B: 0, Type: Mismatch}})
	assert.Error(t, err, "zero-length step")
}

func TestComputeStats(t *testing.T) {
	ref := MustSequence("ACDEFACDEF")
	qry := MustSequence("ACDEFACDEFACD")
	a, err := New(ref, qry, 0, 0, MustPath("4=1X3I2r3="))
	require.NoError(t, err)

	st := ComputeStats(a)
	assert.Equal(t, 7, st.Identical)
	assert.Equal(t, 9, st.Similar)
	assert.Equal(t, 3, st.Gaps)
	assert.Equal(t, 13, st.Length)
}
