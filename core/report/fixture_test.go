package report

import (
	"testing"

	"igreport-core/align"
	"igreport-core/germline"
)

// Heavy-chain query from the domain-alignment fixture, split per segment the
// way the aligner hands it over: the full chain for V, the tail from query
// position 113 for J, and the constant domain for C.
const (
	heavyChain   = "QVTLRESGPVRVKPTLTETLTCAGSGFPLSDTGVRAGSGFSLGDPGVGVSWIRQPPGKALEWLAHIFSDDEKFYNASLKTRLTVSKDTSKGQVVLRLTNMDPVDTATYFCARVGRGYDSESGFHDKAMVWFDSWGKGTQVTVSSASTKGPSVFPLAPSSKSTSGGTAALGCLVKDYFPEPVTVSWNSGALTSGVHTFPAVLQSSGLYSLSSVVTVPSSSLGTQTYICNVNHKPSNTKVDKKVEPKSCDK"
	heavyChainJC = "GRGYDSESGFHDKAMVWFDSWGKGTQVTVSSASTKGPSVFPLAPSSKSTSGGTAALGCLVKDYFPEPVTVSWNSGALTSGVHTFPAVLQSSGLYSLSSVVTVPSSSLGTQTYICNVNHKPSNTKVDKKVEPKSCDK"
	heavyChainC  = "ASTKGPSVFPLAPSSKSTSGGTAALGCLVKDYFPEPVTVSWNSGALTSGVHTFPAVLQSSGLYSLSSVVTVPSSSLGTQTYICNVNHKPSNTKVDKKVEPKSCDK"

	pathV = "4=1X5=1X4=3r4=9I1=1I1=3I5=5X21=1X3=1X1=2X3=1X3=1X6=1X4=2X11=1X3=1X"
	pathJ = "1=1X3I6=1X2=1X5="
	pathC = "105="
)

// domainChain builds the V-J-C fixture chain against the builtin dataset.
func domainChain(t *testing.T) Chain {
	t.Helper()
	ds, err := germline.NewBuiltinDataset()
	if err != nil {
		t.Fatalf("builtin dataset: %v", err)
	}
	seg := func(allele, query string, startA, startB int, path string) Segment {
		ref, err := ds.Find(allele)
		if err != nil {
			t.Fatalf("find %s: %v", allele, err)
		}
		al, err := align.New(ref.Sequence(), align.MustSequence(query), startA, startB, align.MustPath(path))
		if err != nil {
			t.Fatalf("alignment %s: %v", allele, err)
		}
		return Segment{Ref: ref, Alignment: al}
	}
	return Chain{
		seg("IGHV2-26*01", heavyChain, 0, 0, pathV),
		seg("IGHJ5*01", heavyChainJC, 0, 11, pathJ),
		seg("IGHG1*01", heavyChainC, 0, 0, pathC),
	}
}
