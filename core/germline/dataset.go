package germline

import (
	"fmt"
	"sort"
)

// Dataset is a read-only germline collection. It is constructed once,
// injected into whatever needs it, and never mutated afterwards; there is no
// package-level database state.
type Dataset struct {
	byName map[string]*Allele
	names  []string
}

// NewDataset indexes the alleles by name.
func NewDataset(alleles []*Allele) (*Dataset, error) {
	d := &Dataset{byName: make(map[string]*Allele, len(alleles))}
	for _, a := range alleles {
		if _, dup := d.byName[a.Name]; dup {
			return nil, fmt.Errorf("duplicate allele %s", a.Name)
		}
		d.byName[a.Name] = a
		d.names = append(d.names, a.Name)
	}
	sort.Strings(d.names)
	return d, nil
}

// Find returns the named allele.
func (d *Dataset) Find(name string) (*Allele, error) {
	a, ok := d.byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown allele %q", name)
	}
	return a, nil
}

// Names lists all allele names in sorted order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Len is the number of alleles in the dataset.
func (d *Dataset) Len() int { return len(d.names) }
