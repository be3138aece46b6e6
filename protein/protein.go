package protein

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/TuftsBCB/io/pdb"
	"github.com/TuftsBCB/structure"
)

// Protein is an opaque handle to a structure file parsed by the external
// PDB parser. The handle is valid for the lifetime of a surface or SASA
// calculation.
type Protein struct {
	ID   string // structure identifier, file name without the ".pdb" suffix
	Path string // path the structure was loaded from

	Entry *pdb.Entry // parsed entry, owned by the external parser
}

// Load parses a structure file and returns a handle to it. Parsing is
// delegated entirely to the external parser; whatever error it reports is
// surfaced as-is, wrapped with context.
func Load(path string) (*Protein, error) {
	entry, err := pdb.ReadPDB(path)
	if err != nil {
		return nil, fmt.Errorf("parse structure: %v", err)
	}

	return &Protein{
		ID:    ID(path),
		Path:  path,
		Entry: entry,
	}, nil
}

// ID derives a structure identifier from a file path, stripping a trailing
// ".pdb" if present. Files without the suffix keep their name as-is.
func ID(path string) string {
	return strings.TrimSuffix(filepath.Base(path), ".pdb")
}

// TotalAtoms returns the number of ATOM records across all chains, counting
// only the first model of each chain.
func (p *Protein) TotalAtoms() int {
	n := 0
	for _, chain := range p.Entry.Chains {
		if len(chain.Models) == 0 {
			continue
		}
		for _, res := range chain.Models[0].Residues {
			n += len(res.Atoms)
		}
	}
	return n
}

// CaAtoms returns the alpha-carbon coordinates of every chain in the
// structure.
func (p *Protein) CaAtoms() []structure.Coords {
	var cas []structure.Coords
	for _, chain := range p.Entry.Chains {
		if len(chain.Models) == 0 {
			continue
		}
		cas = append(cas, chain.CaAtoms()...)
	}
	return cas
}
