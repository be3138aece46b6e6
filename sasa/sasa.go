package sasa

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bept/bio/console"
	"github.com/bept/bio/protein"
)

// SASA holds solvent-accessible surface area results for a whole structure,
// in Å².
type SASA struct {
	Total      float64
	Side       float64
	Main       float64
	Apolar     float64
	Polar      float64
	PerResidue []ResidueSASA
}

// ResidueSASA represents results for a single residue, a RES line in the
// freesasa output.
type ResidueSASA struct {
	Name  string
	Chain string
	Seq   int64

	All       float64
	RelAll    float64
	Side      float64
	RelSide   float64
	Main      float64
	RelMain   float64
	Apolar    float64
	RelApolar float64
	Polar     float64
	RelPolar  float64
}

// Calculate runs the external freesasa algorithm on the structure file and
// parses total and per-residue areas from its RSA output. A structure with
// no atoms reports zero area without invoking the binary, since freesasa
// rejects empty input.
func Calculate(p *protein.Protein) (sasa SASA, err error) {
	if p.TotalAtoms() == 0 {
		return
	}

	cmd := exec.Command("freesasa",
		p.Path,
		"--format=rsa")

	out, err := cmd.CombinedOutput()
	if err != nil {
		err = fmt.Errorf("freesasa: %v %s", err, string(out))
		return
	}

	return parseRSA(string(out))
}

// Report calculates the total SASA for an already loaded structure and
// prints it rounded to two decimal places. Any parsing or computation
// failure propagates unwrapped to the caller.
func Report(cons *console.Console, p *protein.Protein) error {
	sasa, err := Calculate(p)
	if err != nil {
		return err
	}

	cons.Printf("SASA value for %s: %.2f Å²\n", p.ID, sasa.Total)
	return nil
}

// Buried returns residues with relative sidechain SASA under 50%, glycines
// excluded.
func (s SASA) Buried() []ResidueSASA {
	var buried []ResidueSASA
	for _, r := range s.PerResidue {
		if r.Name != "GLY" && r.RelSide < 50 {
			buried = append(buried, r)
		}
	}
	return buried
}

func parseRSA(out string) (sasa SASA, err error) {
	for _, l := range strings.Split(out, "\n") {
		switch {
		case strings.HasPrefix(l, "RES"):
			res, perr := parseResLine(l)
			if perr != nil {
				err = fmt.Errorf("RSA line %q: %v", l, perr)
				return
			}
			sasa.PerResidue = append(sasa.PerResidue, res)
		case strings.HasPrefix(l, "TOTAL"):
			f := strings.Fields(l)
			if len(f) < 6 {
				err = fmt.Errorf("RSA TOTAL line %q: too few columns", l)
				return
			}
			sasa.Total, _ = strconv.ParseFloat(f[1], 64)
			sasa.Side, _ = strconv.ParseFloat(f[2], 64)
			sasa.Main, _ = strconv.ParseFloat(f[3], 64)
			sasa.Apolar, _ = strconv.ParseFloat(f[4], 64)
			sasa.Polar, _ = strconv.ParseFloat(f[5], 64)
		}
	}

	return
}

func parseResLine(l string) (res ResidueSASA, err error) {
	if len(l) < 14 {
		err = fmt.Errorf("too short")
		return
	}

	res.Name = strings.TrimSpace(l[4:7])
	res.Chain = string(l[8])
	res.Seq, _ = strconv.ParseInt(strings.TrimSpace(l[9:13]), 10, 64)

	vals := strings.Fields(l[13:])
	if len(vals) != 10 {
		err = fmt.Errorf("expected 10 area columns, got %d", len(vals))
		return
	}

	for i, dst := range []*float64{
		&res.All, &res.RelAll,
		&res.Side, &res.RelSide,
		&res.Main, &res.RelMain,
		&res.Apolar, &res.RelApolar,
		&res.Polar, &res.RelPolar,
	} {
		// Relative columns are N/A for residues without a reference area.
		if vals[i] == "N/A" {
			continue
		}
		if *dst, err = strconv.ParseFloat(vals[i], 64); err != nil {
			return
		}
	}

	return
}
