package sasa

import (
	"bytes"
	"strings"
	"testing"

	"github.com/TuftsBCB/io/pdb"

	"github.com/bept/bio/console"
	"github.com/bept/bio/protein"
)

const rsaOutput = `REM  FreeSASA 2.1.2
REM  Absolute and relative SASAs for 1tst.pdb
REM RES _ NUM      All-atoms   Total-Side   Main-Chain    Non-polar    All polar
REM                ABS   REL    ABS   REL    ABS   REL    ABS   REL    ABS   REL
RES ALA A  12   105.20  80.1  73.70  89.4  31.50  65.1  81.43  86.0  23.77  65.3
RES GLY A  13    78.05  97.1   0.00   N/A  78.05  97.1  41.54 115.7  36.51  81.9
RES TRP A  14    45.10  17.5  40.10  16.3   5.00  26.1  30.00  15.2  15.10  25.0
END  Absolute sums over single chains surface
CHAIN  1 A       228.35      113.80       114.55       153.0        75.4
END  Absolute sums over all chains
TOTAL          228.35      113.80       114.55       153.0        75.4
`

func TestParseRSA(t *testing.T) {
	sasa, err := parseRSA(rsaOutput)
	if err != nil {
		t.Fatalf("parse RSA: %v", err)
	}

	if sasa.Total != 228.35 {
		t.Errorf("expected total 228.35, got %f", sasa.Total)
	}
	if sasa.Apolar != 153.0 || sasa.Polar != 75.4 {
		t.Errorf("unexpected apolar/polar split: %f / %f", sasa.Apolar, sasa.Polar)
	}

	if len(sasa.PerResidue) != 3 {
		t.Fatalf("expected 3 residues, got %d", len(sasa.PerResidue))
	}

	ala := sasa.PerResidue[0]
	if ala.Name != "ALA" || ala.Chain != "A" || ala.Seq != 12 {
		t.Errorf("unexpected first residue: %+v", ala)
	}
	if ala.All != 105.20 || ala.RelSide != 89.4 || ala.Polar != 23.77 {
		t.Errorf("unexpected areas for ALA 12: %+v", ala)
	}

	// N/A relative columns stay zero.
	gly := sasa.PerResidue[1]
	if gly.RelSide != 0 || gly.Side != 0 {
		t.Errorf("expected zero sidechain values for GLY 13, got %+v", gly)
	}
}

func TestParseRSAShortResLine(t *testing.T) {
	if _, err := parseRSA("RES ALA A  12   105.20  80.1\n"); err == nil {
		t.Error("expected an error for a truncated RES line")
	}
}

func TestBuried(t *testing.T) {
	sasa, err := parseRSA(rsaOutput)
	if err != nil {
		t.Fatalf("parse RSA: %v", err)
	}

	buried := sasa.Buried()
	if len(buried) != 1 {
		t.Fatalf("expected 1 buried residue, got %d", len(buried))
	}
	if buried[0].Name != "TRP" || buried[0].Seq != 14 {
		t.Errorf("expected TRP 14 buried, got %+v", buried[0])
	}
}

func TestReportZeroAtoms(t *testing.T) {
	var buf bytes.Buffer
	cons := console.New(&buf)

	p := &protein.Protein{ID: "1abc", Entry: &pdb.Entry{}}
	if err := Report(cons, p); err != nil {
		t.Fatalf("report: %v", err)
	}

	want := "SASA value for 1abc: 0.00 Å²\n"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected output to contain %q, got %q", want, buf.String())
	}
}
