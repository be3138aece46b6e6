package surface

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bept/bio/cache"
	"github.com/bept/bio/console"
	"github.com/bept/bio/protein"
	"github.com/bept/bio/sasa"
)

// CacheDirName is the hidden directory under the output directory that holds
// the machine-readable artifacts.
const CacheDirName = ".bept"

// Row is one aggregated residue in the surface report.
type Row struct {
	Resi      string
	ResiSeq   string
	Potential float64
}

// Report holds per-residue potential sums for a structure, in the order the
// residue sequence numbers were first encountered in the input.
type Report struct {
	Protein string
	Rows    []Row
}

// Aggregate streams a BEPT potentials CSV and sums the Potential column per
// residue sequence number. Rows sharing a Resi_Seq keep the Resi name of the
// last row seen for that key.
func Aggregate(proteinID, csvPath string) (*Report, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, &Error{Kind: InputNotFound, Err: err}
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, &Error{Kind: MalformedRow, Err: fmt.Errorf("read header: %v", err)}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range []string{"Resi", "Resi_Seq", "Potential"} {
		if _, ok := cols[name]; !ok {
			return nil, &Error{Kind: MalformedRow, Err: fmt.Errorf("missing column %q", name)}
		}
	}

	report := &Report{Protein: proteinID}
	index := make(map[string]int)

	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &Error{Kind: MalformedRow, Err: err}
		}

		seq := record[cols["Resi_Seq"]]
		potential, err := strconv.ParseFloat(strings.TrimSpace(record[cols["Potential"]]), 64)
		if err != nil {
			return nil, &Error{Kind: MalformedRow, Err: fmt.Errorf("line %d: %v", line, err)}
		}

		i, ok := index[seq]
		if !ok {
			i = len(report.Rows)
			index[seq] = i
			report.Rows = append(report.Rows, Row{ResiSeq: seq})
		}
		report.Rows[i].Potential += potential
		report.Rows[i].Resi = record[cols["Resi"]]
	}

	return report, nil
}

// WriteCSV writes the machine-readable report into the hidden cache
// directory under outDir, creating it if needed. Returns the written path.
func (rep *Report) WriteCSV(outDir string) (string, error) {
	cacheDir := filepath.Join(outDir, CacheDirName)
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", &Error{Kind: WriteFailure, Err: err}
	}

	path := filepath.Join(cacheDir, rep.Protein+"_surface_data.csv")
	f, err := os.Create(path)
	if err != nil {
		return "", &Error{Kind: WriteFailure, Err: err}
	}

	w := csv.NewWriter(f)
	w.Write([]string{"Resi", "Resi_Seq", "Resi_Potential"})
	for _, row := range rep.Rows {
		w.Write([]string{row.Resi, row.ResiSeq, formatPotential(row.Potential)})
	}
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return "", &Error{Kind: WriteFailure, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &Error{Kind: WriteFailure, Err: err}
	}

	return path, nil
}

// WriteTable writes the report as a borderless plain-text table directly
// under outDir. Returns the written path.
func (rep *Report) WriteTable(outDir string) (string, error) {
	path := filepath.Join(outDir, rep.Protein+"_surface_data.txt")
	f, err := os.Create(path)
	if err != nil {
		return "", &Error{Kind: WriteFailure, Err: err}
	}

	w := tabwriter.NewWriter(f, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Resi\tResi_Seq\tResi_Potential")
	for _, row := range rep.Rows {
		fmt.Fprintf(w, "%s\t%s\t%s\n", row.Resi, row.ResiSeq, formatPotential(row.Potential))
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return "", &Error{Kind: WriteFailure, Err: err}
	}
	if err := f.Close(); err != nil {
		return "", &Error{Kind: WriteFailure, Err: err}
	}

	return path, nil
}

// Run aggregates the potentials CSV for an already loaded structure, writes
// the CSV and tabulated artifacts, snapshots the report for later reuse and
// prints the structure's total SASA. An empty outDir means the current
// directory.
//
// It returns the path of the tabulated text file. On any failure the path is
// empty and the error, when it comes from the aggregation or the writers,
// carries an ErrorKind describing what went wrong.
func Run(cons *console.Console, p *protein.Protein, csvPath, outDir string) (string, error) {
	if outDir == "" {
		outDir = "."
	}

	rep, err := Aggregate(p.ID, csvPath)
	if err != nil {
		cons.Errorf("Error in calculating surface residues. Error: %v", err)
		return "", err
	}

	if _, err := rep.WriteCSV(outDir); err != nil {
		cons.Errorf("Error in calculating surface residues. Error: %v", err)
		return "", err
	}

	path, err := rep.WriteTable(outDir)
	if err != nil {
		cons.Errorf("Error in calculating surface residues. Error: %v", err)
		return "", err
	}

	snapshot := cache.Path(filepath.Join(outDir, CacheDirName), p.ID)
	if err := cache.Write(snapshot, rep); err != nil {
		werr := &Error{Kind: WriteFailure, Err: err}
		cons.Errorf("Error in calculating surface residues. Error: %v", werr)
		return "", werr
	}

	cons.Successf("Successfully calculated surface residues for %s", p.ID)

	if err := sasa.Report(cons, p); err != nil {
		cons.Errorf("Error in calculating surface residues. Error: %v", err)
		return "", err
	}

	return path, nil
}

// LoadCached returns the report snapshotted by a previous Run with the same
// output directory and protein.
func LoadCached(outDir, proteinID string) (*Report, error) {
	rep := new(Report)
	err := cache.Read(cache.Path(filepath.Join(outDir, CacheDirName), proteinID), rep)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// formatPotential renders a potential sum keeping a decimal point on whole
// numbers, matching the reports BEPT has always written.
func formatPotential(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
