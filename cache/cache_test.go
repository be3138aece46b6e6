package cache

import (
	"path/filepath"
	"testing"
)

type snapshot struct {
	Protein string
	Sums    map[string]float64
}

func TestWriteRead(t *testing.T) {
	path := Path(t.TempDir(), "prot")

	in := snapshot{
		Protein: "prot",
		Sums:    map[string]float64{"12": 4.0, "13": -0.5},
	}
	if err := Write(path, &in); err != nil {
		t.Fatalf("write snapshot: %v", err)
	}

	var out snapshot
	if err := Read(path, &out); err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	if out.Protein != in.Protein || len(out.Sums) != len(in.Sums) {
		t.Errorf("expected %+v, got %+v", in, out)
	}
	for k, v := range in.Sums {
		if out.Sums[k] != v {
			t.Errorf("key %s: expected %f, got %f", k, v, out.Sums[k])
		}
	}
}

func TestWriteReplacesSnapshot(t *testing.T) {
	path := Path(t.TempDir(), "prot")

	if err := Write(path, &snapshot{Protein: "old"}); err != nil {
		t.Fatal(err)
	}
	if err := Write(path, &snapshot{Protein: "new"}); err != nil {
		t.Fatal(err)
	}

	var out snapshot
	if err := Read(path, &out); err != nil {
		t.Fatal(err)
	}
	if out.Protein != "new" {
		t.Errorf("expected new snapshot to win, got %s", out.Protein)
	}
}

func TestReadMissingSnapshot(t *testing.T) {
	var out snapshot
	if err := Read(filepath.Join(t.TempDir(), "absent.data"), &out); err == nil {
		t.Error("expected an error for a missing snapshot")
	}
}

func TestPath(t *testing.T) {
	if got, want := Path("out/.bept", "1mso"), filepath.Join("out/.bept", "1mso.data"); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
