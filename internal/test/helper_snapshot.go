package test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/pmezard/go-difflib/difflib"
)

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	DisableMethods:          true,
}

const snapshotDirName = "snapshots"

// UpdateGoldenGlobal toggles, whether golden files should be updated. Also
// settable via the TEST_UPDATE_GOLDEN env var.
var UpdateGoldenGlobal = os.Getenv("TEST_UPDATE_GOLDEN") == "true"

type snapshoter struct {
	update   bool
	label    string
	replacer func(s string) string
	location string
}

// Snapshoter dumps the given data into a golden file next to the test (in a
// snapshots directory) on first run and fails the test on any later diff.
var Snapshoter = snapshoter{
	update:   false,
	label:    "",
	replacer: func(s string) string { return s },
	location: "",
}

// Save creates a formatted dump of the given data and compares it with the
// saved snapshot. Pass -update (or set snapshoter.update) to refresh.
func (s snapshoter) Save(t *testing.T, data ...interface{}) {
	t.Helper()
	s.SaveString(t, spewConfig.Sdump(data...))
}

func (s snapshoter) SaveString(t *testing.T, dump string) {
	t.Helper()

	dump = s.replacer(dump)
	err := os.MkdirAll(s.directory(), os.ModePerm)
	if err != nil {
		t.Fatalf("Could not create snapshots directory: %v", err)
	}

	snapshotFilePath := filepath.Join(s.directory(), t.Name()+s.label+".golden")

	if s.update || UpdateGoldenGlobal {
		//nolint:gosec
		if err := os.WriteFile(snapshotFilePath, []byte(dump), 0644); err != nil {
			t.Fatalf("Failed to update snapshot %q: %v", snapshotFilePath, err)
		}

		t.Logf("Updated snapshot %q", snapshotFilePath)

		return
	}

	expected, err := os.ReadFile(snapshotFilePath)
	if os.IsNotExist(err) {
		//nolint:gosec
		if err := os.WriteFile(snapshotFilePath, []byte(dump), 0644); err != nil {
			t.Fatalf("Failed to write snapshot %q: %v", snapshotFilePath, err)
		}

		t.Logf("Saved new snapshot %q, run the test again to compare against it", snapshotFilePath)

		return
	} else if err != nil {
		t.Fatalf("Failed to read snapshot %q: %v", snapshotFilePath, err)
	}

	if string(expected) != dump {
		diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(string(expected)),
			B:        difflib.SplitLines(dump),
			FromFile: "expected",
			ToFile:   "actual",
			Context:  2,
		})
		if err != nil {
			t.Fatalf("Failed to diff snapshot %q: %v", snapshotFilePath, err)
		}

		t.Errorf("Snapshot %q does not match:\n%s", snapshotFilePath, diff)
	}
}

// SaveU is a shorthand for Snapshoter.Update(true).Save, forcing an update.
func (s snapshoter) SaveU(t *testing.T, data ...interface{}) {
	t.Helper()
	s.Update(true).Save(t, data...)
}

// Update returns a derived snapshoter with the update flag set.
func (s snapshoter) Update(update bool) snapshoter {
	s.update = update
	return s
}

// Label returns a derived snapshoter whose golden file name carries the label,
// to allow multiple snapshots per test.
func (s snapshoter) Label(label string) snapshoter {
	s.label = label
	return s
}

// Redact returns a derived snapshoter that pipes the dump through the given
// replacer before saving or comparing, for volatile values like timestamps.
func (s snapshoter) Redact(replacer func(s string) string) snapshoter {
	s.replacer = replacer
	return s
}

// Location returns a derived snapshoter writing its golden files below the
// given directory instead of next to the test.
func (s snapshoter) Location(location string) snapshoter {
	s.location = location
	return s
}

func (s snapshoter) directory() string {
	if s.location != "" {
		return s.location
	}

	return filepath.Join(".", "testdata", snapshotDirName)
}
