package deps

import "testing"

func TestCheckBinariesReportsUnconfiguredCommand(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "FFmpeg", Command: "  "}})
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if statuses[0].Available {
		t.Fatal("blank command must not be available")
	}
	if statuses[0].Detail != "command not configured" {
		t.Fatalf("unexpected detail: %q", statuses[0].Detail)
	}
}

func TestCheckBinariesMissingBinary(t *testing.T) {
	statuses := CheckBinaries([]Requirement{{Name: "FFmpeg", Command: "definitely-not-a-real-binary-4321"}})
	if statuses[0].Available {
		t.Fatal("nonexistent binary must not be available")
	}
	if statuses[0].Detail == "" {
		t.Fatal("expected detail for missing binary")
	}
}

func TestFirstMissing(t *testing.T) {
	statuses := []Status{
		{Name: "Optional", Optional: true, Available: false},
		{Name: "Required", Available: false},
	}
	missing := FirstMissing(statuses)
	if missing == nil || missing.Name != "Required" {
		t.Fatalf("expected Required to be reported, got %+v", missing)
	}

	if FirstMissing([]Status{{Name: "OK", Available: true}}) != nil {
		t.Fatal("expected nil when everything is available")
	}
}
