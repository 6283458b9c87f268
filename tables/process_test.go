package tables

import "testing"

func TestGeneratingProcessTable(t *testing.T) {
	tests := []struct {
		code int
		name string
	}{
		{0, "Analysis"},
		{2, "Forecast"},
		{4, "Ensemble Forecast"},
		{192, "Forecast Confidence Indicator"},
		{255, "Missing"},
	}

	for _, tt := range tests {
		if name := GetGeneratingProcessName(tt.code); name != tt.name {
			t.Errorf("GetGeneratingProcessName(%d) = %q, want %q", tt.code, name, tt.name)
		}
	}
}

func TestSubCenterLookup(t *testing.T) {
	if name := GetSubCenterName(7, 2); name != "NCEP Ensemble Products" {
		t.Errorf("GetSubCenterName(7, 2) = %q", name)
	}

	// Sub-center 0 means the center itself.
	if name := GetSubCenterName(7, 0); name != "NCEP" {
		t.Errorf("GetSubCenterName(7, 0) = %q", name)
	}

	// Unknown sub-center falls back to the center name.
	if name := GetSubCenterName(7, 200); name != "NCEP" {
		t.Errorf("GetSubCenterName(7, 200) = %q", name)
	}
}

func TestCenterGeneratingProcessLookup(t *testing.T) {
	if name := GetCenterGeneratingProcessName(7, 96); name != "GFS" {
		t.Errorf("GetCenterGeneratingProcessName(7, 96) = %q", name)
	}
	if name := GetCenterGeneratingProcessName(7, 105); name != "HRRR" {
		t.Errorf("GetCenterGeneratingProcessName(7, 105) = %q", name)
	}

	// Unknown center or process falls back to the numeric form.
	if name := GetCenterGeneratingProcessName(12345, 96); name != "Process 96" {
		t.Errorf("GetCenterGeneratingProcessName(12345, 96) = %q", name)
	}
}

func TestFindCenterInfoChildListsSmall(t *testing.T) {
	for _, ci := range centerHierarchy {
		if len(ci.SubCenters) > 20 || len(ci.GeneratingProcesses) > 20 {
			t.Errorf("center %d child lists too large: %d sub-centers, %d processes",
				ci.ID, len(ci.SubCenters), len(ci.GeneratingProcesses))
		}
	}
}
