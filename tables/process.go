package tables

import "fmt"

// WMO Code Table 4.3: Type of Generating Process
//
// This table identifies how a field was produced (analysis, forecast,
// ensemble member, etc.).

var generatingProcessEntries = []*Entry{
	{0, "Analysis", "Analysis", ""},
	{1, "Initialization", "Initialization", ""},
	{2, "Forecast", "Forecast", ""},
	{3, "Bias Corrected Forecast", "Bias corrected forecast", ""},
	{4, "Ensemble Forecast", "Ensemble forecast", ""},
	{5, "Probability Forecast", "Probability forecast", ""},
	{6, "Forecast Error", "Forecast error", ""},
	{7, "Analysis Error", "Analysis error", ""},
	{8, "Observation", "Observation", ""},
	{9, "Climatological", "Climatological", ""},
	{10, "Probability-Weighted Forecast", "Probability-weighted forecast", ""},
	{11, "Bias-Corrected Ensemble Forecast", "Bias-corrected ensemble forecast", ""},
	{192, "Forecast Confidence Indicator", "Forecast confidence indicator", ""},
}

var generatingProcessRanges = []RangeEntry{
	{193, 254, "Local", "Reserved for local use"},
	{255, 255, "Missing", "Missing"},
}

// GeneratingProcessTable is the WMO Code Table 4.3.
var GeneratingProcessTable = NewRangeTable(generatingProcessEntries, generatingProcessRanges, "Unknown generating process")

// GetGeneratingProcessName returns the name for a generating process type code.
func GetGeneratingProcessName(code int) string {
	return GeneratingProcessTable.Name(code)
}

// CenterInfo is one row of the hierarchical originating-centers table: the
// center itself plus its sub-centers and the center-specific generating
// process identifiers it runs. Child lists are small (0-20 entries) and
// scanned linearly after the center row is found.
type CenterInfo struct {
	ID   int
	Name string

	SubCenters          []Entry
	GeneratingProcesses []Entry
}

// centerHierarchy lists the centers whose sub-center and generating-process
// namespaces this library knows. Centers absent here still resolve through
// CenterTable; their children just fall back to the numeric form.
var centerHierarchy = []CenterInfo{
	{
		ID: 7, Name: "NCEP",
		SubCenters: []Entry{
			{1, "NCEP Re-Analysis Project", "", ""},
			{2, "NCEP Ensemble Products", "", ""},
			{3, "NCEP Central Operations", "", ""},
			{4, "Environmental Modeling Center", "", ""},
			{5, "Weather Prediction Center", "", ""},
			{6, "Ocean Prediction Center", "", ""},
			{7, "Climate Prediction Center", "", ""},
			{8, "Aviation Weather Center", "", ""},
			{9, "Storm Prediction Center", "", ""},
			{10, "National Hurricane Center", "", ""},
			{11, "NWS Techniques Development Laboratory", "", ""},
			{12, "NESDIS Office of Research and Applications", "", ""},
			{13, "Federal Aviation Administration", "", ""},
			{14, "NWS Meteorological Development Laboratory", "", ""},
			{15, "North American Regional Reanalysis Project", "", ""},
			{16, "Space Weather Prediction Center", "", ""},
			{17, "ESRL Global Systems Division", "", ""},
		},
		GeneratingProcesses: []Entry{
			{81, "GFS Analysis", "Analysis from GFS (Global Forecast System)", ""},
			{82, "GDAS Analysis", "Analysis from GDAS (Global Data Assimilation System)", ""},
			{83, "NAM Analysis", "Analysis from NAM (North American Mesoscale model)", ""},
			{84, "MESO NAM", "MESO NAM Model", ""},
			{89, "NMM", "Nonhydrostatic Mesoscale Model", ""},
			{96, "GFS", "Global Forecast System Model", ""},
			{105, "HRRR", "High Resolution Rapid Refresh", ""},
			{107, "GEFS", "Global Ensemble Forecast System", ""},
			{111, "NAM", "North American Mesoscale model", ""},
			{115, "DGEX", "Downscaled GFS from NAM Extension", ""},
			{116, "WRF-EM", "WRF-EM model, generic resolution", ""},
			{125, "HIRESW-NMM", "High Resolution Window, NMM core", ""},
			{140, "RAP", "Rapid Refresh", ""},
		},
	},
	{
		ID: 54, Name: "CMC",
		SubCenters: []Entry{
			{1, "Canadian Meteorological Centre - Montreal", "", ""},
		},
		GeneratingProcesses: []Entry{
			{35, "GDPS", "Global Deterministic Prediction System", ""},
			{36, "RDPS", "Regional Deterministic Prediction System", ""},
			{45, "HRDPS", "High Resolution Deterministic Prediction System", ""},
		},
	},
	{
		ID: 98, Name: "ECMWF",
		GeneratingProcesses: []Entry{
			{145, "IFS", "Integrated Forecasting System, atmospheric model", ""},
			{146, "IFS-ENS", "Integrated Forecasting System, ensemble", ""},
		},
	},
}

// FindCenterInfo returns the hierarchical row for a center id, or nil when
// the center has no registered children.
func FindCenterInfo(center int) *CenterInfo {
	for i := range centerHierarchy {
		if centerHierarchy[i].ID == center {
			return &centerHierarchy[i]
		}
	}
	return nil
}

// GetSubCenterName resolves a sub-center id within a center. Sub-center 0
// conventionally means the center itself.
func GetSubCenterName(center, subCenter int) string {
	if subCenter == 0 {
		return GetCenterName(center)
	}
	if ci := FindCenterInfo(center); ci != nil {
		for _, e := range ci.SubCenters {
			if e.Code == subCenter {
				return e.Name
			}
		}
	}
	return GetCenterName(center)
}

// GetCenterGeneratingProcessName resolves a center-specific generating
// process identifier (e.g. NCEP process 96 is the GFS). Falls back to the
// numeric form when the center or process is unknown.
func GetCenterGeneratingProcessName(center, process int) string {
	if ci := FindCenterInfo(center); ci != nil {
		for _, e := range ci.GeneratingProcesses {
			if e.Code == process {
				return e.Name
			}
		}
	}
	return fmt.Sprintf("Process %d", process)
}
