package compliance

import "time"

// WorkflowStep is one step of the standard LL84/33 benchmarking workflow
type WorkflowStep struct {
	Step             int      `json:"step"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	RequiredFields   []string `json:"required_fields,omitempty"`
	ResponsibleParty string   `json:"responsible_party"`
	Deadline         string   `json:"deadline,omitempty"`
}

// ValidationRule describes one data-quality rule for documentation purposes
type ValidationRule struct {
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

// CommonError documents a frequently seen submission problem and its fix
type CommonError struct {
	Error    string `json:"error"`
	Cause    string `json:"cause"`
	Solution string `json:"solution"`
}

// Documentation is the full LL84/33 process documentation bundle
type Documentation struct {
	Title            string            `json:"title"`
	GeneratedAt      time.Time         `json:"generated_at"`
	RegulationYear   int               `json:"regulation_year"`
	Overview         map[string]string `json:"overview"`
	Workflow         []WorkflowStep    `json:"workflow"`
	DataRequirements map[string]any    `json:"data_requirements"`
	ValidationRules  []ValidationRule  `json:"validation_rules"`
	CommonErrors     []CommonError     `json:"common_errors"`
}

// Workflow returns the six standard LL84/33 workflow steps
func Workflow() []WorkflowStep {
	return []WorkflowStep{
		{
			Step:             1,
			Name:             "Utility Data Collection",
			Description:      "Gather 12 months of utility data (electricity, gas) for the building",
			RequiredFields:   []string{"Date", "kWh", "Therms", "Demand"},
			ResponsibleParty: "Building owner or energy consultant",
		},
		{
			Step:             2,
			Name:             "Data Validation",
			Description:      "Validate utility data for completeness, accuracy, and format compliance",
			ResponsibleParty: "urbancomply validate",
		},
		{
			Step:             3,
			Name:             "ENERGY STAR Portfolio Manager Entry",
			Description:      "Enter or sync utility data to ENERGY STAR Portfolio Manager",
			ResponsibleParty: "Building owner or authorized agent",
		},
		{
			Step:             4,
			Name:             "Generate Benchmark Report",
			Description:      "Generate the energy benchmark report from Portfolio Manager",
			ResponsibleParty: "System",
		},
		{
			Step:             5,
			Name:             "NYC DOB Submission",
			Description:      "Submit benchmark data to NYC Department of Buildings",
			ResponsibleParty: "Building owner or authorized agent",
			Deadline:         "May 1st annually",
		},
		{
			Step:             6,
			Name:             "Confirmation & Record Keeping",
			Description:      "Save confirmation number and maintain audit trail",
			ResponsibleParty: "System",
		},
	}
}

// Rules returns the documented validation rule inventory
func Rules() []ValidationRule {
	return []ValidationRule{
		{"Date Coverage", "Data must cover 12 consecutive months", "error"},
		{"No Negative Values", "Utility values cannot be negative", "error"},
		{"No Duplicates", "Each month should appear only once", "error"},
		{"Numeric Columns", "kWh, Therms, Demand must be numeric", "error"},
		{"Unit Consistency", "Values should be consistent (watch for unit mismatches)", "warning"},
		{"Reasonable Range", "Values should be within expected ranges for building size", "warning"},
	}
}

// Errors returns the common submission errors and their fixes
func Errors() []CommonError {
	return []CommonError{
		{"Missing Months", "Utility provider didn't provide all 12 months", "Contact utility provider for missing data"},
		{"Unit Mismatch", "Data exported in wrong units (e.g., MWh vs kWh)", "Verify units with utility provider, convert if needed"},
		{"BIN Mismatch", "Building ID in Portfolio Manager doesn't match DOB records", "Verify BIN at NYC DOB BIS website"},
		{"Late Submission", "Submitted after May 1st deadline", "Submit ASAP, may incur late filing penalty"},
		{"Duplicate Entry", "Same building submitted twice", "Contact DOB to resolve duplicate submissions"},
	}
}

// NewDocumentation assembles the full process documentation for a year
func NewDocumentation(year int) *Documentation {
	return &Documentation{
		Title:          "NYC LL84/33 Compliance Process Documentation",
		GeneratedAt:    time.Now(),
		RegulationYear: year,
		Overview: map[string]string{
			"purpose":              "Document the complete workflow for NYC Local Law 84/33 energy benchmarking compliance",
			"applicable_buildings": "Buildings over 25,000 sq ft (LL84) or 10,000 sq ft (LL33)",
			"deadline":             "May 1st annually",
			"penalties":            "Fines for non-compliance, public disclosure",
		},
		Workflow: Workflow(),
		DataRequirements: map[string]any{
			"utility_data": map[string]any{
				"required_columns":   []string{"Date", "kWh", "Therms", "Demand"},
				"date_format":        "YYYY-MM-DD recommended",
				"coverage":           "12 consecutive months",
				"acceptable_formats": []string{"CSV"},
			},
			"building_info": map[string]any{
				"required_fields": []string{
					"BIN (Building Identification Number)",
					"Address",
					"Gross Floor Area",
					"Building Type",
					"Year Built",
				},
			},
			"energy_star": map[string]any{
				"required":     "Portfolio Manager Property ID",
				"account_type": "Full access for submission",
			},
		},
		ValidationRules: Rules(),
		CommonErrors:    Errors(),
	}
}
