// Package compliance carries the static LL84/33 process knowledge that
// surrounds the validator: the annual submission checklist and the workflow
// documentation. Nothing here touches utility data; it exists so the CLI can
// answer "what do I have to do" as well as "is my data clean".
package compliance

import (
	"fmt"
	"time"
)

// ChecklistItem is one task on the annual compliance checklist
type ChecklistItem struct {
	ID       int    `json:"id"`
	Task     string `json:"task"`
	Category string `json:"category"`
	Required bool   `json:"required"`
	Status   string `json:"status"`
	Notes    string `json:"notes,omitempty"`
}

// Checklist is the LL84/33 submission checklist for one building and year
type Checklist struct {
	Title      string          `json:"title"`
	BuildingID string          `json:"building_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	Deadline   string          `json:"deadline"`
	Items      []ChecklistItem `json:"items"`
}

// NewChecklist builds the standard checklist for a compliance year. The
// building id is an external identifier (BIN) passed through untouched;
// the deadline is the statutory May 1st.
func NewChecklist(buildingID string, year int) *Checklist {
	items := []ChecklistItem{
		{1, "Gather 12 months of utility data", "data_collection", true, "pending", "Jan-Dec of previous year"},
		{2, "Validate utility data for completeness", "validation", true, "pending", "Run 'urbancomply validate'"},
		{3, "Check for negative or irrational values", "validation", true, "pending", "Flag any anomalies"},
		{4, "Verify all months are present", "validation", true, "pending", "No gaps in data"},
		{5, "Log into ENERGY STAR Portfolio Manager", "submission", true, "pending", "Use authorized account"},
		{6, "Enter/update utility data in Portfolio Manager", "submission", true, "pending", "Match validated data exactly"},
		{7, "Generate benchmark report", "submission", true, "pending", "Download for records"},
		{8, "Submit to NYC DOB", "submission", true, "pending", ""},
		{9, "Save confirmation number", "compliance_check", true, "pending", "Critical for audit trail"},
		{10, "Archive all documentation", "reporting", true, "pending", "Keep for 3 years minimum"},
	}
	items[7].Notes = deadlineNote(year)

	return &Checklist{
		Title:      checklistTitle(year),
		BuildingID: buildingID,
		CreatedAt:  time.Now(),
		Deadline:   deadline(year),
		Items:      items,
	}
}

func checklistTitle(year int) string {
	return fmt.Sprintf("LL84/33 Compliance Checklist - %d", year)
}

func deadline(year int) string {
	return fmt.Sprintf("%d-05-01", year)
}

func deadlineNote(year int) string {
	return fmt.Sprintf("Before May 1, %d", year)
}
