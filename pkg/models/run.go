package models

import "time"

// Run is one recorded validation run in the local history database.
type Run struct {
	ID            string    `json:"id"`
	InputFile     string    `json:"input_file"`
	Status        string    `json:"status"` // "PASS" or "FAIL"
	TotalErrors   int       `json:"total_errors"`
	TotalWarnings int       `json:"total_warnings"`
	RowsProcessed int       `json:"rows_processed"`
	ReportPath    string    `json:"report_path,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	Published     bool      `json:"published"`
}
