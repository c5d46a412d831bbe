package models

type ReportType string

const (
	ReportBug        ReportType = "bug"
	ReportComplaint  ReportType = "complaint"
	ReportSuggestion ReportType = "suggestion"
	ReportAbuse      ReportType = "abuse"
	ReportOther      ReportType = "other"
)

type ReportStatus string

const (
	ReportPending    ReportStatus = "pending"
	ReportInProgress ReportStatus = "in_progress"
	ReportResolved   ReportStatus = "resolved"
	ReportRejected   ReportStatus = "rejected"
)

// Closing reports whether an admin may answer a report with this status.
func (s ReportStatus) Closing() bool {
	return s == ReportResolved || s == ReportRejected
}

type ReportPriority string

const (
	PriorityLow    ReportPriority = "low"
	PriorityMedium ReportPriority = "medium"
	PriorityHigh   ReportPriority = "high"
	PriorityUrgent ReportPriority = "urgent"
)

// Report is a user-submitted issue awaiting triage.
type Report struct {
	ID            string         `json:"id"`
	UserID        string         `json:"userId"`
	UserName      string         `json:"userName"`
	UserEmail     string         `json:"userEmail"`
	Type          ReportType     `json:"reportType"`
	Subject       string         `json:"subject"`
	Description   string         `json:"description"`
	Status        ReportStatus   `json:"status"`
	Priority      ReportPriority `json:"priority"`
	CreatedAt     Timestamp      `json:"createdAt"`
	UpdatedAt     Timestamp      `json:"updatedAt"`
	AdminResponse string         `json:"adminResponse,omitempty"`
	AdminID       string         `json:"adminId,omitempty"`
	AdminName     string         `json:"adminName,omitempty"`
	ResponseDate  Timestamp      `json:"responseDate"`
}

// RespondReportRequest is the body of PUT /reports/:id.
type RespondReportRequest struct {
	Status        ReportStatus `json:"status"`
	AdminResponse string       `json:"adminResponse"`
}
