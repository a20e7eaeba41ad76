package models

import "strings"

const (
	DischargePending   = "Pending"
	DischargeCompleted = "Completed"
)

type DischargeRecord struct {
	ID            int    `json:"id"`
	PatientID     int    `json:"patientId" binding:"required"`
	PatientName   string `json:"patientName"`
	AdmissionDate string `json:"admissionDate" binding:"required"`
	DischargeDate string `json:"dischargeDate"`
	Reason        string `json:"reason" binding:"required"`
	Doctor        string `json:"doctor"`
	Status        string `json:"status"`
	Notes         string `json:"notes,omitempty"`
}

// DischargeStatus is Completed once a discharge date is recorded.
func DischargeStatus(d DischargeRecord) string {
	if d.DischargeDate != "" {
		return DischargeCompleted
	}
	return DischargePending
}

func (d DischargeRecord) Matches(q string) bool {
	return strings.Contains(strings.ToLower(d.PatientName), q) ||
		strings.Contains(strings.ToLower(d.Doctor), q) ||
		strings.Contains(strings.ToLower(d.Reason), q)
}
