package models

import "strings"

const (
	LabPending    = "Pending"
	LabInProgress = "In Progress"
	LabCompleted  = "Completed"
	LabCancelled  = "Cancelled"
)

const (
	PriorityRoutine = "Routine"
	PriorityUrgent  = "Urgent"
	PrioritySTAT    = "STAT"
)

type LabTest struct {
	ID            int    `json:"id"`
	PatientID     int    `json:"patientId" binding:"required"`
	PatientName   string `json:"patientName"`
	TestName      string `json:"testName" binding:"required"`
	OrderedBy     string `json:"orderedBy"`
	OrderedDate   string `json:"orderedDate"`
	Status        string `json:"status"`
	Priority      string `json:"priority"`
	Results       string `json:"results,omitempty"`
	CompletedDate string `json:"completedDate,omitempty"`
}

func (l LabTest) Matches(q string) bool {
	return strings.Contains(strings.ToLower(l.PatientName), q) ||
		strings.Contains(strings.ToLower(l.TestName), q)
}

func IsLabStatus(s string) bool {
	switch s {
	case LabPending, LabInProgress, LabCompleted, LabCancelled:
		return true
	}
	return false
}

func IsLabPriority(p string) bool {
	switch p {
	case PriorityRoutine, PriorityUrgent, PrioritySTAT:
		return true
	}
	return false
}
