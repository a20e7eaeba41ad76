package models

import (
	"strings"
	"time"
)

const (
	AppointmentScheduled  = "Scheduled"
	AppointmentInProgress = "In Progress"
	AppointmentCompleted  = "Completed"
	AppointmentCancelled  = "Cancelled"
	AppointmentNoShow     = "No Show"
)

// ClockLayout is the 12-hour slot format appointments are booked in.
// Parsing also accepts an unpadded hour.
const ClockLayout = "03:04 PM"

const clockParseLayout = "3:04 PM"

type Appointment struct {
	ID          int        `json:"id"`
	PatientID   int        `json:"patientId" binding:"required"`
	PatientName string     `json:"patientName"`
	Date        string     `json:"date"`
	Time        string     `json:"time" binding:"required"`
	Doctor      string     `json:"doctor" binding:"required"`
	Department  string     `json:"department"`
	Type        string     `json:"type"`
	Status      string     `json:"status"`
	Notes       string     `json:"notes,omitempty"`
	StartedAt   *time.Time `json:"startedAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	NoShow      bool       `json:"noShow,omitempty"`
}

// AppointmentStatus derives the status from the lifecycle stamps; terminal
// stamps win over earlier ones.
func AppointmentStatus(a Appointment) string {
	switch {
	case a.CancelledAt != nil:
		return AppointmentCancelled
	case a.CompletedAt != nil:
		return AppointmentCompleted
	case a.NoShow:
		return AppointmentNoShow
	case a.StartedAt != nil:
		return AppointmentInProgress
	default:
		return AppointmentScheduled
	}
}

// Minutes returns minutes since midnight for the slot, or -1 when it does not parse.
func (a Appointment) Minutes() int {
	t, err := time.Parse(clockParseLayout, strings.ToUpper(strings.TrimSpace(a.Time)))
	if err != nil {
		return -1
	}
	return t.Hour()*60 + t.Minute()
}

func (a Appointment) Matches(q string) bool {
	return strings.Contains(strings.ToLower(a.PatientName), q) ||
		strings.Contains(strings.ToLower(a.Doctor), q)
}
