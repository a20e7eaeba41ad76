package models

import "strings"

const (
	StaffActive   = "Active"
	StaffInactive = "Inactive"
	StaffOnLeave  = "On Leave"
)

type StaffMember struct {
	ID         int    `json:"id"`
	Name       string `json:"name" binding:"required"`
	Position   string `json:"position" binding:"required"`
	Department string `json:"department" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	JoinDate   string `json:"joinDate"`
	Status     string `json:"status"`
}

func (s StaffMember) Matches(q string) bool {
	return strings.Contains(strings.ToLower(s.Name), q) ||
		strings.Contains(strings.ToLower(s.Position), q) ||
		strings.Contains(strings.ToLower(s.Department), q)
}

func IsStaffStatus(s string) bool {
	switch s {
	case StaffActive, StaffInactive, StaffOnLeave:
		return true
	}
	return false
}
