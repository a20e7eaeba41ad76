package models

import (
	"slices"
	"strconv"
	"strings"
)

const (
	PatientActive   = "Active"
	PatientInactive = "Inactive"
)

type EmergencyContact struct {
	Name         string `json:"name" binding:"required"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Patient struct {
	ID               int               `json:"id"`
	Name             string            `json:"name" binding:"required"`
	Age              int               `json:"age"`
	Gender           string            `json:"gender"`
	Phone            string            `json:"phone"`
	LastVisit        string            `json:"lastVisit"`
	Status           string            `json:"status"`
	Email            string            `json:"email,omitempty"`
	Address          string            `json:"address,omitempty"`
	BloodType        string            `json:"bloodType,omitempty"`
	MedicalHistory   []string          `json:"medicalHistory,omitempty"`
	Allergies        []string          `json:"allergies,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergencyContact,omitempty"`
}

func (p Patient) Clone() Patient {
	p.MedicalHistory = slices.Clone(p.MedicalHistory)
	p.Allergies = slices.Clone(p.Allergies)
	if p.EmergencyContact != nil {
		ec := *p.EmergencyContact
		p.EmergencyContact = &ec
	}
	return p
}

// Matches reports whether the lowercased query occurs in the name or the id.
func (p Patient) Matches(q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) || strings.Contains(strconv.Itoa(p.ID), q)
}

func IsPatientStatus(s string) bool {
	return s == PatientActive || s == PatientInactive
}
