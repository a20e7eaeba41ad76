package records

import (
	"context"
	"fmt"

	"bonrecords/models"

	"github.com/shopspring/decimal"
)

type Stats struct {
	TotalPatients        int             `json:"totalPatients"`
	ActivePatients       int             `json:"activePatients"`
	TodayAppointments    int             `json:"todayAppointments"`
	MonthlyRevenue       decimal.Decimal `json:"monthlyRevenue"`
	PendingLabResults    int             `json:"pendingLabResults"`
	LowStockItems        int             `json:"lowStockItems"`
	OutOfStockItems      int             `json:"outOfStockItems"`
	StaffByStatus        map[string]int  `json:"staffByStatus"`
	PatientsByDepartment map[string]int  `json:"patientsByDepartment"`
}

// Stats aggregates the dashboard figures once every collection has loaded.
func (r *Repo) Stats(ctx context.Context) (Stats, error) {
	if err := r.WarmUp(ctx); err != nil {
		return Stats{}, err
	}
	now := r.clock()
	today := models.Date(now)
	s := Stats{
		MonthlyRevenue:       decimal.Zero,
		StaffByStatus:        map[string]int{},
		PatientsByDepartment: map[string]int{},
	}

	for _, p := range r.Patients.List() {
		s.TotalPatients++
		if p.Status == models.PatientActive {
			s.ActivePatients++
		}
	}

	seen := map[string]map[int]bool{}
	for _, a := range r.Appointments.List() {
		if a.Date == today {
			s.TodayAppointments++
		}
		if a.Department == "" {
			continue
		}
		if seen[a.Department] == nil {
			seen[a.Department] = map[int]bool{}
		}
		if !seen[a.Department][a.PatientID] {
			seen[a.Department][a.PatientID] = true
			s.PatientsByDepartment[a.Department]++
		}
	}

	for _, inv := range r.Invoices.List() {
		if inv.Status == models.InvoicePaid && models.SameMonth(inv.PaymentDate, now) {
			s.MonthlyRevenue = s.MonthlyRevenue.Add(inv.Amount)
		}
	}

	for _, l := range r.LabTests.List() {
		if l.Status == models.LabPending || l.Status == models.LabInProgress {
			s.PendingLabResults++
		}
	}

	for _, it := range r.Inventory.List() {
		switch it.Status {
		case models.LowStock:
			s.LowStockItems++
		case models.OutOfStock:
			s.OutOfStockItems++
		}
	}

	for _, m := range r.Staff.List() {
		s.StaffByStatus[m.Status]++
	}
	return s, nil
}

type MedicalRecord struct {
	Patient      models.Patient           `json:"patient"`
	Appointments []models.Appointment     `json:"appointments"`
	LabTests     []models.LabTest         `json:"labTests"`
	Invoices     []models.Invoice         `json:"invoices"`
	Discharges   []models.DischargeRecord `json:"discharges"`
}

// MedicalRecord gathers everything held about one patient.
func (r *Repo) MedicalRecord(ctx context.Context, patientID int) (MedicalRecord, error) {
	p, err := r.patient(ctx, patientID)
	if err != nil {
		return MedicalRecord{}, err
	}
	if err := r.WarmUp(ctx); err != nil {
		return MedicalRecord{}, fmt.Errorf("medical record %d: %w", patientID, err)
	}
	rec := MedicalRecord{
		Patient:      p,
		Appointments: ofPatient(r.Appointments.List(), patientID, func(a models.Appointment) int { return a.PatientID }),
		LabTests:     ofPatient(r.LabTests.List(), patientID, func(l models.LabTest) int { return l.PatientID }),
		Invoices:     ofPatient(r.Invoices.List(), patientID, func(inv models.Invoice) int { return inv.PatientID }),
		Discharges:   ofPatient(r.Discharges.List(), patientID, func(d models.DischargeRecord) int { return d.PatientID }),
	}
	SortByTime(rec.Appointments)
	return rec, nil
}

func ofPatient[T any](items []T, patientID int, owner func(T) int) []T {
	out := make([]T, 0)
	for _, it := range items {
		if owner(it) == patientID {
			out = append(out, it)
		}
	}
	return out
}
