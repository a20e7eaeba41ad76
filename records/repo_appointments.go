package records

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	"bonrecords/models"
)

// Schedule books an appointment for a known patient. The patient name is
// taken from the patient record and the date defaults to today.
func (r *Repo) Schedule(ctx context.Context, a models.Appointment) (models.Appointment, error) {
	p, err := r.patient(ctx, a.PatientID)
	if err != nil {
		return models.Appointment{}, err
	}
	if a.Minutes() < 0 {
		return models.Appointment{}, ErrInvalidTime
	}
	if err := checkDates(a.Date); err != nil {
		return models.Appointment{}, err
	}
	if err := r.Appointments.Wait(ctx); err != nil {
		return models.Appointment{}, err
	}
	a.PatientName = p.Name
	a.StartedAt, a.CompletedAt, a.CancelledAt, a.NoShow = nil, nil, nil, false
	return r.Appointments.Add(a), nil
}

// UpdateAppointment edits booking details. Lifecycle stamps only move
// through Start, Complete, Cancel and MarkNoShow.
func (r *Repo) UpdateAppointment(id int, fn func(*models.Appointment) error) (models.Appointment, error) {
	return r.Appointments.Update(id, func(a *models.Appointment) error {
		started, completed, cancelled, noShow := a.StartedAt, a.CompletedAt, a.CancelledAt, a.NoShow
		if err := fn(a); err != nil {
			return err
		}
		if a.Minutes() < 0 {
			return ErrInvalidTime
		}
		if a.Date == "" || !models.ValidDate(a.Date) {
			return ErrInvalidDate
		}
		a.StartedAt, a.CompletedAt, a.CancelledAt, a.NoShow = started, completed, cancelled, noShow
		return nil
	})
}

func (r *Repo) Start(id int) (models.Appointment, error) {
	return r.transition(id, func(a *models.Appointment, now time.Time) error {
		if a.Status != models.AppointmentScheduled {
			return ErrInvalidTransition
		}
		a.StartedAt = &now
		return nil
	})
}

func (r *Repo) Complete(id int) (models.Appointment, error) {
	return r.transition(id, func(a *models.Appointment, now time.Time) error {
		if a.Status != models.AppointmentScheduled && a.Status != models.AppointmentInProgress {
			return ErrInvalidTransition
		}
		a.CompletedAt = &now
		return nil
	})
}

func (r *Repo) Cancel(id int) (models.Appointment, error) {
	return r.transition(id, func(a *models.Appointment, now time.Time) error {
		if a.Status != models.AppointmentScheduled && a.Status != models.AppointmentInProgress {
			return ErrInvalidTransition
		}
		a.CancelledAt = &now
		return nil
	})
}

func (r *Repo) MarkNoShow(id int) (models.Appointment, error) {
	return r.transition(id, func(a *models.Appointment, _ time.Time) error {
		if a.Status != models.AppointmentScheduled {
			return ErrInvalidTransition
		}
		a.NoShow = true
		return nil
	})
}

func (r *Repo) transition(id int, fn func(*models.Appointment, time.Time) error) (models.Appointment, error) {
	now := r.clock().UTC()
	return r.Appointments.Update(id, func(a *models.Appointment) error { return fn(a, now) })
}

// DayView returns the appointments on date matching query, ordered by slot
// time. An empty date means today. Unparseable slots sort last.
func (r *Repo) DayView(date, query string) []models.Appointment {
	if date == "" {
		date = r.today()
	}
	out := slices.DeleteFunc(r.Appointments.Search(query), func(a models.Appointment) bool {
		return a.Date != date
	})
	SortByTime(out)
	return out
}

// SortByTime orders appointments by date then slot time, keeping ties in
// insertion order.
func SortByTime(as []models.Appointment) {
	slot := func(a models.Appointment) int {
		if m := a.Minutes(); m >= 0 {
			return m
		}
		return math.MaxInt
	}
	slices.SortStableFunc(as, func(a, b models.Appointment) int {
		if c := strings.Compare(a.Date, b.Date); c != 0 {
			return c
		}
		return slot(a) - slot(b)
	})
}
