package records

import (
	"bonrecords/models"
)

// AddPatient registers a patient. lastVisit and status are always stamped.
func (r *Repo) AddPatient(p models.Patient) models.Patient {
	return r.Patients.Add(p)
}

func (r *Repo) UpdatePatient(id int, fn func(*models.Patient) error) (models.Patient, error) {
	return r.Patients.Update(id, func(p *models.Patient) error {
		if err := fn(p); err != nil {
			return err
		}
		if !models.IsPatientStatus(p.Status) {
			return ErrInvalidStatus
		}
		return nil
	})
}

func (r *Repo) AddStaff(s models.StaffMember) (models.StaffMember, error) {
	if s.Status != "" && !models.IsStaffStatus(s.Status) {
		return models.StaffMember{}, ErrInvalidStatus
	}
	return r.Staff.Add(s), nil
}

func (r *Repo) UpdateStaff(id int, fn func(*models.StaffMember) error) (models.StaffMember, error) {
	return r.Staff.Update(id, func(s *models.StaffMember) error {
		if err := fn(s); err != nil {
			return err
		}
		if !models.IsStaffStatus(s.Status) {
			return ErrInvalidStatus
		}
		return nil
	})
}
