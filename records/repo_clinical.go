package records

import (
	"bonrecords/models"
)

// CompleteDischarge records today as the discharge date. Completed records
// keep their date.
func (r *Repo) CompleteDischarge(id int) (models.DischargeRecord, error) {
	today := r.today()
	return r.Discharges.Update(id, func(d *models.DischargeRecord) error {
		if d.DischargeDate == "" {
			d.DischargeDate = today
		}
		return nil
	})
}

func (r *Repo) AddLabTest(l models.LabTest) (models.LabTest, error) {
	if err := checkLab(l, true); err != nil {
		return models.LabTest{}, err
	}
	return r.LabTests.Add(l), nil
}

func (r *Repo) UpdateLabTest(id int, fn func(*models.LabTest) error) (models.LabTest, error) {
	return r.LabTests.Update(id, func(l *models.LabTest) error {
		if err := fn(l); err != nil {
			return err
		}
		return checkLab(*l, false)
	})
}

// LabTestsByStatus lists lab tests matching query, optionally narrowed to one status.
func (r *Repo) LabTestsByStatus(status, query string) []models.LabTest {
	out := r.LabTests.Search(query)
	if status == "" {
		return out
	}
	filtered := out[:0]
	for _, l := range out {
		if l.Status == status {
			filtered = append(filtered, l)
		}
	}
	return filtered
}

func checkLab(l models.LabTest, allowEmpty bool) error {
	if !(allowEmpty && l.Status == "") && !models.IsLabStatus(l.Status) {
		return ErrInvalidStatus
	}
	if !(allowEmpty && l.Priority == "") && !models.IsLabPriority(l.Priority) {
		return ErrInvalidPriority
	}
	return nil
}
