package controllers

import (
	"errors"
	"net/http"

	"bonrecords/app"
	"bonrecords/models"
	"bonrecords/records"

	"github.com/gin-gonic/gin"
)

type PatientController struct{ *Entity[models.Patient] }

func NewPatientController(s *Srv) *PatientController {
	return &PatientController{&Entity[models.Patient]{
		Srv:    s,
		col:    s.Repo.Patients,
		create: plainCreate(s.Repo.Patients),
		update: s.Repo.UpdatePatient,
	}}
}

// GET /api/patients/:id/record
func (pc *PatientController) Record(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rec, err := pc.Repo.MedicalRecord(c.Request.Context(), id)
	if errors.Is(err, records.ErrUnknownPatient) {
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
		return
	}
	if err != nil {
		pc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type StaffController struct{ *Entity[models.StaffMember] }

func NewStaffController(s *Srv) *StaffController {
	return &StaffController{&Entity[models.StaffMember]{
		Srv:    s,
		col:    s.Repo.Staff,
		create: ignoreCtx(s.Repo.AddStaff),
		update: s.Repo.UpdateStaff,
	}}
}

type DischargeController struct {
	*Entity[models.DischargeRecord]
}

func NewDischargeController(s *Srv) *DischargeController {
	return &DischargeController{&Entity[models.DischargeRecord]{
		Srv:    s,
		col:    s.Repo.Discharges,
		create: plainCreate(s.Repo.Discharges),
		update: s.Repo.Discharges.Update,
	}}
}

// POST /api/discharges/:id/complete
func (dc *DischargeController) Complete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !dc.ready(c, dc.col) {
		return
	}
	d, err := dc.Repo.CompleteDischarge(id)
	if err != nil {
		dc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

type LabTestController struct{ *Entity[models.LabTest] }

func NewLabTestController(s *Srv) *LabTestController {
	return &LabTestController{&Entity[models.LabTest]{
		Srv:    s,
		col:    s.Repo.LabTests,
		create: ignoreCtx(s.Repo.AddLabTest),
		update: s.Repo.UpdateLabTest,
		filter: func(c *gin.Context) []models.LabTest {
			return s.Repo.LabTestsByStatus(c.Query("status"), c.Query("q"))
		},
	}}
}
