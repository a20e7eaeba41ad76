package controllers

import (
	"net/http"

	"bonrecords/models"
	"bonrecords/records"

	"github.com/gin-gonic/gin"
)

type AppointmentController struct{ *Entity[models.Appointment] }

func NewAppointmentController(s *Srv) *AppointmentController {
	return &AppointmentController{&Entity[models.Appointment]{
		Srv:    s,
		col:    s.Repo.Appointments,
		create: s.Repo.Schedule,
		update: s.Repo.UpdateAppointment,
		filter: func(c *gin.Context) []models.Appointment {
			if date, ok := c.GetQuery("date"); ok {
				return s.Repo.DayView(date, c.Query("q"))
			}
			out := s.Repo.Appointments.Search(c.Query("q"))
			records.SortByTime(out)
			return out
		},
	}}
}

func (ac *AppointmentController) Start(c *gin.Context)    { ac.move(c, ac.Repo.Start) }
func (ac *AppointmentController) Complete(c *gin.Context) { ac.move(c, ac.Repo.Complete) }
func (ac *AppointmentController) Cancel(c *gin.Context)   { ac.move(c, ac.Repo.Cancel) }
func (ac *AppointmentController) NoShow(c *gin.Context)   { ac.move(c, ac.Repo.MarkNoShow) }

func (ac *AppointmentController) move(c *gin.Context, op func(int) (models.Appointment, error)) {
	id, ok := paramID(c)
	if !ok || !ac.ready(c, ac.col) {
		return
	}
	a, err := op(id)
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}
