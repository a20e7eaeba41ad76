package controllers

import (
	"net/http"

	"bonrecords/app"
	"bonrecords/models"
	"bonrecords/records"

	"github.com/gin-gonic/gin"
)

// InvoiceController replaces the generic create with billing.
type InvoiceController struct{ *Entity[models.Invoice] }

func NewInvoiceController(s *Srv) *InvoiceController {
	return &InvoiceController{&Entity[models.Invoice]{
		Srv:    s,
		col:    s.Repo.Invoices,
		update: s.Repo.UpdateInvoice,
	}}
}

// POST /api/invoices computes line totals, tax and amount from the items.
func (ic *InvoiceController) Create(c *gin.Context) {
	var in struct {
		PatientID      int               `json:"patientId" binding:"required"`
		DueDate        string            `json:"dueDate"`
		BillingAddress string            `json:"billingAddress"`
		Items          []models.LineItem `json:"items" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	inv, err := ic.Repo.CreateInvoice(c.Request.Context(), records.InvoiceDraft{
		PatientID:      in.PatientID,
		DueDate:        in.DueDate,
		BillingAddress: in.BillingAddress,
		Items:          in.Items,
	})
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, inv)
}

// POST /api/invoices/:id/pay
func (ic *InvoiceController) Pay(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !ic.ready(c, ic.col) {
		return
	}
	inv, err := ic.Repo.Pay(id)
	if err != nil {
		ic.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, inv)
}
