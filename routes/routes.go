package routes

import (
	"net/http"

	"bonrecords/app"
	"bonrecords/controllers"

	"github.com/gin-gonic/gin"
)

type crud interface {
	List(c *gin.Context)
	Get(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	authCtl := controllers.NewAuthController(s)
	userCtl := controllers.GetUserController(s)
	dashCtl := controllers.NewDashboardController(s)
	patients := controllers.NewPatientController(s)
	staff := controllers.NewStaffController(s)
	inventory := controllers.NewInventoryController(s)
	invoices := controllers.NewInvoiceController(s)
	appointments := controllers.NewAppointmentController(s)
	discharges := controllers.NewDischargeController(s)
	labTests := controllers.NewLabTestController(s)

	authMW := app.AuthRequired(a.Session)
	adminMW := app.AdminOnly()

	r.GET("/healthz", func(c *app.Ctx) { c.JSON(http.StatusOK, app.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(a.Metrics.Handler()))

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.POST("/logout", authCtl.Logout)
		auth.GET("/me", authCtl.Me)
	}

	api := r.Group("/api", authMW)
	api.GET("/dashboard", dashCtl.Stats)

	pg := resource(api, "/patients", patients)
	pg.GET("/:id/record", patients.Record)

	resource(api, "/staff", staff)

	ig := resource(api, "/inventory", inventory)
	ig.POST("/:id/stock", inventory.Restock)

	bg := resource(api, "/invoices", invoices)
	bg.POST("/:id/pay", invoices.Pay)

	ag := resource(api, "/appointments", appointments) // ?date=&q=
	ag.POST("/:id/start", appointments.Start)
	ag.POST("/:id/complete", appointments.Complete)
	ag.POST("/:id/cancel", appointments.Cancel)
	ag.POST("/:id/no-show", appointments.NoShow)

	dg := resource(api, "/discharges", discharges)
	dg.POST("/:id/complete", discharges.Complete)

	resource(api, "/lab-tests", labTests) // ?status=&q=

	users := api.Group("/users", adminMW)
	{
		users.GET("", userCtl.ListUsers) // ?q=
	}
}

func resource(parent *gin.RouterGroup, path string, ctl crud) *gin.RouterGroup {
	g := parent.Group(path)
	g.GET("", ctl.List)
	g.POST("", ctl.Create)
	g.GET("/:id", ctl.Get)
	g.PUT("/:id", ctl.Update)
	g.DELETE("/:id", ctl.Delete)
	return g
}
