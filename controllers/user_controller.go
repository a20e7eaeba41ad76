package controllers

import (
	"net/http"

	"bonrecords/app"

	"github.com/gin-gonic/gin"
)

type UserController struct{ *Srv }

func GetUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// GET /api/users?q=alice
func (uc *UserController) ListUsers(c *gin.Context) {
	users, err := uc.Sess.Accounts(c.Request.Context(), c.Query("q"))
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{
		"total": len(users),
		"users": users,
	})
}
