package controllers

import (
	"net/http"

	"bonrecords/app"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

type credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := ac.Sess.Register(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		ac.fail(c, err)
		return
	}
	ac.Log.Info("user registered", zap.Int("user_id", u.ID), zap.String("username", u.Username))
	c.JSON(http.StatusCreated, app.H{"user": u})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var in credentials
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	u, err := ac.Sess.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.Sess.Logout(c.Request.Context()); err != nil {
		ac.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	u, ok := ac.Sess.Current()
	if !ok {
		c.JSON(http.StatusUnauthorized, app.H{"error": "unauthorized"})
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}
