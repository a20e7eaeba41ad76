// controllers/srv.go
package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"bonrecords/app"
	"bonrecords/logger"
	"bonrecords/records"
	"bonrecords/session"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

type Srv struct {
	Repo *records.Repo
	Sess *session.Store
	Log  *zap.Logger
}

func GetSrv(a *app.App) *Srv {
	return &Srv{
		Repo: a.Records,
		Sess: a.Session,
		Log:  logger.Named(a.Logger, "controllers"),
	}
}

// --- helpers ---

var errBadBody = errors.New("invalid request body")

type waiter interface {
	Wait(ctx context.Context) error
}

// ready blocks until the collection has loaded. A failed or abandoned load
// answers 503.
func (s *Srv) ready(c *gin.Context, w waiter) bool {
	if err := w.Wait(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, app.H{"error": err.Error()})
		return false
	}
	return true
}

func paramID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// fail maps domain errors onto status codes.
func (s *Srv) fail(c *gin.Context, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.Log.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(status, app.H{"error": err.Error()})
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, records.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, records.ErrUnknownPatient):
		return http.StatusUnprocessableEntity
	case errors.Is(err, records.ErrInvalidTransition), errors.Is(err, session.ErrUsernameTaken):
		return http.StatusConflict
	case errors.Is(err, session.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, errBadBody),
		errors.Is(err, records.ErrNoLineItems),
		errors.Is(err, records.ErrInvalidLineItem),
		errors.Is(err, records.ErrInvalidStatus),
		errors.Is(err, records.ErrInvalidPriority),
		errors.Is(err, records.ErrInvalidQuantity),
		errors.Is(err, records.ErrInvalidStockOp),
		errors.Is(err, records.ErrInvalidTime),
		errors.Is(err, records.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// mergeJSON returns an update func that overlays the JSON object in body
// onto the stored record. Absent keys keep their values. The merged record
// must pass the same binding rules as a create.
func mergeJSON[T any](body []byte) func(*T) error {
	return func(rec *T) error {
		if err := json.Unmarshal(body, rec); err != nil {
			return fmt.Errorf("%w: %v", errBadBody, err)
		}
		if err := binding.Validator.ValidateStruct(rec); err != nil {
			return fmt.Errorf("%w: %v", errBadBody, err)
		}
		return nil
	}
}
