package controllers

import (
	"context"
	"net/http"

	"bonrecords/app"
	"bonrecords/store"

	"github.com/gin-gonic/gin"
)

// Entity serves list/get/create/update/delete for one collection. The
// per-domain controllers embed it and add their actions.
type Entity[T any] struct {
	*Srv
	col    *store.Collection[T]
	create func(ctx context.Context, rec T) (T, error)
	update func(id int, fn func(*T) error) (T, error)
	// filter overrides the default ?q= search.
	filter func(c *gin.Context) []T
}

// GET /api/<entity>?q=
//
// The list does not wait for the first load; it reports loading instead.
func (e *Entity[T]) List(c *gin.Context) {
	e.col.Activate(c.Request.Context())
	st := e.col.State()
	if st.Err != nil {
		c.JSON(http.StatusServiceUnavailable, app.H{"error": st.Err.Error()})
		return
	}
	var items []T
	if e.filter != nil {
		items = e.filter(c)
	} else {
		items = e.col.Search(c.Query("q"))
	}
	if items == nil {
		items = []T{}
	}
	c.JSON(http.StatusOK, app.H{"items": items, "loading": st.Loading})
}

// GET /api/<entity>/:id
func (e *Entity[T]) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !e.ready(c, e.col) {
		return
	}
	rec, found := e.col.Get(id)
	if !found {
		c.JSON(http.StatusNotFound, app.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// POST /api/<entity>
func (e *Entity[T]) Create(c *gin.Context) {
	if !e.ready(c, e.col) {
		return
	}
	var in T
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	rec, err := e.create(c.Request.Context(), in)
	if err != nil {
		e.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// PUT /api/<entity>/:id merges the JSON body into the stored record.
func (e *Entity[T]) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !e.ready(c, e.col) {
		return
	}
	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, app.H{"error": errBadBody.Error()})
		return
	}
	rec, err := e.update(id, mergeJSON[T](body))
	if err != nil {
		e.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// DELETE /api/<entity>/:id; deleting a missing id is not an error.
func (e *Entity[T]) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok || !e.ready(c, e.col) {
		return
	}
	e.col.Remove(id)
	c.Status(http.StatusNoContent)
}

func plainCreate[T any](col *store.Collection[T]) func(context.Context, T) (T, error) {
	return func(_ context.Context, rec T) (T, error) { return col.Add(rec), nil }
}

func ignoreCtx[T any](fn func(T) (T, error)) func(context.Context, T) (T, error) {
	return func(_ context.Context, rec T) (T, error) { return fn(rec) }
}
