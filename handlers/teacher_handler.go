package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Vuongmtien/final-test-fullstack-BE/database"
	"github.com/Vuongmtien/final-test-fullstack-BE/roster"
)

type TeacherHandler struct {
	roster *roster.Roster
}

func NewTeacherHandler() *TeacherHandler {
	return &TeacherHandler{roster: roster.New(database.DB)}
}

// GET /teachers?page=&limit=
func (h *TeacherHandler) List(c echo.Context) error {
	page := atoiOr(c.QueryParam("page"), 1)
	limit := atoiOr(c.QueryParam("limit"), roster.DefaultPageSize)
	out, err := h.roster.List(page, limit)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /teachers/all — the "no pagination" shortcut.
func (h *TeacherHandler) ListAll(c echo.Context) error {
	out, err := h.roster.List(1, 0)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GET /teachers/:id
func (h *TeacherHandler) Get(c echo.Context) error {
	view, err := h.roster.Get(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

// POST /teachers
func (h *TeacherHandler) Create(c echo.Context) error {
	var p roster.TeacherPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	t, err := h.roster.Create(&p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

// PUT /teachers/:id
func (h *TeacherHandler) Update(c echo.Context) error {
	var p roster.TeacherUpdatePayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	t, err := h.roster.Update(c.Param("id"), &p)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// DELETE /teachers/:id
func (h *TeacherHandler) Delete(c echo.Context) error {
	if err := h.roster.Remove(c.Param("id")); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
