package handlers

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/Vuongmtien/final-test-fullstack-BE/database"
	"github.com/Vuongmtien/final-test-fullstack-BE/models"
	"github.com/Vuongmtien/final-test-fullstack-BE/roster"
)

var posReCode = regexp.MustCompile(`^[A-Za-z0-9_-]{1,20}$`)

type PositionHandler struct {
	store *roster.PositionStore
}

func NewPositionHandler() *PositionHandler {
	return &PositionHandler{store: roster.NewPositionStore(database.DB)}
}

type positionPayload struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

func (p *positionPayload) norm() {
	p.Code = strings.TrimSpace(p.Code)
	p.Name = strings.Join(strings.Fields(p.Name), " ")
	p.Status = strings.TrimSpace(p.Status)
	p.Description = strings.TrimSpace(p.Description)
}

func validatePosition(p *positionPayload) map[string]string {
	errs := map[string]string{}
	if p.Code == "" || !posReCode.MatchString(p.Code) {
		errs["code"] = "code must be A-Z/a-z/0-9/_/- up to 20 chars"
	}
	if p.Name == "" || len(p.Name) > 100 {
		errs["name"] = "name is required (max 100 chars)"
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// GET /positions
func (h *PositionHandler) List(c echo.Context) error {
	items, err := h.store.List()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

// POST /positions
func (h *PositionHandler) Create(c echo.Context) error {
	var p positionPayload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	p.norm()
	if errs := validatePosition(&p); errs != nil {
		return c.JSON(http.StatusBadRequest, map[string]any{"error": "VALIDATION_ERROR", "fields": errs})
	}
	pos := models.TeacherPosition{
		Code:        p.Code,
		Name:        p.Name,
		Status:      p.Status,
		Description: p.Description,
	}
	if err := h.store.Create(&pos); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, pos)
}

// PUT /positions/:id
func (h *PositionHandler) Update(c echo.Context) error {
	id, err := roster.ParseID(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	var patch roster.PositionPatch
	if err := c.Bind(&patch); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "INVALID_PAYLOAD"})
	}
	pos, err := h.store.Update(id, patch)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, pos)
}

// DELETE /positions/:id
func (h *PositionHandler) Delete(c echo.Context) error {
	id, err := roster.ParseID(c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	if err := h.store.Remove(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]bool{"ok": true})
}
