package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

func TestPositionCreateAndList(t *testing.T) {
	setupDB(t)
	h := NewPositionHandler()

	rec := doJSON(t, h.Create, http.MethodPost, "/api/positions",
		`{"code":"POS1","name":"Math","description":"teaches math"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.TeacherPosition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "active", created.Status)

	rec = doJSON(t, h.List, http.MethodGet, "/api/positions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out struct {
		Data []models.TeacherPosition `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Data, 1)
	assert.Equal(t, "POS1", out.Data[0].Code)
}

func TestPositionCreateValidation(t *testing.T) {
	setupDB(t)
	h := NewPositionHandler()

	rec := doJSON(t, h.Create, http.MethodPost, "/api/positions", `{"name":"Math"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestPositionUpdateAndDeleteMissing(t *testing.T) {
	setupDB(t)
	h := NewPositionHandler()

	rec := doJSON(t, h.Update, http.MethodPut, "/api/positions/999",
		`{"name":"Renamed"}`, "id", "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, h.Delete, http.MethodDelete, "/api/positions/999", "", "id", "999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPositionDelete(t *testing.T) {
	setupDB(t)
	h := NewPositionHandler()

	rec := doJSON(t, h.Create, http.MethodPost, "/api/positions",
		`{"code":"POS1","name":"Math"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	var created models.TeacherPosition
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, h.Delete, http.MethodDelete, "/api/positions/1", "", "id", "1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
