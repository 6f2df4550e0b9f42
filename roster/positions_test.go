package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

func TestPositionCreateDefaultsStatus(t *testing.T) {
	s := NewPositionStore(newTestDB(t))
	p := models.TeacherPosition{Code: "POS1", Name: "Math"}
	require.NoError(t, s.Create(&p))
	assert.Equal(t, "active", p.Status)
	assert.NotZero(t, p.ID)
}

func TestPositionCreateDuplicateCode(t *testing.T) {
	s := NewPositionStore(newTestDB(t))
	require.NoError(t, s.Create(&models.TeacherPosition{Code: "POS1", Name: "Math"}))
	err := s.Create(&models.TeacherPosition{Code: "POS1", Name: "Physics"})
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}

func TestPositionListNewestFirst(t *testing.T) {
	s := NewPositionStore(newTestDB(t))
	require.NoError(t, s.Create(&models.TeacherPosition{Code: "POS1", Name: "Math"}))
	require.NoError(t, s.Create(&models.TeacherPosition{Code: "POS2", Name: "Physics"}))

	items, err := s.List()
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "POS2", items[0].Code)
	assert.Equal(t, "POS1", items[1].Code)
}

func TestPositionUpdate(t *testing.T) {
	s := NewPositionStore(newTestDB(t))
	p := models.TeacherPosition{Code: "POS1", Name: "Math"}
	require.NoError(t, s.Create(&p))

	name := "Applied Math"
	status := "inactive"
	updated, err := s.Update(p.ID, PositionPatch{Name: &name, Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Applied Math", updated.Name)
	assert.Equal(t, "inactive", updated.Status)
	assert.Equal(t, "POS1", updated.Code, "untouched field survives")

	_, err = s.Update(999, PositionPatch{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPositionRemove(t *testing.T) {
	s := NewPositionStore(newTestDB(t))
	p := models.TeacherPosition{Code: "POS1", Name: "Math"}
	require.NoError(t, s.Create(&p))

	require.NoError(t, s.Remove(p.ID))
	assert.ErrorIs(t, s.Remove(p.ID), ErrNotFound)
}
