package roster

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

// PositionStore owns TeacherPosition records: plain CRUD, no joins.
type PositionStore struct {
	db *gorm.DB
}

func NewPositionStore(db *gorm.DB) *PositionStore { return &PositionStore{db: db} }

// PositionPatch is a partial update; nil fields are left untouched.
type PositionPatch struct {
	Code        *string `json:"code"`
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Description *string `json:"description"`
}

func (s *PositionStore) List() ([]models.TeacherPosition, error) {
	var items []models.TeacherPosition
	if err := s.db.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *PositionStore) Create(p *models.TeacherPosition) error {
	if p.Status == "" {
		p.Status = "active"
	}
	return s.db.Create(p).Error
}

func (s *PositionStore) Update(id uint, patch PositionPatch) (*models.TeacherPosition, error) {
	var p models.TeacherPosition
	if err := s.db.First(&p, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if patch.Code != nil {
		p.Code = *patch.Code
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if err := s.db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *PositionStore) Remove(id uint) error {
	res := s.db.Delete(&models.TeacherPosition{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// byIDs batch-loads positions for the roster's view assembly.
func (s *PositionStore) byIDs(ids []uint) (map[uint]models.TeacherPosition, error) {
	out := make(map[uint]models.TeacherPosition, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var items []models.TeacherPosition
	if err := s.db.Where("id IN ?", ids).Find(&items).Error; err != nil {
		return nil, err
	}
	for _, p := range items {
		out[p.ID] = p
	}
	return out, nil
}
