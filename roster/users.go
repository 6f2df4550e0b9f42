package roster

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

// UserStore owns User records. It knows nothing about teachers or
// positions; the roster composes it for the find-or-create step.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore { return &UserStore{db: db} }

// FindByEmail returns nil, nil when no user carries the email.
func (s *UserStore) FindByEmail(email string) (*models.User, error) {
	var u models.User
	err := s.db.Where("email = ?", email).First(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *UserStore) Create(u *models.User) error {
	if u.Email == "" || !reEmail.MatchString(u.Email) {
		return fieldError("email", "invalid email format")
	}
	return s.db.Create(u).Error
}

// Update merges the given columns in place. Store-level constraints are the
// only validation here.
func (s *UserStore) Update(u *models.User, fields map[string]any) error {
	return s.db.Model(u).Updates(fields).Error
}
