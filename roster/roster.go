package roster

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Vuongmtien/final-test-fullstack-BE/models"
)

const (
	// DefaultPageSize applies when the caller sends no limit. A limit of
	// zero or below means "no pagination, return everything".
	DefaultPageSize = 20

	StatusActive   = "ACTIVE"
	StatusInactive = "INACTIVE"
)

// Roster owns Teacher records and composes the user store, position store
// and code generator into the create/read/update/delete operations plus the
// denormalized list/detail views.
type Roster struct {
	db        *gorm.DB
	users     *UserStore
	positions *PositionStore
}

func New(db *gorm.DB) *Roster {
	return &Roster{
		db:        db,
		users:     NewUserStore(db),
		positions: NewPositionStore(db),
	}
}

// TeacherView is the denormalized projection served to the frontend:
// teacher columns plus the joined user fields and full position objects.
type TeacherView struct {
	ID            uint                     `json:"id"`
	Code          string                   `json:"code"`
	Status        string                   `json:"status"`
	Address       string                   `json:"address"`
	Qualification string                   `json:"qualification"`
	Major         string                   `json:"major"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email"`
	Phone         string                   `json:"phone"`
	Positions     []models.TeacherPosition `json:"positions"`
	PositionNames string                   `json:"positionNames"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// Page is one page of teacher views. Total counts all teachers so the
// client can derive the page count.
type Page struct {
	Data  []TeacherView `json:"data"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

// List returns teachers ordered by created_at DESC, id DESC. The id
// tiebreak keeps pagination stable when timestamps collide.
func (r *Roster) List(page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := r.db.Model(&models.Teacher{}).Count(&total).Error; err != nil {
		return nil, err
	}

	q := r.db.Order("created_at DESC, id DESC")
	if limit > 0 {
		q = q.Offset((page - 1) * limit).Limit(limit)
	}
	var teachers []models.Teacher
	if err := q.Find(&teachers).Error; err != nil {
		return nil, err
	}

	views, err := r.buildViews(teachers)
	if err != nil {
		return nil, err
	}
	return &Page{Data: views, Total: total, Page: page, Limit: limit}, nil
}

// Get rejects a malformed id before touching the store.
func (r *Roster) Get(rawID string) (*TeacherView, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}
	var t models.Teacher
	if err := r.db.First(&t, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	views, err := r.buildViews([]models.Teacher{t})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// Create resolves the payload, finds or creates the linked user, then
// inserts the teacher. The user upsert and the teacher insert share one
// transaction so a failed insert cannot leave an orphaned user behind.
func (r *Roster) Create(p *TeacherPayload) (*models.Teacher, error) {
	in, err := p.normalize()
	if err != nil {
		return nil, err
	}

	var t models.Teacher
	err = r.db.Transaction(func(tx *gorm.DB) error {
		users := NewUserStore(tx)
		u, err := users.FindByEmail(in.Email)
		if err != nil {
			return err
		}
		if u == nil {
			u = &models.User{
				FullName: in.Name,
				Email:    in.Email,
				Phone:    in.Phone,
				Address:  in.Address,
				Status:   "active",
				Role:     models.RoleTeacher,
			}
			if err := users.Create(u); err != nil {
				return err
			}
		} else {
			fields := map[string]any{"full_name": in.Name}
			if in.Phone != "" {
				fields["phone"] = in.Phone
			}
			if err := users.Update(u, fields); err != nil {
				return err
			}
		}

		var n int64
		if err := tx.Model(&models.Teacher{}).Where("user_id = ?", u.ID).Count(&n).Error; err != nil {
			return err
		}
		if n > 0 {
			return ErrConflict
		}

		code := in.Code
		if code == "" {
			if code, err = generateCode(tx); err != nil {
				return err
			}
		}

		t = models.Teacher{
			UserID:        u.ID,
			Code:          code,
			Status:        in.Status,
			Address:       in.Address,
			Qualification: in.Qualification,
			Major:         in.Major,
		}
		if err := tx.Create(&t).Error; err != nil {
			return err
		}
		return replacePositions(tx, t.ID, in.PositionIDs)
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// TeacherUpdatePayload is a partial patch; nil fields are left untouched.
// A present positions list replaces the stored one wholesale.
type TeacherUpdatePayload struct {
	Code          *string `json:"code"`
	Status        *string `json:"status"`
	Address       *string `json:"address"`
	Qualification *string `json:"qualification"`
	Major         *string `json:"major"`
	Positions     *[]any  `json:"positions"`
}

func (r *Roster) Update(rawID string, p *TeacherUpdatePayload) (*models.Teacher, error) {
	id, err := ParseID(rawID)
	if err != nil {
		return nil, err
	}

	var t models.Teacher
	err = r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&t, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Code != nil {
			if code := strings.TrimSpace(*p.Code); code != "" {
				t.Code = code
			}
		}
		if p.Status != nil {
			status := strings.ToUpper(strings.TrimSpace(*p.Status))
			if status != StatusActive && status != StatusInactive {
				return fieldError("status", "status must be ACTIVE or INACTIVE")
			}
			t.Status = status
		}
		if p.Address != nil {
			t.Address = *p.Address
		}
		if p.Qualification != nil {
			t.Qualification = *p.Qualification
		}
		if p.Major != nil {
			t.Major = *p.Major
		}
		if err := tx.Save(&t).Error; err != nil {
			return err
		}
		if p.Positions != nil {
			return replacePositions(tx, t.ID, normalizePositionRefs(*p.Positions))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// Remove hard-deletes a teacher and its position links. The linked user is
// left alone. Missing ids report ErrNotFound; the same policy applies to
// every operate-on-missing-id case in this package.
func (r *Roster) Remove(rawID string) error {
	id, err := ParseID(rawID)
	if err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Teacher{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("teacher_id = ?", id).Delete(&models.TeacherPositionLink{}).Error
	})
}

// replacePositions swaps a teacher's reference list wholesale, keeping the
// incoming order in sort_order.
func replacePositions(tx *gorm.DB, teacherID uint, ids []uint) error {
	if err := tx.Where("teacher_id = ?", teacherID).Delete(&models.TeacherPositionLink{}).Error; err != nil {
		return err
	}
	for i, pid := range ids {
		link := models.TeacherPositionLink{TeacherID: teacherID, PositionID: pid, SortOrder: i}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

// buildViews joins teachers to their users and ordered positions in three
// batch queries, the relational rendering of the original aggregation
// pipeline. Dangling position references are skipped.
func (r *Roster) buildViews(teachers []models.Teacher) ([]TeacherView, error) {
	views := make([]TeacherView, 0, len(teachers))
	if len(teachers) == 0 {
		return views, nil
	}

	teacherIDs := make([]uint, 0, len(teachers))
	userIDs := make([]uint, 0, len(teachers))
	for _, t := range teachers {
		teacherIDs = append(teacherIDs, t.ID)
		userIDs = append(userIDs, t.UserID)
	}

	var users []models.User
	if err := r.db.Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, err
	}
	userByID := make(map[uint]models.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	var links []models.TeacherPositionLink
	if err := r.db.Where("teacher_id IN ?", teacherIDs).
		Order("teacher_id, sort_order").Find(&links).Error; err != nil {
		return nil, err
	}
	linksByTeacher := make(map[uint][]models.TeacherPositionLink)
	positionIDs := make([]uint, 0, len(links))
	for _, l := range links {
		linksByTeacher[l.TeacherID] = append(linksByTeacher[l.TeacherID], l)
		positionIDs = append(positionIDs, l.PositionID)
	}
	posByID, err := r.positions.byIDs(positionIDs)
	if err != nil {
		return nil, err
	}

	for _, t := range teachers {
		v := TeacherView{
			ID:            t.ID,
			Code:          t.Code,
			Status:        t.Status,
			Address:       t.Address,
			Qualification: t.Qualification,
			Major:         t.Major,
			Positions:     make([]models.TeacherPosition, 0),
			CreatedAt:     t.CreatedAt,
			UpdatedAt:     t.UpdatedAt,
		}
		if u, ok := userByID[t.UserID]; ok {
			v.Name = u.FullName
			if v.Name == "" {
				v.Name = emailLocalPart(u.Email)
			}
			v.Email = u.Email
			v.Phone = u.Phone
		}
		for _, l := range linksByTeacher[t.ID] {
			if p, ok := posByID[l.PositionID]; ok {
				v.Positions = append(v.Positions, p)
			}
		}
		v.PositionNames = joinPositionNames(v.Positions)
		views = append(views, v)
	}
	return views, nil
}

// joinPositionNames builds the comma-and-space display string from
// non-empty names, in reference-list order.
func joinPositionNames(positions []models.TeacherPosition) string {
	names := make([]string, 0, len(positions))
	for _, p := range positions {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return strings.Join(names, ", ")
}
