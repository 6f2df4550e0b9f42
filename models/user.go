package models

import "time"

const (
	RoleTeacher = "TEACHER"
	RoleStudent = "STUDENT"
	RoleAdmin   = "ADMIN"
)

// User is the account record a Teacher links to. Email is the natural key:
// creating a teacher for a known email reuses the existing row.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Code      string    `json:"code" gorm:"size:20"`
	FullName  string    `json:"fullName" gorm:"size:120"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	Phone     string    `json:"phone" gorm:"size:20"`
	Address   string    `json:"address" gorm:"size:255"`
	Status    string    `json:"status" gorm:"size:20;default:active"`
	Role      string    `json:"role" gorm:"size:20;default:TEACHER"` // TEACHER | STUDENT | ADMIN
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
