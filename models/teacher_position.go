package models

import "time"

type TeacherPosition struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Code        string    `json:"code" gorm:"uniqueIndex;size:20;not null"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	Status      string    `json:"status" gorm:"size:20;default:active"`
	Description string    `json:"description" gorm:"size:255"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
