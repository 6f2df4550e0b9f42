package models

import "time"

// Teacher references its User through the typed user_id column. The
// position reference list lives in teacher_position_links so its order
// survives round trips.
type Teacher struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"userId" gorm:"uniqueIndex;not null"` // one teacher per user
	Code          string    `json:"code" gorm:"uniqueIndex;size:20;not null"`
	Status        string    `json:"status" gorm:"size:10;default:ACTIVE"` // ACTIVE | INACTIVE
	Address       string    `json:"address" gorm:"size:255"`
	Qualification string    `json:"qualification" gorm:"size:100"` // highest degree/level
	Major         string    `json:"major" gorm:"size:100"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
