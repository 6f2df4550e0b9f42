package models

// TeacherPositionLink is one entry of a teacher's ordered position list.
// There is no FK constraint on position_id: a deleted position leaves a
// dangling link, which the read side skips.
type TeacherPositionLink struct {
	ID         uint `json:"-" gorm:"primaryKey"`
	TeacherID  uint `json:"teacherId" gorm:"index;not null"`
	PositionID uint `json:"positionId" gorm:"not null"`
	SortOrder  int  `json:"sortOrder" gorm:"not null"`
}
