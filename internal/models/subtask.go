package models

// Subtask is a checklist item owned by a task. Items form an ordered
// collection via Position and are replaced wholesale whenever a write
// includes the subtasks field.
type Subtask struct {
	ID       uint64 `gorm:"primarykey" json:"-"`
	TaskID   uint64 `gorm:"not null;index" json:"-"`
	Position int    `gorm:"not null" json:"-"`
	Title    string `gorm:"type:varchar(100);not null" json:"title"`
	Complete bool   `gorm:"not null;default:false" json:"complete"`
}
