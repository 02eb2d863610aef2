package models

// Default lifecycle values for new tasks. Status and priority stay free
// text for compatibility with existing clients; any string is accepted.
const (
	TaskStatusDefault   = "todo"
	TaskPriorityDefault = "low"
)

type Task struct {
	ID          uint64 `gorm:"primarykey" json:"id"`
	Title       string `gorm:"type:varchar(100);not null" json:"title"`
	Description string `gorm:"type:varchar(500)" json:"description"`
	CreatedAt   Date   `gorm:"type:date" json:"created_at"`
	DueDate     Date   `gorm:"type:date" json:"due_date"`
	Status      string `gorm:"type:varchar(20);not null;default:'todo'" json:"status"`
	Priority    string `gorm:"type:varchar(20);not null;default:'low'" json:"priority"`
	AuthorID    uint64 `gorm:"not null;index" json:"author"`
	CategoryID  uint64 `gorm:"not null;index" json:"category"`

	// Relations
	Author      User             `gorm:"foreignKey:AuthorID" json:"-"`
	Category    Category         `gorm:"foreignKey:CategoryID" json:"-"`
	Subtasks    []Subtask        `gorm:"foreignKey:TaskID" json:"subtasks"`
	Assignments []TaskAssignment `gorm:"foreignKey:TaskID" json:"-"`
}

// AssignedUserIDs returns the ids of the users assigned to the task, in
// assignment order.
func (t Task) AssignedUserIDs() []uint64 {
	ids := make([]uint64, 0, len(t.Assignments))
	for _, a := range t.Assignments {
		ids = append(ids, a.UserID)
	}
	return ids
}
