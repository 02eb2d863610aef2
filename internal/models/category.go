package models

// Category is an independent entity referenced by tasks. Names are not
// unique.
type Category struct {
	ID    uint64 `gorm:"primarykey" json:"id"`
	Name  string `gorm:"type:varchar(100)" json:"name"`
	Color string `gorm:"type:varchar(100)" json:"color"`
}
