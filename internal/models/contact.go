package models

// Contact belongs to exactly one owning user and is removed with it. The
// name, email and phone fields are free text; the original address book did
// not validate their format and callers rely on that.
type Contact struct {
	ID       uint64 `gorm:"primarykey" json:"id"`
	UserID   uint64 `gorm:"not null;index" json:"-"`
	Name     string `gorm:"type:varchar(20)" json:"name"`
	Email    string `gorm:"type:varchar(50)" json:"email"`
	Phone    string `gorm:"type:varchar(20)" json:"phone"`
	Initials string `gorm:"type:varchar(5)" json:"initials"`
	Color    string `gorm:"type:varchar(100)" json:"color"`

	// Relations
	User User `gorm:"foreignKey:UserID" json:"-"`
}
