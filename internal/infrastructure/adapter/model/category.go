package model

// Category represents the database model for categories.
// The name is unique per user, not globally.
type Category struct {
	ID     uint64 `gorm:"primaryKey;autoIncrement"`
	Name   string `gorm:"not null;size:120;uniqueIndex:idx_user_category_name"`
	UserID uint64 `gorm:"not null;index;uniqueIndex:idx_user_category_name"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}
