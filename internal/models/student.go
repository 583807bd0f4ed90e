package models

import "fmt"

// Student represents an enrolled student.
type Student struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" form:"name" gorm:"type:varchar(100);not null" validate:"required,max=100"`
	Age   int    `json:"age" form:"age" gorm:"not null"`
	Email string `json:"email" form:"email" gorm:"type:varchar(254);uniqueIndex;not null" validate:"required,email,max=254"`
}

// TableName keeps the table name stable for the raw SQL tools.
func (Student) TableName() string { return "students" }

func (s Student) String() string {
	return fmt.Sprintf("%s (%s)", s.Name, s.Email)
}
