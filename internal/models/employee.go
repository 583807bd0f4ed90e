package models

// Employee is only managed through the admin pages.
type Employee struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"type:varchar(255);not null"`
	LastName  string `json:"last_name" gorm:"type:varchar(255);not null"`
	Salary    int    `json:"salary" gorm:"not null"`
}

func (Employee) TableName() string { return "employees" }
