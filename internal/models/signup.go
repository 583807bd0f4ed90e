package models

// SignupRecord is an account created by one of the signup pages.
// Password is stored exactly as submitted.
type SignupRecord struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" form:"username" gorm:"type:varchar(255);not null" validate:"required,max=255"`
	Email    string `json:"email" form:"email" gorm:"uniqueIndex;not null" validate:"required"`
	Password string `json:"-" form:"password" gorm:"type:varchar(100);not null" validate:"required,max=100"`
}

func (SignupRecord) TableName() string { return "signup_records" }
