package models

// BlogPost is a short post with an optional thumbnail image.
type BlogPost struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Title string `json:"title" form:"title" gorm:"type:varchar(50);not null" validate:"required,max=50"`
	Post  string `json:"post" form:"post" gorm:"type:varchar(500);not null;default:''" validate:"required,max=500"`
	// Thumbnail is the path relative to the media directory, empty when no image was uploaded.
	Thumbnail string `json:"thumbnail,omitempty" form:"-" gorm:"type:varchar(255)"`
}

func (BlogPost) TableName() string { return "blog_posts" }

func (p BlogPost) String() string { return p.Title }
