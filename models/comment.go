package models

type Comment struct {
	ID     uint   `gorm:"primaryKey"`
	Text   string `gorm:"type:text;not null"`
	UserID uint   `gorm:"not null;index"`
	User   User   `gorm:"foreignKey:UserID"`
	PostID uint   `gorm:"column:blog_id;not null;index"`
	Post   Post   `gorm:"foreignKey:PostID"`
}

func (Comment) TableName() string {
	return "comment"
}

type CommentForm struct {
	Body string `form:"body" binding:"required,notblank"`
}
