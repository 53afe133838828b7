package models

// PostDateLayout renders dates like "April 02, 2025".
const PostDateLayout = "January 02, 2006"

type Post struct {
	ID       uint      `gorm:"primaryKey"`
	Title    string    `gorm:"size:250;uniqueIndex;not null"`
	Subtitle string    `gorm:"size:250;not null"`
	Date     string    `gorm:"size:250;not null"`
	Body     string    `gorm:"type:text;not null"`
	ImgURL   string    `gorm:"column:img_url;size:250;not null"`
	AuthorID uint      `gorm:"not null;index"`
	Author   User      `gorm:"foreignKey:AuthorID"`
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

func (Post) TableName() string {
	return "blog_posts"
}

type PostForm struct {
	Title    string `form:"title" binding:"required,notblank,max=250"`
	Subtitle string `form:"subtitle" binding:"required,notblank,max=250"`
	ImgURL   string `form:"img_url" binding:"required,url,max=250"`
	Body     string `form:"body" binding:"required,notblank"`
}

// FormFromPost pre-populates the edit form.
func FormFromPost(p *Post) PostForm {
	return PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		ImgURL:   p.ImgURL,
		Body:     p.Body,
	}
}
