package services

import (
	"errors"
	"strings"
	"time"

	"blog/models"

	"gorm.io/gorm"
)

type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db, now: time.Now}
}

// WithClock overrides the clock used to date new posts.
func (s *PostService) WithClock(now func() time.Time) *PostService {
	s.now = now
	return s
}

func (s *PostService) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	err := s.db.Preload("Author").Order("id ASC").Find(&posts).Error
	return posts, err
}

func (s *PostService) GetPost(id uint) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("Author").First(&post, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s *PostService) CreatePost(author *models.User, form *models.PostForm) (*models.Post, error) {
	post := &models.Post{
		Title:    strings.TrimSpace(form.Title),
		Subtitle: strings.TrimSpace(form.Subtitle),
		ImgURL:   strings.TrimSpace(form.ImgURL),
		Body:     form.Body,
		Date:     s.now().Format(models.PostDateLayout),
		AuthorID: author.ID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureTitleFree(tx, post.Title, 0); err != nil {
			return err
		}
		return tx.Omit("Author", "Comments").Create(post).Error
	})
	if err != nil {
		return nil, translatePostError(err)
	}

	post.Author = *author
	return post, nil
}

// UpdatePost overwrites the editable fields. Author and date never change.
func (s *PostService) UpdatePost(id uint, form *models.PostForm) (*models.Post, error) {
	var post models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			return err
		}
		title := strings.TrimSpace(form.Title)
		if err := ensureTitleFree(tx, title, post.ID); err != nil {
			return err
		}
		post.Title = title
		post.Subtitle = strings.TrimSpace(form.Subtitle)
		post.ImgURL = strings.TrimSpace(form.ImgURL)
		post.Body = form.Body
		return tx.Model(&post).Updates(map[string]interface{}{
			"title":    post.Title,
			"subtitle": post.Subtitle,
			"img_url":  post.ImgURL,
			"body":     post.Body,
		}).Error
	})
	if err != nil {
		return nil, translatePostError(err)
	}
	return &post, nil
}

// DeletePost removes the post together with its comments.
func (s *PostService) DeletePost(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var post models.Post
		if err := tx.Select("id").First(&post, id).Error; err != nil {
			return err
		}
		if err := tx.Where("blog_id = ?", post.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&post).Error
	})
	return translatePostError(err)
}

func (s *PostService) ListComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").Where("blog_id = ?", postID).Order("id ASC").Find(&comments).Error
	return comments, err
}

func (s *PostService) AddComment(user *models.User, postID uint, form *models.CommentForm) (*models.Comment, error) {
	comment := &models.Comment{
		Text:   form.Body,
		UserID: user.ID,
		PostID: postID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrPostNotFound
		}
		return tx.Omit("User", "Post").Create(comment).Error
	})
	if err != nil {
		return nil, err
	}

	comment.User = *user
	return comment, nil
}

func ensureTitleFree(tx *gorm.DB, title string, exceptID uint) error {
	var count int64
	err := tx.Model(&models.Post{}).Where("title = ? AND id <> ?", title, exceptID).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateTitle
	}
	return nil
}

func translatePostError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrPostNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateTitle
	default:
		return err
	}
}
