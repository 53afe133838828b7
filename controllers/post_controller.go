package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blog/middleware"
	"blog/models"
	"blog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	postService *services.PostService
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{
		postService: services.NewPostService(db),
	}
}

func (pc *PostController) Index(c *gin.Context) {
	posts, err := pc.postService.ListPosts()
	if err != nil {
		_ = c.Error(err)
		return
	}
	middleware.Render(c, http.StatusOK, "index.html", gin.H{"Posts": posts})
}

func (pc *PostController) Show(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}
	pc.renderPost(c, http.StatusOK, post, &models.CommentForm{}, nil)
}

// Comment handles the comment form on a post page. Anonymous visitors are
// sent to the login page and nothing is stored.
func (pc *PostController) Comment(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}

	user := middleware.CurrentUser(c)
	if user == nil {
		middleware.AddFlash(c, "Login required")
		middleware.Redirect(c, "/login")
		return
	}

	var form models.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		pc.renderPost(c, http.StatusUnprocessableEntity, post, &form, fieldErrors(err))
		return
	}

	if _, err := pc.postService.AddComment(user, post.ID, &form); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			notFound(c)
			return
		}
		_ = c.Error(err)
		return
	}
	middleware.Redirect(c, postURL(post.ID))
}

func (pc *PostController) NewPostForm(c *gin.Context) {
	renderPostForm(c, http.StatusOK, "/new-post", false, &models.PostForm{}, nil)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		renderPostForm(c, http.StatusUnprocessableEntity, "/new-post", false, &form, fieldErrors(err))
		return
	}

	post, err := pc.postService.CreatePost(middleware.CurrentUser(c), &form)
	if errors.Is(err, services.ErrDuplicateTitle) {
		renderPostForm(c, http.StatusConflict, "/new-post", false, &form, duplicateTitle())
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	middleware.Redirect(c, postURL(post.ID))
}

func (pc *PostController) EditPostForm(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}
	form := models.FormFromPost(post)
	renderPostForm(c, http.StatusOK, editURL(post.ID), true, &form, nil)
}

func (pc *PostController) UpdatePost(c *gin.Context) {
	post, ok := pc.loadPost(c)
	if !ok {
		return
	}

	var form models.PostForm
	if err := c.ShouldBind(&form); err != nil {
		renderPostForm(c, http.StatusUnprocessableEntity, editURL(post.ID), true, &form, fieldErrors(err))
		return
	}

	_, err := pc.postService.UpdatePost(post.ID, &form)
	switch {
	case errors.Is(err, services.ErrDuplicateTitle):
		renderPostForm(c, http.StatusConflict, editURL(post.ID), true, &form, duplicateTitle())
		return
	case errors.Is(err, services.ErrPostNotFound):
		notFound(c)
		return
	case err != nil:
		_ = c.Error(err)
		return
	}
	middleware.Redirect(c, postURL(post.ID))
}

func (pc *PostController) DeletePost(c *gin.Context) {
	id, ok := postID(c)
	if !ok {
		return
	}

	err := pc.postService.DeletePost(id)
	if errors.Is(err, services.ErrPostNotFound) {
		notFound(c)
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}
	middleware.Redirect(c, "/")
}

func (pc *PostController) loadPost(c *gin.Context) (*models.Post, bool) {
	id, ok := postID(c)
	if !ok {
		return nil, false
	}
	post, err := pc.postService.GetPost(id)
	if errors.Is(err, services.ErrPostNotFound) {
		notFound(c)
		return nil, false
	}
	if err != nil {
		_ = c.Error(err)
		return nil, false
	}
	return post, true
}

func (pc *PostController) renderPost(c *gin.Context, status int, post *models.Post, form *models.CommentForm, errs map[string]string) {
	comments, err := pc.postService.ListComments(post.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}
	middleware.Render(c, status, "post.html", gin.H{
		"PageTitle": post.Title,
		"Post":      post,
		"Comments":  comments,
		"Form":      form,
		"Errors":    nonNil(errs),
	})
}

func renderPostForm(c *gin.Context, status int, action string, editing bool, form *models.PostForm, errs map[string]string) {
	title := "New Post"
	if editing {
		title = "Edit Post"
	}
	middleware.Render(c, status, "make-post.html", gin.H{
		"PageTitle": title,
		"Action":    action,
		"Editing":   editing,
		"Form":      form,
		"Errors":    nonNil(errs),
	})
}

func postID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		notFound(c)
		return 0, false
	}
	return uint(id), true
}

func notFound(c *gin.Context) {
	middleware.RenderError(c, http.StatusNotFound, "That post does not exist.")
}

func duplicateTitle() map[string]string {
	return map[string]string{"title": "A post with this title already exists."}
}

func postURL(id uint) string {
	return "/post/" + strconv.FormatUint(uint64(id), 10)
}

func editURL(id uint) string {
	return "/edit-post/" + strconv.FormatUint(uint64(id), 10)
}
