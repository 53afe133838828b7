package services

import (
	"errors"
	"testing"
	"time"

	"blog/models"
)

func fixedClock() time.Time {
	return time.Date(2025, time.April, 2, 15, 4, 5, 0, time.Local)
}

func newPostForm(title, body string) *models.PostForm {
	return &models.PostForm{
		Title:    title,
		Subtitle: "a subtitle",
		ImgURL:   "https://example.com/cover.jpg",
		Body:     body,
	}
}

func TestCreatePostStampsDateAndAuthor(t *testing.T) {
	db := newTestDB(t)
	admin := mustRegister(t, NewUserService(db), "Admin", "admin@x.com")
	posts := NewPostService(db).WithClock(fixedClock)

	p, err := posts.CreatePost(admin, newPostForm("T", "<p>hello</p>"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Date != "April 02, 2025" {
		t.Fatalf("date = %q", p.Date)
	}

	got, err := posts.GetPost(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Body != "<p>hello</p>" || got.AuthorID != admin.ID || got.Author.Name != "Admin" {
		t.Fatalf("unexpected post %+v", got)
	}
}

func TestCreatePostRejectsDuplicateTitle(t *testing.T) {
	db := newTestDB(t)
	admin := mustRegister(t, NewUserService(db), "Admin", "admin@x.com")
	posts := NewPostService(db)

	if _, err := posts.CreatePost(admin, newPostForm("Same", "one")); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := posts.CreatePost(admin, newPostForm("Same", "two")); !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}

	list, err := posts.ListPosts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("posts = %d, want 1", len(list))
	}
}

func TestUpdatePostKeepsAuthorAndDate(t *testing.T) {
	db := newTestDB(t)
	admin := mustRegister(t, NewUserService(db), "Admin", "admin@x.com")
	posts := NewPostService(db).WithClock(fixedClock)

	p, err := posts.CreatePost(admin, newPostForm("T", "T1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	posts.WithClock(func() time.Time { return fixedClock().AddDate(1, 0, 0) })
	form := newPostForm("T", "T2")
	form.Subtitle = "new subtitle"
	if _, err := posts.UpdatePost(p.ID, form); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := posts.GetPost(p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Body != "T2" || got.Subtitle != "new subtitle" {
		t.Fatalf("update not applied: %+v", got)
	}
	if got.Title != "T" || got.Date != "April 02, 2025" || got.AuthorID != admin.ID {
		t.Fatalf("immutable fields changed: %+v", got)
	}
}

func TestUpdatePostErrors(t *testing.T) {
	db := newTestDB(t)
	admin := mustRegister(t, NewUserService(db), "Admin", "admin@x.com")
	posts := NewPostService(db)

	if _, err := posts.UpdatePost(42, newPostForm("X", "x")); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	posts.CreatePost(admin, newPostForm("First", "1"))
	second, _ := posts.CreatePost(admin, newPostForm("Second", "2"))
	if _, err := posts.UpdatePost(second.ID, newPostForm("First", "2")); !errors.Is(err, ErrDuplicateTitle) {
		t.Fatalf("expected ErrDuplicateTitle, got %v", err)
	}
}

func TestDeletePostCascadesComments(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	admin := mustRegister(t, users, "Admin", "admin@x.com")
	reader := mustRegister(t, users, "Reader", "reader@x.com")
	posts := NewPostService(db)

	keep, _ := posts.CreatePost(admin, newPostForm("Keep", "k"))
	drop, _ := posts.CreatePost(admin, newPostForm("Drop", "d"))
	for _, p := range []*models.Post{keep, drop} {
		if _, err := posts.AddComment(reader, p.ID, &models.CommentForm{Body: "nice"}); err != nil {
			t.Fatalf("comment: %v", err)
		}
	}

	if err := posts.DeletePost(drop.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := posts.GetPost(drop.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("post still present: %v", err)
	}

	var orphans int64
	db.Model(&models.Comment{}).Where("blog_id = ?", drop.ID).Count(&orphans)
	if orphans != 0 {
		t.Fatalf("orphaned comments = %d", orphans)
	}
	kept, _ := posts.ListComments(keep.ID)
	if len(kept) != 1 {
		t.Fatalf("comments on kept post = %d, want 1", len(kept))
	}

	if err := posts.DeletePost(drop.ID); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
}

func TestCommentsListedInOrderWithAuthors(t *testing.T) {
	db := newTestDB(t)
	users := NewUserService(db)
	admin := mustRegister(t, users, "Admin", "admin@x.com")
	reader := mustRegister(t, users, "Reader", "reader@x.com")
	posts := NewPostService(db)
	p, _ := posts.CreatePost(admin, newPostForm("T", "t"))

	posts.AddComment(reader, p.ID, &models.CommentForm{Body: "first"})
	posts.AddComment(admin, p.ID, &models.CommentForm{Body: "second"})

	comments, err := posts.ListComments(p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("comments = %d, want 2", len(comments))
	}
	if comments[0].Text != "first" || comments[0].User.Name != "Reader" {
		t.Fatalf("unexpected first comment %+v", comments[0])
	}
	if comments[1].Text != "second" || comments[1].User.Name != "Admin" {
		t.Fatalf("unexpected second comment %+v", comments[1])
	}
}

func TestAddCommentToMissingPost(t *testing.T) {
	db := newTestDB(t)
	reader := mustRegister(t, NewUserService(db), "Reader", "reader@x.com")
	posts := NewPostService(db)

	if _, err := posts.AddComment(reader, 7, &models.CommentForm{Body: "hi"}); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestListPostsInInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	admin := mustRegister(t, NewUserService(db), "Admin", "admin@x.com")
	posts := NewPostService(db)
	for _, title := range []string{"c", "a", "b"} {
		if _, err := posts.CreatePost(admin, newPostForm(title, title)); err != nil {
			t.Fatalf("create %s: %v", title, err)
		}
	}

	list, err := posts.ListPosts()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var titles string
	for _, p := range list {
		titles += p.Title
	}
	if titles != "cab" {
		t.Fatalf("order = %q, want cab", titles)
	}
}
