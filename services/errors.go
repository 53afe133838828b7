package services

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrBadCredentials = errors.New("wrong password")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrPostNotFound   = errors.New("post not found")
	ErrDuplicateTitle = errors.New("a post with this title already exists")
)
