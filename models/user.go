package models

import (
	"golang.org/x/crypto/bcrypt"
)

// AdminID is the id of the only user allowed to manage posts: whoever registered first.
const AdminID uint = 1

type User struct {
	ID       uint      `gorm:"primaryKey"`
	Name     string    `gorm:"size:250;not null"`
	Email    string    `gorm:"size:250;uniqueIndex;not null"`
	Password string    `gorm:"size:250;not null"`
	Posts    []Post    `gorm:"foreignKey:AuthorID"`
	Comments []Comment `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "blog_user"
}

type RegisterForm struct {
	Name     string `form:"name" binding:"required,notblank,max=250"`
	Email    string `form:"email" binding:"required,email,max=250"`
	Password string `form:"password" binding:"required,min=8"`
}

type LoginForm struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

func (u *User) HashPassword() error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	return nil
}

func (u *User) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

func (u *User) IsAdmin() bool {
	return u != nil && u.ID == AdminID
}
