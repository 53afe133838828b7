package controllers

import (
	"errors"
	"net/http"

	"blog/middleware"
	"blog/models"
	"blog/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AuthController struct {
	userService *services.UserService
	sessions    *middleware.SessionManager
}

func NewAuthController(db *gorm.DB, sessions *middleware.SessionManager) *AuthController {
	return &AuthController{
		userService: services.NewUserService(db),
		sessions:    sessions,
	}
}

func (ac *AuthController) RegisterForm(c *gin.Context) {
	renderRegister(c, http.StatusOK, &models.RegisterForm{}, nil)
}

func (ac *AuthController) Register(c *gin.Context) {
	var form models.RegisterForm
	if err := c.ShouldBind(&form); err != nil {
		renderRegister(c, http.StatusUnprocessableEntity, &form, fieldErrors(err))
		return
	}

	user, err := ac.userService.CreateUser(&form)
	if errors.Is(err, services.ErrDuplicateEmail) {
		middleware.AddFlash(c, "Email already registered. Log in instead!")
		middleware.Redirect(c, "/login")
		return
	}
	if err != nil {
		_ = c.Error(err)
		return
	}

	if err := ac.sessions.Establish(c, user); err != nil {
		_ = c.Error(err)
		return
	}
	middleware.Redirect(c, "/")
}

func (ac *AuthController) LoginForm(c *gin.Context) {
	renderLogin(c, http.StatusOK, &models.LoginForm{}, nil)
}

func (ac *AuthController) Login(c *gin.Context) {
	var form models.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		renderLogin(c, http.StatusUnprocessableEntity, &form, fieldErrors(err))
		return
	}

	user, err := ac.userService.Authenticate(form.Email, form.Password)
	switch {
	case errors.Is(err, services.ErrUserNotFound):
		middleware.AddFlash(c, "User not found")
		renderLogin(c, http.StatusOK, &form, nil)
		return
	case errors.Is(err, services.ErrBadCredentials):
		middleware.AddFlash(c, "Wrong password")
		renderLogin(c, http.StatusOK, &form, nil)
		return
	case err != nil:
		_ = c.Error(err)
		return
	}

	if err := ac.sessions.Establish(c, user); err != nil {
		_ = c.Error(err)
		return
	}
	middleware.Redirect(c, "/")
}

func (ac *AuthController) Logout(c *gin.Context) {
	ac.sessions.Terminate(c)
	middleware.Redirect(c, "/")
}

func renderRegister(c *gin.Context, status int, form *models.RegisterForm, errs map[string]string) {
	middleware.Render(c, status, "register.html", gin.H{
		"PageTitle": "Register",
		"Form":      form,
		"Errors":    nonNil(errs),
	})
}

func renderLogin(c *gin.Context, status int, form *models.LoginForm, errs map[string]string) {
	middleware.Render(c, status, "login.html", gin.H{
		"PageTitle": "Log In",
		"Form":      form,
		"Errors":    nonNil(errs),
	})
}

func nonNil(errs map[string]string) map[string]string {
	if errs == nil {
		return map[string]string{}
	}
	return errs
}
