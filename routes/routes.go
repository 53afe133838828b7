package routes

import (
	"blog/config"
	"blog/controllers"
	"blog/middleware"
	"blog/services"
	"blog/static"
	"blog/templates"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter builds the engine with templates, middleware and every route.
func NewRouter(cfg *config.Config, db *gorm.DB) (*gin.Engine, error) {
	if err := controllers.RegisterValidators(); err != nil {
		return nil, err
	}

	tmpl, err := templates.Load()
	if err != nil {
		return nil, err
	}

	sessions := middleware.NewSessionManager(cfg, services.NewUserService(db))

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.Flash())
	r.Use(sessions.Load())
	r.Use(middleware.ErrorHandler())

	authController := controllers.NewAuthController(db, sessions)
	postController := controllers.NewPostController(db)
	pageController := controllers.NewPageController()

	SetupRoutes(r, authController, postController, pageController)
	return r, nil
}

func SetupRoutes(r *gin.Engine, authController *controllers.AuthController, postController *controllers.PostController, pageController *controllers.PageController) {
	r.StaticFS("/static", static.FS())
	r.NoRoute(pageController.NotFound)

	r.GET("/", postController.Index)
	r.GET("/about", pageController.About)
	r.GET("/contact", pageController.Contact)

	r.GET("/register", authController.RegisterForm)
	r.POST("/register", authController.Register)
	r.GET("/login", authController.LoginForm)
	r.POST("/login", authController.Login)
	r.GET("/logout", middleware.LoginRequired(), authController.Logout)

	r.GET("/post/:id", postController.Show)
	r.POST("/post/:id", postController.Comment)

	admin := r.Group("/")
	admin.Use(middleware.AdminOnly())
	{
		admin.GET("/new-post", postController.NewPostForm)
		admin.POST("/new-post", postController.CreatePost)
		admin.GET("/edit-post/:id", postController.EditPostForm)
		admin.POST("/edit-post/:id", postController.UpdatePost)
		admin.GET("/delete/:id", postController.DeletePost)
	}
}
