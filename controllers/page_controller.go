package controllers

import (
	"net/http"

	"blog/middleware"

	"github.com/gin-gonic/gin"
)

type PageController struct{}

func NewPageController() *PageController {
	return &PageController{}
}

func (pc *PageController) About(c *gin.Context) {
	middleware.Render(c, http.StatusOK, "about.html", gin.H{"PageTitle": "About"})
}

func (pc *PageController) Contact(c *gin.Context) {
	middleware.Render(c, http.StatusOK, "contact.html", gin.H{"PageTitle": "Contact"})
}

func (pc *PageController) NotFound(c *gin.Context) {
	middleware.RenderError(c, http.StatusNotFound, "The page you are looking for does not exist.")
}
