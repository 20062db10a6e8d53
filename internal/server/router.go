// Package server exposes the document generator over HTTP.
package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/Zouhir-Harch/site-backend/internal/document"
	"github.com/Zouhir-Harch/site-backend/pkg/api"
)

// Router builds the gin engine serving the generation endpoints.
type Router struct {
	generator *api.Generator
	logger    *log.Logger
}

// NewRouter returns a router backed by the given generator.
func NewRouter(generator *api.Generator, logger *log.Logger) *Router {
	return &Router{generator: generator, logger: logger}
}

// Engine assembles the HTTP routes and middleware.
func (r *Router) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery(), RequestID(), CORS())

	engine.GET("/", r.index)
	engine.GET("/health", r.health)
	engine.POST("/generate/lettre-motivation", r.generateLetter)
	engine.POST("/generate/page-de-garde", r.generateTitlePage)
	engine.POST("/generate/cv", r.generateResume)

	return engine
}

func (r *Router) index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "Générateur de documents PDF",
		"endpoints": []string{
			"POST /generate/lettre-motivation",
			"POST /generate/page-de-garde",
			"POST /generate/cv",
		},
	})
}

func (r *Router) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (r *Router) generateLetter(c *gin.Context) {
	var data document.LetterData
	if !r.bind(c, &data) {
		return
	}
	filename := fmt.Sprintf("lettre_motivation_%s_%s_%s.pdf",
		data.LastName, data.FirstName, sanitize(data.Company))
	r.respond(c, filename, func() ([]byte, error) {
		return r.generator.GenerateLetter(data)
	})
}

func (r *Router) generateTitlePage(c *gin.Context) {
	var data document.TitlePageData
	if !r.bind(c, &data) {
		return
	}
	filename := fmt.Sprintf("page_de_garde_%s_%s.pdf",
		data.StudentLastName, data.StudentFirstName)
	r.respond(c, filename, func() ([]byte, error) {
		return r.generator.GenerateTitlePage(data)
	})
}

func (r *Router) generateResume(c *gin.Context) {
	var data document.ResumeData
	if !r.bind(c, &data) {
		return
	}
	filename := fmt.Sprintf("cv_%s_%s.pdf", data.LastName, data.FirstName)
	r.respond(c, filename, func() ([]byte, error) {
		return r.generator.GenerateResume(data)
	})
}

// bind decodes and validates the request body, answering 400 on
// failure. Returns false when the request was already answered.
func (r *Router) bind(c *gin.Context, data any) bool {
	if err := c.ShouldBindJSON(data); err != nil {
		r.logger.Warn("invalid request body",
			"request_id", c.GetString("request_id"),
			"path", c.FullPath(),
			"error", err)
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return false
	}
	return true
}

// respond runs a generation and writes the PDF as an attachment.
func (r *Router) respond(c *gin.Context, filename string, generate func() ([]byte, error)) {
	out, err := generate()
	if err != nil {
		r.logger.Error("document generation failed",
			"request_id", c.GetString("request_id"),
			"path", c.FullPath(),
			"error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Erreur lors de la génération du PDF"})
		return
	}
	r.logger.Info("document generated",
		"request_id", c.GetString("request_id"),
		"path", c.FullPath(),
		"bytes", len(out))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", out)
}

// sanitize makes a value safe for use inside a filename.
func sanitize(s string) string {
	return strings.ReplaceAll(s, " ", "_")
}
