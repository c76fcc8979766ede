package http

import (
	"github.com/gin-gonic/gin"

	"storefront-catalogue/internal/catalogue"
	"storefront-catalogue/pkg/log"
)

// Handler is the public interface for the catalogue HTTP delivery layer.
type Handler interface {
	Browse(c *gin.Context)
	OpenSession(c *gin.Context)
	GetSession(c *gin.Context)
	CloseSession(c *gin.Context)
	EditFilter(c *gin.Context)
	ResetFilters(c *gin.Context)
	SetPage(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc catalogue.UseCase
}

// New creates a new HTTP handler for the catalogue domain.
func New(l log.Logger, uc catalogue.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
