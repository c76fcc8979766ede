package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	catalogueHTTP "storefront-catalogue/internal/catalogue/delivery/http"
)

// setupCatalogueDomain registers the catalogue list and session routes.
//
// Pattern to follow when adding a new domain:
//  1. Build the UseCase in main and pass it through Config.
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h, srv.mw)
func (srv HTTPServer) setupCatalogueDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := catalogueHTTP.New(srv.l, srv.catalogueUC)

	// registers /api/v1/catalogue/lists/:kind and /api/v1/catalogue/sessions
	catalogueHTTP.RegisterRoutes(api.Group("/catalogue"), h, srv.mw)

	srv.l.Infof(ctx, "Catalogue domain registered")
	return nil
}
