package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/trailforge/parks-catalog/internal/handler"
	"github.com/trailforge/parks-catalog/internal/middleware"
	"github.com/trailforge/parks-catalog/internal/model"
)

// Register wires every route of the catalog API onto the provided Echo
// instance.  Read routes are open; all park and trail mutations require a
// bearer token whose role claim is Admin.  The required-role table lives
// here, in one place, rather than scattered through handler code.
func Register(e *echo.Echo, parks *handler.ParkHandler, trails *handler.TrailHandler, users *handler.UserHandler, jwtSecret string) {
	e.GET("/healthz", handler.Health)

	v1 := e.Group("/api/v1")

	// ---- National parks (reads are public) ----
	v1.GET("/nationalparks", parks.List)
	v1.GET("/nationalparks/:id", parks.Get)

	// ---- Trails (reads are public) ----
	v1.GET("/trails", trails.List)
	v1.GET("/trails/:id", trails.Get)
	v1.GET("/trails/park/:parkId", trails.ListByPark)

	// ---- Users ----
	v1.POST("/users/authenticate", users.Authenticate)
	v1.POST("/users/register", users.Register)

	// ---- Admin-only mutations ----
	admin := e.Group("/api/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)
	admin.POST("/nationalparks", parks.Create)
	admin.PUT("/nationalparks/:id", parks.Update)
	admin.DELETE("/nationalparks/:id", parks.Delete)
	admin.POST("/trails", trails.Create)
	admin.PUT("/trails/:id", trails.Update)
	admin.DELETE("/trails/:id", trails.Delete)

	// Legacy v2 listing kept for wire compatibility: it answers with only
	// the first park of the sorted list.
	e.GET("/api/v2/nationalparks", parks.ListFirst)
}
