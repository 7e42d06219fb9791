package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/holextra/accounts-api/internal/handler" // import the handlers that implement the endpoints
)

// RegisterRoutes registers routes that do not belong to the account API on
// the provided Echo instance.  Currently it exposes only a health check.
func RegisterRoutes(e *echo.Echo) {
	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)
}

// RegisterAccounts registers every account endpoint under the /api prefix.
// The optional middleware arguments let the caller guard the login route
// with a rate limiter and serve the all-users listing from a cache; pass
// none to register the bare routes (tests do this).
func RegisterAccounts(e *echo.Echo, a *handler.AuthHandler, u *handler.UserHandler, loginLimiter, listingCache echo.MiddlewareFunc) {
	g := e.Group("/api")

	// Registration and login do not require an existing session.  Login
	// reads credentials from headers, matching the original API contract.
	g.POST("/register", a.Register)
	if loginLimiter != nil {
		g.POST("/login", a.Login, loginLimiter)
	} else {
		g.POST("/login", a.Login)
	}

	// Profile operations address records by the store identifier carried in
	// a header (_id) or in the request body for updates.
	g.GET("/user", u.Get)
	g.PATCH("/update", u.Update)
	g.DELETE("/delete", u.Delete)
	if listingCache != nil {
		g.GET("/allusers", u.List, listingCache)
	} else {
		g.GET("/allusers", u.List)
	}

	// Static API description document.
	g.GET("/api-docs", handler.APIDocs)
}
