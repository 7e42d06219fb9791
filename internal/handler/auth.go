package handler

import (
    "context"              // context with cancellation for store calls
    "errors"               // sentinel error comparison
    "net/http"             // HTTP status codes and primitives
    "strings"              // string manipulation utilities
    "time"                 // timeouts for store calls

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/holextra/accounts-api/internal/queue"   // best-effort audit events
    "github.com/holextra/accounts-api/internal/service" // business-rule layer
)

// AuthHandler bundles dependencies for register and login endpoints.
// publish defaults to the RabbitMQ publisher; tests replace it.
type AuthHandler struct {
	Users   *service.UserService
	publish func(context.Context, queue.AccountEvent) error
}

func NewAuthHandler(users *service.UserService) *AuthHandler {
	if users == nil {
		panic("nil service passed to NewAuthHandler")
	}
	return &AuthHandler{Users: users, publish: queue.PublishAccountEvent}
}

// ----- DTOs -----

// registerReq mirrors the original form/body field names, which are all
// lower-case without separators.
type registerReq struct {
	ID         int    `json:"id" form:"id"`
	Email      string `json:"email" form:"email"`
	GivenName  string `json:"givenname" form:"givenname"`
	FamilyName string `json:"familyname" form:"familyname"`
	Password   string `json:"password" form:"password"`
	About      string `json:"about" form:"about"`
}

// Register: validate, refuse duplicate emails, create the account.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !h.Users.ValidateUser(req.ID, req.Email, req.GivenName, req.FamilyName, req.Password, req.About) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "details failed validation"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Users.InsertUser(ctx, req.ID, req.Email, req.GivenName, req.FamilyName, req.Password, req.About)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		}
		c.Logger().Errorf("failed to insert new user %s: %v", req.Email, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}

	// Audit event is best-effort; registration already succeeded.
	_ = h.publish(ctx, queue.AccountEvent{
		Action: queue.ActionRegistered,
		Email:  req.Email,
		At:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusOK, echo.Map{"email": req.Email})
}

// Login: check credentials against the store, issue a signed token and
// persist it on the account before returning it.
func (h *AuthHandler) Login(c echo.Context) error {
	email := strings.ToLower(strings.TrimSpace(c.Request().Header.Get("email")))
	password := c.Request().Header.Get("password")

	if !h.Users.ValidateLogin(email, password) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "login details failed validation"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, err := h.Users.DoLogin(ctx, email, password)
	if err != nil {
		c.Logger().Errorf("failed login %s: %v", email, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "login failed"})
	}
	if !ok {
		c.Logger().Infof("unauthorized login %s", email)
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	token, err := h.Users.GenerateAuthToken(email, password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue token failed"})
	}
	// The account exists at this point, so a failed save is logged but does
	// not fail the login; the client still receives a usable token.
	if saved, err := h.Users.SaveToken(ctx, email, password, token); err != nil || !saved {
		c.Logger().Warnf("failed to save token for %s: %v", email, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token})
}
