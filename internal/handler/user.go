package handler

import (
    "context"
    "errors"
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/holextra/accounts-api/internal/queue"
    "github.com/holextra/accounts-api/internal/service"
)

// UserHandler bundles dependencies for profile endpoints.  publish defaults
// to the RabbitMQ publisher; tests replace it.
type UserHandler struct {
	Users   *service.UserService
	publish func(context.Context, queue.AccountEvent) error
}

func NewUserHandler(users *service.UserService) *UserHandler {
	if users == nil {
		panic("nil service passed to NewUserHandler")
	}
	return &UserHandler{Users: users, publish: queue.PublishAccountEvent}
}

// updateReq is registerReq plus the store identifier of the target record.
type updateReq struct {
	DBID       string `json:"_id" form:"_id"`
	ID         int    `json:"id" form:"id"`
	Email      string `json:"email" form:"email"`
	GivenName  string `json:"givenname" form:"givenname"`
	FamilyName string `json:"familyname" form:"familyname"`
	Password   string `json:"password" form:"password"`
	About      string `json:"about" form:"about"`
}

// Get returns the full profile for the _id supplied in the request header.
func (h *UserHandler) Get(c echo.Context) error {
	dbID := c.Request().Header.Get("_id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetUser(ctx, dbID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		c.Logger().Errorf("error finding user %s: %v", dbID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, u)
}

// List returns the public profile of every account.  An empty collection is
// an empty JSON array, not an error.
func (h *UserHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	profiles, err := h.Users.GetAllUsers(ctx)
	if err != nil {
		c.Logger().Errorf("error finding all users: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, profiles)
}

// Update rewrites a profile after validation, refusing missing targets and
// emails owned by a different record.  On success the submitted details are
// echoed back.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if !h.Users.ValidateUser(req.ID, req.Email, req.GivenName, req.FamilyName, req.Password, req.About) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "details failed validation"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.Users.UpdateUser(ctx, req.DBID, req.ID, req.Email, req.GivenName, req.FamilyName, req.Password, req.About)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			c.Logger().Infof("user %s not found", req.DBID)
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		case errors.Is(err, service.ErrEmailTaken):
			return c.JSON(http.StatusConflict, echo.Map{"error": "email already exists"})
		default:
			c.Logger().Errorf("error updating user %s: %v", req.DBID, err)
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, req)
}

// Delete removes the account matching the _id supplied in the request header.
func (h *UserHandler) Delete(c echo.Context) error {
	dbID := c.Request().Header.Get("_id")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Users.DeleteUser(ctx, dbID); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.Logger().Infof("user not found %s", dbID)
			return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
		}
		c.Logger().Errorf("error deleting user %s: %v", dbID, err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}

	_ = h.publish(ctx, queue.AccountEvent{
		Action: queue.ActionDeleted,
		DBID:   dbID,
		At:     time.Now().UTC().Format(time.RFC3339),
	})

	return c.NoContent(http.StatusOK)
}
