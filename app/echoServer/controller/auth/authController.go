// app/echoServer/controller/auth/authController.go
package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"eternalink/model"
	authsvc "eternalink/service/auth"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// Register a new user
// @Summary      Register user
// @Description  Register a new user; email is the unique key
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.RegisterReq  true  "Register payload"
// @Success      201  {object}  map[string]any
// @Failure      400  {object}  map[string]any "missing fields / email already registered"
// @Failure      500  {object}  map[string]any
// @Router       /api/auth/register [post]
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please enter all fields"})
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please enter all fields"})
	}

	u, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrEmailTaken):
			// the legacy API reports duplicates as a plain 400
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "User already exists"})
		case errors.Is(err, authsvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please enter all fields"})
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("register failed", "err", err, "req_id", rid, "path", c.Path())
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"message": "Server error during registration",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(http.StatusCreated, echo.Map{
		"message": "User registered successfully",
		"user":    u,
	})
}

// Login
// @Summary      Login
// @Description  Login with email + password; a 200 response is the only proof of authentication
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        payload  body  model.LoginReq  true  "Login payload"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]any "missing fields / invalid credentials"
// @Failure      500  {object}  map[string]any
// @Router       /api/auth/login [post]
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq

	if err := c.Bind(&req); err != nil {
		ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please enter all fields"})
	}
	if err := ct.V.Struct(req); err != nil {
		ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please enter all fields"})
	}

	u, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, authsvc.ErrInvalidCreds):
			// same message whether the email is unknown or the password
			// is wrong, so accounts cannot be enumerated
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid credentials"})
		case errors.Is(err, authsvc.ErrBadInput):
			return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please enter all fields"})
		default:
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			ct.Log.Error("login failed", "err", err, "req_id", rid, "path", c.Path())
			return c.JSON(http.StatusInternalServerError, echo.Map{
				"message": "Server error during login",
				"error":   err.Error(),
			})
		}
	}

	return c.JSON(http.StatusOK, echo.Map{
		"message": "Login successful",
		"user":    u,
	})
}

// Profile
// @Summary      Get user profile
// @Description  Placeholder profile: returns the first stored user until real sessions exist
// @Tags         users
// @Produce      json
// @Success      200  {object}  model.PublicUser
// @Failure      404  {object}  map[string]any
// @Failure      500  {object}  map[string]any
// @Router       /api/users/profile [get]
func (ct *Controller) Profile(c echo.Context) error {
	u, err := ct.Svc.Profile(c.Request().Context())
	if err != nil {
		if errors.Is(err, authsvc.ErrNoUsers) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "No users found"})
		}
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		ct.Log.Error("profile failed", "err", err, "req_id", rid, "path", c.Path())
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}
	return c.JSON(http.StatusOK, u)
}
