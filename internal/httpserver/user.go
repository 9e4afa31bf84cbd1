package httpserver

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/BunniBooXx/Custom-Nails-Backend/internal/logging"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/middleware"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/models"
	"github.com/BunniBooXx/Custom-Nails-Backend/internal/service"
)

type UserHTTP struct {
	Svc *service.AuthService
}

type userResponse struct {
	UserID      uint   `json:"user_id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	AvatarImage string `json:"avatar_image"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		UserID:      u.ID,
		Username:    u.Username,
		Email:       u.Email,
		AvatarImage: u.AvatarImage,
	}
}

func (h *UserHTTP) Signup(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.signup")

	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	user, err := h.Svc.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return fail(c, err)
	}

	l.Info("user_created", "user_id", user.ID)
	return c.JSON(http.StatusCreated, echo.Map{"message": "User created successfully", "data": toUserResponse(user)})
}

func (h *UserHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "user.login")

	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	res, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		return fail(c, err)
	}

	l.Info("login_success", "user_id", res.User.ID)
	return c.JSON(http.StatusOK, echo.Map{
		"message":      "Login successful",
		"access_token": res.AccessToken,
		"expires_at":   res.ExpiresAt,
		"user":         toUserResponse(res.User),
	})
}

func (h *UserHTTP) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	var owner *uint
	if err == nil {
		owner = &userID
	}

	if err := h.Svc.Logout(ctx, middleware.JTI(c), middleware.TokenType(c), owner); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"msg": "Access token successfully revoked"})
}

func (h *UserHTTP) GetIdentity(c echo.Context) error {
	ctx := c.Request().Context()

	userID, err := middleware.UserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	user, err := h.Svc.GetUser(ctx, userID)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *UserHTTP) GetUser(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
	}

	user, err := h.Svc.GetUser(ctx, id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdateField handles the per-field profile endpoints; the field name comes
// from the route.
func (h *UserHTTP) UpdateField(field string) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		callerID, err := middleware.UserID(c)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
		}
		targetID, err := pathID(c, "id")
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
		}

		var req struct {
			Username    string `json:"username"`
			Password    string `json:"password"`
			Email       string `json:"email"`
			AvatarImage string `json:"avatar_image"`
		}
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}

		in := service.UpdateUserInput{}
		switch field {
		case "username":
			if req.Username == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "username is required"})
			}
			in.Username = req.Username
		case "password":
			if req.Password == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "password is required"})
			}
			in.Password = req.Password
		case "email":
			if req.Email == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "email is required"})
			}
			in.Email = req.Email
		case "avatar":
			if req.AvatarImage == "" {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "avatar image is required"})
			}
			in.AvatarImage = req.AvatarImage
		default:
			in = service.UpdateUserInput{
				Username:    req.Username,
				Password:    req.Password,
				Email:       req.Email,
				AvatarImage: req.AvatarImage,
			}
		}

		user, err := h.Svc.UpdateUser(ctx, callerID, targetID, in)
		if err != nil {
			return fail(c, err)
		}
		return c.JSON(http.StatusOK, echo.Map{"message": "User information updated", "data": toUserResponse(user)})
	}
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
