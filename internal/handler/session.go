package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/model"
	"github.com/Sandeshdahal10/Library-Management-System-Frontend/internal/shell"
)

// GetSession godoc
// @Summary current session frame
// @Tags session
// @Produce json
// @Success 200 {object} SessionView
// @Router /api/v1/session [get]
func (h *Handler) GetSession(c echo.Context) error {
	f := h.frame()
	view := SessionView{Frame: f}
	if f.Route == shell.Allow {
		view.Home = shell.Home(f.Role)
	}
	return c.JSON(http.StatusOK, view)
}

// Login godoc
// @Summary log in against the library API
// @Tags session
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "credentials"
// @Success 200 {object} SessionView
// @Failure 400 {object} echo.HTTPError
// @Failure 401 {object} echo.HTTPError
// @Router /api/v1/session/login [post]
func (h *Handler) Login(c echo.Context) error {
	var req model.LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Email and password are required")
	}
	ctx := requestContext(c)

	resp, _, err := h.authSvc.Login(ctx, req)
	if err != nil {
		return httpError(err, "Login failed")
	}
	if err := h.session.Login(ctx, resp.User, resp.Token); err != nil {
		h.log.Error("persist session", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not save the session")
	}
	f := h.frame()
	return c.JSON(http.StatusOK, SessionView{Frame: f, Home: shell.Home(f.Role)})
}

// Logout godoc
// @Summary log out and forget the persisted session
// @Tags session
// @Produce json
// @Success 200 {object} SessionView
// @Router /api/v1/session/logout [post]
func (h *Handler) Logout(c echo.Context) error {
	if err := h.session.Logout(requestContext(c)); err != nil {
		h.log.Error("logout", zap.Error(err))
		return echo.NewHTTPError(http.StatusInternalServerError, "Could not clear the session")
	}
	return c.JSON(http.StatusOK, SessionView{Frame: h.frame()})
}
