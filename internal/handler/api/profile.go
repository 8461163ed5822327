package api

import (
	"net/http"

	reqdto "turf-booking/internal/handler/dto/request"
	resdto "turf-booking/internal/handler/dto/response"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	profiles commands.ProfileCommands
}

func NewProfileHandler(profiles commands.ProfileCommands) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

// @Summary Register profile
// @Description Create the caller's profile on first call; later calls return the stored profile
// @Tags profiles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterProfileRequest false "Profile fields"
// @Success 200 {object} resdto.ProfileResponse
// @Success 201 {object} resdto.ProfileResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /profiles [post]
func (h *ProfileHandler) Register(c *gin.Context) {
	identity, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	var req reqdto.RegisterProfileRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
			return
		}
	}

	p, created, err := h.profiles.Register(c.Request.Context(), req.ToInput(identity))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, useCaseDetail(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromProfile(p))
}

// @Summary Get my profile
// @Tags profiles
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.ProfileResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /profiles/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	identity, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}

	p, err := h.profiles.Lookup(c.Request.Context(), identity.ExternalID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProfile(p))
}
