//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"turf-booking/internal/domain/profile"
	"turf-booking/internal/handler/api"
	resdto "turf-booking/internal/handler/dto/response"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/commands"
	"turf-booking/tests/common/builder"
	"turf-booking/tests/common/httptest"
	commandsmock "turf-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProfileHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockProfiles *commandsmock.MockProfileCommands
	builder      *builder.ProfileBuilder
}

func (s *ProfileHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProfiles = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.builder = builder.NewProfileBuilder()
	handler := api.NewProfileHandler(s.mockProfiles)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": httperr.CodeUnauthorized}})
			return
		}
		middleware.SetIdentity(c, s.builder.BuildIdentity())
		c.Next()
	}

	s.router.POST("/profiles", authMiddleware, handler.Register)
	s.router.GET("/profiles/me", authMiddleware, handler.Me)
}

func (s *ProfileHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestProfileHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProfileHandlerTestSuite))
}

func (s *ProfileHandlerTestSuite) TestRegister() {
	s.Run("success: 201 on first registration with token role", func() {
		p := s.builder.BuildDomain()
		s.mockProfiles.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RegisterProfileInput) (*profile.Profile, bool, error) {
				s.Equal(s.builder.ExternalID, in.Identity.ExternalID)
				s.Equal("player", in.Role)
				return p, true, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/profiles", nil, "token")

		var body resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(p.ID(), body.ID)
		s.Equal("player", body.Role)
	})

	s.Run("success: 200 when the profile already exists", func() {
		p := s.builder.BuildDomain()
		s.mockProfiles.EXPECT().Register(gomock.Any(), gomock.Any()).Return(p, false, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/profiles", map[string]any{"phone": "+91 98450 00000"}, "token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("requested role overrides the token role", func() {
		s.mockProfiles.EXPECT().Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.RegisterProfileInput) (*profile.Profile, bool, error) {
				s.Equal("owner", in.Role)
				return builder.NewProfileBuilder().AsOwner().BuildDomain(), true, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/profiles", map[string]any{"role": "owner"}, "token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: 400 for an unknown role", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/profiles", map[string]any{"role": "admin"}, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/profiles", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *ProfileHandlerTestSuite) TestMe() {
	s.Run("success: returns the stored profile", func() {
		p := s.builder.BuildDomain()
		s.mockProfiles.EXPECT().Lookup(gomock.Any(), s.builder.ExternalID).Return(p, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles/me", nil, "token")

		var body resdto.ProfileResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(s.builder.ExternalID, body.ExternalID)
	})

	s.Run("error: 404 before registration", func() {
		s.mockProfiles.EXPECT().Lookup(gomock.Any(), s.builder.ExternalID).
			Return(nil, errs.Mark(errors.New("no profile"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/profiles/me", nil, "token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound, "")
	})
}
