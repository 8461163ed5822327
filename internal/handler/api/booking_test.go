//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/profile"
	"turf-booking/internal/handler/api"
	resdto "turf-booking/internal/handler/dto/response"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/queries"
	"turf-booking/tests/common/builder"
	"turf-booking/tests/common/httptest"
	"turf-booking/tests/common/testutil"
	commandsmock "turf-booking/tests/mock/commands"
	queriesmock "turf-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	playerToken = "player-token"
	ownerToken  = "owner-token"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockStatuses *commandsmock.MockBookingStatusCommands
	mockProfiles *commandsmock.MockProfileCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	player *profile.Profile
	owner  *profile.Profile
	tokens map[string]profile.Identity
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockStatuses = commandsmock.NewMockBookingStatusCommands(s.mockCtrl)
	s.mockProfiles = commandsmock.NewMockProfileCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockStatuses, s.mockProfiles, s.mockQueries)

	playerBuilder := builder.NewProfileBuilder()
	ownerBuilder := builder.NewProfileBuilder().AsOwner()
	s.player = playerBuilder.BuildDomain()
	s.owner = ownerBuilder.BuildDomain()
	s.tokens = map[string]profile.Identity{
		playerToken: playerBuilder.BuildIdentity(),
		ownerToken:  ownerBuilder.BuildIdentity(),
	}

	// Stands in for RequireAuth: the bearer value picks the identity.
	authMiddleware := func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		identity, ok := s.tokens[token]
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"code": httperr.CodeUnauthorized}})
			return
		}
		middleware.SetIdentity(c, identity)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.Create)
	s.router.GET("/bookings", authMiddleware, s.handler.ListMine)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.Get)
	s.router.PATCH("/bookings/:id/status", authMiddleware, s.handler.UpdateStatus)
	s.router.GET("/owner/bookings", authMiddleware, s.handler.ListForOwner)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) expectLookup(token string, p *profile.Profile) {
	s.mockProfiles.EXPECT().Lookup(gomock.Any(), s.tokens[token].ExternalID).Return(p, nil)
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.BuildDomain()

	s.Run("success: returns 201 with the pending booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.CreateBookingInput) (*booking.Booking, error) {
				s.Equal(s.tokens[playerToken], in.Identity)
				s.Equal(b.TurfID, in.TurfID)
				s.Equal("slot-18", in.SlotID)
				s.Equal(int64(1200), in.Amount)
				return created, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, playerToken)

		var body resdto.CreateBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Success)
		s.Equal(created.ID(), body.BookingID)
		s.Equal("pending", body.Booking.Status)
		s.Equal("2026-03-20", body.Booking.Slot.Date)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/api/bookings/" + created.ID().String()})
	})

	s.Run("error: 400 on malformed requests", func() {
		cases := []testCaseBooking{
			{name: "missing turfId", mutate: testutil.Field("turfId", nil), expectCode: http.StatusBadRequest},
			{name: "malformed turfId", mutate: testutil.Field("turfId", "not-a-uuid"), expectCode: http.StatusBadRequest},
			{name: "missing slotId", mutate: testutil.Field("slotId", nil), expectCode: http.StatusBadRequest},
			{name: "slotId too long", mutate: testutil.Field("slotId", strings.Repeat("s", 65)), expectCode: http.StatusBadRequest},
			{name: "missing slot", mutate: testutil.Field("slot", nil), expectCode: http.StatusBadRequest},
			{name: "missing amount", mutate: testutil.Field("amount", nil), expectCode: http.StatusBadRequest},
			{name: "negative amount", mutate: testutil.Field("amount", -1), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, playerToken)
				httptest.AssertErrorCode(s.T(), rec, tc.expectCode, httperr.CodeValidation, "")
			})
		}
	})

	s.Run("zero amount is accepted", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(created, nil)
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("amount", 0))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, playerToken)
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: use case failures map to status codes", func() {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
			reason string
		}{
			{name: "slot taken", err: errs.Wrap(errs.ErrSlotUnavailable, "slot-18"), status: http.StatusConflict, code: httperr.CodeSlotUnavailable, reason: httperr.ReasonContention},
			{name: "unknown slot", err: errs.Mark(errors.New("no slot"), errs.ErrNotFound), status: http.StatusNotFound, code: httperr.CodeNotFound},
			{name: "bad window", err: errs.Mark(errors.New("end before start"), errs.ErrValidation), status: http.StatusBadRequest, code: httperr.CodeValidation},
			{name: "store down", err: errs.Mark(errors.New("timeout"), errs.ErrProvider), status: http.StatusInternalServerError, code: httperr.CodeInternal},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, playerToken)
				httptest.AssertErrorCode(s.T(), rec, tc.status, tc.code, tc.reason)
			})
		}
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	view.PlayerID = s.player.ID()
	view.TurfName = "Green Field"
	url := "/bookings/" + view.ID.String()

	s.Run("success: player sees the joined view", func() {
		s.expectLookup(playerToken, s.player)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.player.ID(), view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, playerToken)

		var body resdto.BookingDetailResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
		s.Equal("Green Field", body.TurfName)
		s.Equal("18:00", body.Slot.Start)
	})

	s.Run("error: 403 for a booking of someone else", func() {
		s.expectLookup(ownerToken, s.owner)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.owner.ID(), view.ID).
			Return(nil, errs.Wrapf(errs.ErrAccessDenied, "not visible"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, ownerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeAccessDenied, "")
	})

	s.Run("error: 403 when the caller has no profile", func() {
		s.mockProfiles.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no profile"), errs.ErrNotFound))
		s.mockQueries.EXPECT().GetByID(gomock.Any(), uuid.Nil, view.ID).
			Return(nil, errs.Wrapf(errs.ErrAccessDenied, "not visible"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, playerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeAccessDenied, "")
	})

	s.Run("error: 404 for an unknown booking when the caller has no profile", func() {
		s.mockProfiles.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no profile"), errs.ErrNotFound))
		s.mockQueries.EXPECT().GetByID(gomock.Any(), uuid.Nil, view.ID).
			Return(nil, errs.Mark(errors.New("missing"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, playerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound, "")
	})

	s.Run("error: 404 for an unknown booking", func() {
		s.expectLookup(playerToken, s.player)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.player.ID(), view.ID).
			Return(nil, errs.Mark(errors.New("missing"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, playerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound, "")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/abc", nil, playerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "")
	})
}

// ================================================================================
// TestUpdateStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestUpdateStatus() {
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.OwnerID = s.owner.ID()
	})
	url := "/bookings/" + b.ID.String() + "/status"

	s.Run("success: owner confirms a pending booking", func() {
		confirmed := b.WithStatus(booking.StatusConfirmed).BuildDomain()
		s.expectLookup(ownerToken, s.owner)
		s.mockStatuses.EXPECT().Transition(gomock.Any(), b.ID, booking.StatusConfirmed, s.owner.ID()).Return(confirmed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "confirmed"}, ownerToken)

		var body resdto.StatusChangeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Success)
		s.Equal("confirmed", body.Booking.Status)
	})

	s.Run("error: 409 lists the allowed next statuses", func() {
		s.expectLookup(ownerToken, s.owner)
		s.mockStatuses.EXPECT().Transition(gomock.Any(), b.ID, booking.StatusPending, s.owner.ID()).
			Return(nil, &booking.TransitionError{From: booking.StatusConfirmed, To: booking.StatusPending})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "pending"}, ownerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusConflict, httperr.CodeInvalidTransition, "")

		var body struct {
			Detail struct {
				Current   string   `json:"current"`
				Requested string   `json:"requested"`
				Allowed   []string `json:"allowed"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("confirmed", body.Detail.Current)
		s.Equal("pending", body.Detail.Requested)
		s.Equal([]string{"cancelled", "completed"}, body.Detail.Allowed)
	})

	s.Run("error: 403 when the caller does not own the turf", func() {
		s.expectLookup(playerToken, s.player)
		s.mockStatuses.EXPECT().Transition(gomock.Any(), b.ID, booking.StatusCancelled, s.player.ID()).
			Return(nil, errs.Wrapf(errs.ErrAccessDenied, "not the owner"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, playerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeAccessDenied, "")
	})

	s.Run("error: 404 for an unknown booking when the caller has no profile", func() {
		s.mockProfiles.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no profile"), errs.ErrNotFound))
		s.mockStatuses.EXPECT().Transition(gomock.Any(), b.ID, booking.StatusCancelled, uuid.Nil).
			Return(nil, errs.Mark(errors.New("missing"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "cancelled"}, ownerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusNotFound, httperr.CodeNotFound, "")
	})

	s.Run("error: 400 for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"status": "archived"}, ownerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "")
	})

	s.Run("error: 400 without a status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{}, ownerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *BookingHandlerTestSuite) TestListMine() {
	s.Run("success: returns the caller's bookings", func() {
		views := []*queries.BookingView{builder.NewBookingBuilder().BuildView(), builder.NewBookingBuilder().BuildView()}
		s.expectLookup(playerToken, s.player)
		s.mockQueries.EXPECT().ListForPlayer(gomock.Any(), s.player.ID(), 10).Return(views, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=10", nil, playerToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 2)
	})

	s.Run("success: a caller without profile has no bookings", func() {
		s.mockProfiles.EXPECT().Lookup(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errors.New("no profile"), errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, playerToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.NotNil(body.Bookings)
		s.Empty(body.Bookings)
	})

	s.Run("error: 400 for a limit out of range", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=500", nil, playerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "")
	})
}

// ================================================================================
// TestListForOwner
// ================================================================================

func (s *BookingHandlerTestSuite) TestListForOwner() {
	s.Run("success: filters are passed through", func() {
		s.expectLookup(ownerToken, s.owner)
		s.mockQueries.EXPECT().ListForOwner(gomock.Any(), s.owner.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, f queries.OwnerBookingFilter) ([]*queries.BookingView, error) {
				s.Require().NotNil(f.Status)
				s.Equal("pending", *f.Status)
				s.Require().NotNil(f.Since)
				s.True(f.Since.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)))
				s.Equal(25, f.Limit)
				return []*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/bookings?status=pending&since=2026-03-01&limit=25", nil, ownerToken)

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Bookings, 1)
	})

	s.Run("error: 403 for a player", func() {
		s.expectLookup(playerToken, s.player)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/bookings", nil, playerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusForbidden, httperr.CodeAccessDenied, "")
	})

	s.Run("error: 400 for a malformed since", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/bookings?since=yesterday", nil, ownerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "")
	})

	s.Run("error: 400 for an unknown status filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/bookings?status=archived", nil, ownerToken)
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, httperr.CodeValidation, "")
	})
}
