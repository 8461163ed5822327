package api

import (
	"context"
	"net/http"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/profile"
	reqdto "turf-booking/internal/handler/dto/request"
	resdto "turf-booking/internal/handler/dto/response"
	"turf-booking/internal/handler/httperr"
	"turf-booking/internal/handler/middleware"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/usecase/commands"
	"turf-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	statuses commands.BookingStatusCommands
	profiles commands.ProfileCommands
	q        queries.BookingQueries
}

func NewBookingHandler(
	cmds commands.BookingCommands,
	statuses commands.BookingStatusCommands,
	profiles commands.ProfileCommands,
	q queries.BookingQueries,
) *BookingHandler {
	return &BookingHandler{cmds: cmds, statuses: statuses, profiles: profiles, q: q}
}

// @Summary Create booking
// @Description Reserve a slot and create a pending booking for the caller
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.CreateBookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	identity, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	b, err := h.cmds.Create(c.Request.Context(), req.ToInput(identity))
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, useCaseDetail(err))
		return
	}

	c.Header("Location", "/api/bookings/"+b.ID().String())
	c.JSON(http.StatusCreated, resdto.CreateBookingResponse{
		Success:   true,
		BookingID: b.ID(),
		Booking:   resdto.FromBooking(b),
	})
}

// @Summary List my bookings
// @Description List the caller's bookings, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (1-200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListMine(c *gin.Context) {
	identity, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	var query reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	caller, err := h.profiles.Lookup(c.Request.Context(), identity.ExternalID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			c.JSON(http.StatusOK, resdto.BookingListResponse{Bookings: []*resdto.BookingDetailResponse{}})
			return
		}
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}

	views, err := h.q.ListForPlayer(c.Request.Context(), caller.ID(), query.Limit)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	h.writeList(c, views)
}

// @Summary Get booking
// @Description Get a booking visible to the caller as its player or turf owner
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingDetailResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	identity, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	callerID, err := h.callerID(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), callerID, id)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}

	resp, err := resdto.FromBookingView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Change booking status
// @Description Owner moves a booking along pending -> confirmed -> completed, or cancels it
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "Requested status"
// @Success 200 {object} resdto.StatusChangeResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	identity, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	callerID, err := h.callerID(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}

	b, err := h.statuses.Transition(c.Request.Context(), id, booking.Status(req.Status), callerID)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, useCaseDetail(err))
		return
	}

	c.JSON(http.StatusOK, resdto.StatusChangeResponse{
		Success: true,
		Booking: resdto.FromBooking(b),
	})
}

// @Summary List owner bookings
// @Description Bookings on the caller's turfs, filtered by status and creation time
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending|confirmed|cancelled|completed"
// @Param since query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param limit query int false "Max items (1-200)"
// @Success 200 {object} resdto.BookingListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owner/bookings [get]
func (h *BookingHandler) ListForOwner(c *gin.Context) {
	identity, ok := middleware.MustIdentity(c)
	if !ok {
		return
	}
	var query reqdto.OwnerBookingsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := query.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid since", nil)
		return
	}

	caller, err := h.callerProfile(c.Request.Context(), identity)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	if !caller.IsOwner() {
		httperr.AbortWithUseCaseError(c, errs.Wrapf(errs.ErrAccessDenied, "profile %s is not an owner", caller.ID()), nil)
		return
	}

	views, err := h.q.ListForOwner(c.Request.Context(), caller.ID(), filter)
	if err != nil {
		httperr.AbortWithUseCaseError(c, err, nil)
		return
	}
	h.writeList(c, views)
}

func (h *BookingHandler) writeList(c *gin.Context, views []*queries.BookingView) {
	resp, err := resdto.FromBookingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// A caller without a profile owns no turf.
func (h *BookingHandler) callerProfile(ctx context.Context, identity profile.Identity) (*profile.Profile, error) {
	p, err := h.profiles.Lookup(ctx, identity.ExternalID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, errs.Wrapf(errs.ErrAccessDenied, "no profile for %s", identity.ExternalID)
		}
		return nil, err
	}
	return p, nil
}

// callerID is uuid.Nil for a caller without a profile. uuid.Nil holds and owns
// nothing, so an unknown booking is still reported before access is denied.
func (h *BookingHandler) callerID(ctx context.Context, identity profile.Identity) (uuid.UUID, error) {
	p, err := h.profiles.Lookup(ctx, identity.ExternalID)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return uuid.Nil, nil
		}
		return uuid.Nil, err
	}
	return p.ID(), nil
}

func useCaseDetail(err error) any {
	var te *booking.TransitionError
	if errs.As(err, &te) {
		allowed := booking.AllowedFrom(te.From)
		names := make([]string, len(allowed))
		for i, s := range allowed {
			names[i] = s.String()
		}
		return gin.H{
			"current":   te.From.String(),
			"requested": te.To.String(),
			"allowed":   names,
		}
	}
	if errs.Is(err, errs.ErrValidation) {
		return err.Error()
	}
	return nil
}
