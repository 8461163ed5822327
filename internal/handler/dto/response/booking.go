package response

import (
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Date  string `json:"date"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type BookingResponse struct {
	ID        uuid.UUID    `json:"id"`
	TurfID    uuid.UUID    `json:"turfId"`
	PlayerID  uuid.UUID    `json:"playerId"`
	OwnerID   uuid.UUID    `json:"ownerId"`
	SlotID    string       `json:"slotId"`
	Slot      SlotResponse `json:"slot"`
	Amount    int64        `json:"amount"`
	Status    string       `json:"status"`
	QRUsed    bool         `json:"qrUsed"`
	PaymentID *string      `json:"paymentId,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type CreateBookingResponse struct {
	Success   bool             `json:"success"`
	BookingID uuid.UUID        `json:"bookingId"`
	Booking   *BookingResponse `json:"booking"`
}

type BookingDetailResponse struct {
	ID          uuid.UUID    `json:"id"`
	TurfID      uuid.UUID    `json:"turfId"`
	TurfName    string       `json:"turfName"`
	TurfAddress string       `json:"turfAddress,omitempty"`
	PlayerID    uuid.UUID    `json:"playerId"`
	PlayerName  string       `json:"playerName,omitempty"`
	PlayerEmail string       `json:"playerEmail,omitempty"`
	PlayerPhone string       `json:"playerPhone,omitempty"`
	OwnerID     uuid.UUID    `json:"ownerId"`
	SlotID      string       `json:"slotId"`
	Slot        SlotResponse `json:"slot" copier:"-"`
	Amount      int64        `json:"amount"`
	Status      string       `json:"status"`
	QRUsed      bool         `json:"qrUsed"`
	PaymentID   *string      `json:"paymentId,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

type BookingListResponse struct {
	Bookings []*BookingDetailResponse `json:"bookings"`
}

type StatusChangeResponse struct {
	Success bool             `json:"success"`
	Booking *BookingResponse `json:"booking"`
}

func FromBooking(b *booking.Booking) *BookingResponse {
	slot := b.Slot()
	return &BookingResponse{
		ID:       b.ID(),
		TurfID:   b.TurfID(),
		PlayerID: b.PlayerID(),
		OwnerID:  b.OwnerID(),
		SlotID:   b.SlotID(),
		Slot: SlotResponse{
			Date:  slot.DateString(),
			Start: slot.Start(),
			End:   slot.End(),
		},
		Amount:    b.Amount().Int64(),
		Status:    b.Status().String(),
		QRUsed:    b.QRUsed(),
		PaymentID: b.PaymentID(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

func FromBookingView(v *queries.BookingView) (*BookingDetailResponse, error) {
	var resp BookingDetailResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	resp.Slot = SlotResponse{Date: v.Date, Start: v.Start, End: v.End}
	return &resp, nil
}

func FromBookingViews(views []*queries.BookingView) (*BookingListResponse, error) {
	items := make([]*BookingDetailResponse, 0, len(views))
	for _, v := range views {
		item, err := FromBookingView(v)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return &BookingListResponse{Bookings: items}, nil
}
