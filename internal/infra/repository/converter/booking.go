package converter

import (
	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/profile"
	"turf-booking/internal/domain/turf"
	"turf-booking/internal/infra/pgsql"
	"turf-booking/internal/pkg/errs"
	"turf-booking/internal/pkg/pgconv"
)

func BookingToInfra(b *booking.Booking) pgsql.Bookings {
	slot := b.Slot()
	return pgsql.Bookings{
		ID:        b.ID(),
		TurfID:    b.TurfID(),
		PlayerID:  b.PlayerID(),
		OwnerID:   b.OwnerID(),
		SlotID:    b.SlotID(),
		SlotDate:  pgconv.DateToPgtype(slot.Date()),
		StartTime: slot.Start(),
		EndTime:   slot.End(),
		Amount:    b.Amount().Int64(),
		Status:    b.Status().String(),
		QrUsed:    b.QRUsed(),
		PaymentID: pgconv.StringPtrToPgtype(b.PaymentID()),
		CreatedAt: pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt: pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

// BookingFromInfra rebuilds the aggregate; a row that fails domain validation is corrupt.
func BookingFromInfra(row pgsql.Bookings) (*booking.Booking, error) {
	slot, err := booking.NewSlotSnapshot(
		pgconv.DateFromPgtype(row.SlotDate).Format(booking.DateLayout),
		row.StartTime,
		row.EndTime,
	)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	amount, err := booking.NewAmount(row.Amount)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, errs.Wrapf(err, "booking %s", row.ID)
	}

	return booking.ReconstructBooking(
		row.ID,
		row.TurfID,
		row.PlayerID,
		row.OwnerID,
		row.SlotID,
		slot,
		amount,
		status,
		row.QrUsed,
		pgconv.StringPtrFromPgtype(row.PaymentID),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}

func SlotFromInfra(row pgsql.TurfSlots) (*turf.Slot, error) {
	window, err := turf.ParseRange(row.StartTime, row.EndTime)
	if err != nil {
		return nil, errs.Wrapf(err, "slot %s/%s", row.TurfID, row.SlotID)
	}
	return turf.ReconstructSlot(row.TurfID, row.SlotID, window, row.Price, row.Available), nil
}

func SlotToInfra(s *turf.Slot) pgsql.CreateTurfSlotParams {
	return pgsql.CreateTurfSlotParams{
		TurfID:    s.TurfID(),
		SlotID:    s.SlotID(),
		StartTime: s.Window().Start().String(),
		EndTime:   s.Window().End().String(),
		Price:     s.Price(),
		Available: s.Available(),
	}
}

func ProfileFromInfra(row pgsql.Profiles) (*profile.Profile, error) {
	role, err := profile.NewRole(row.Role)
	if err != nil {
		return nil, errs.Wrapf(err, "profile %s", row.ID)
	}
	return profile.ReconstructProfile(
		row.ID,
		row.ExternalID,
		role,
		row.Name,
		row.Email,
		row.Phone,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.LastActive),
	), nil
}
