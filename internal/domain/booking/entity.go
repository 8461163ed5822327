package booking

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id        uuid.UUID
	turfID    uuid.UUID
	playerID  uuid.UUID
	ownerID   uuid.UUID
	slotID    string
	slot      SlotSnapshot
	amount    Amount
	status    Status
	qrUsed    bool
	paymentID *string
	createdAt time.Time
	updatedAt time.Time
}

type NewBookingParams struct {
	TurfID   uuid.UUID
	PlayerID uuid.UUID
	OwnerID  uuid.UUID
	SlotID   string
	Slot     SlotSnapshot
	Amount   Amount
	QRUsed   bool
}

// NewBooking starts every booking as pending.
func NewBooking(p NewBookingParams, now time.Time) *Booking {
	return &Booking{
		id:        uuid.New(),
		turfID:    p.TurfID,
		playerID:  p.PlayerID,
		ownerID:   p.OwnerID,
		slotID:    p.SlotID,
		slot:      p.Slot,
		amount:    p.Amount,
		status:    StatusPending,
		qrUsed:    p.QRUsed,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructBooking(
	id, turfID, playerID, ownerID uuid.UUID,
	slotID string,
	slot SlotSnapshot,
	amount Amount,
	status Status,
	qrUsed bool,
	paymentID *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		turfID:    turfID,
		playerID:  playerID,
		ownerID:   ownerID,
		slotID:    slotID,
		slot:      slot,
		amount:    amount,
		status:    status,
		qrUsed:    qrUsed,
		paymentID: paymentID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Transition moves the booking along the status graph in memory. Persisting the
// change and applying the returned effect is the caller's job.
func (b *Booking) Transition(to Status, now time.Time) (Effect, error) {
	effect, err := CheckTransition(b.status, to)
	if err != nil {
		return EffectNone, err
	}
	b.status = to
	b.updatedAt = now
	return effect, nil
}

func (b *Booking) HoldsSlot() bool { return b.status.HoldsSlot() }

func (b *Booking) IsOwnedBy(ownerID uuid.UUID) bool { return b.ownerID == ownerID }

func (b *Booking) IsVisibleTo(profileID uuid.UUID) bool {
	return b.playerID == profileID || b.ownerID == profileID
}

func (b *Booking) ID() uuid.UUID        { return b.id }
func (b *Booking) TurfID() uuid.UUID    { return b.turfID }
func (b *Booking) PlayerID() uuid.UUID  { return b.playerID }
func (b *Booking) OwnerID() uuid.UUID   { return b.ownerID }
func (b *Booking) SlotID() string       { return b.slotID }
func (b *Booking) Slot() SlotSnapshot   { return b.slot }
func (b *Booking) Amount() Amount       { return b.amount }
func (b *Booking) Status() Status       { return b.status }
func (b *Booking) QRUsed() bool         { return b.qrUsed }
func (b *Booking) PaymentID() *string   { return b.paymentID }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }
