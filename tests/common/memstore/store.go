//go:build unit || e2e

// Package memstore is an in-memory stand-in for the Postgres repositories.
// Slot claims are conditional under one mutex, mirroring the single
// conditional UPDATE of the real store. Transactions are serialized and a
// failed one restores bookings and outbox rows.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"turf-booking/internal/domain/booking"
	"turf-booking/internal/domain/profile"
	"turf-booking/internal/domain/turf"
	"turf-booking/internal/infra"
	"turf-booking/internal/usecase/queries"
	"turf-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type slotKey struct {
	turfID uuid.UUID
	slotID string
}

type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex

	turfs    map[uuid.UUID]*turf.Turf
	slots    map[slotKey]*turf.Slot
	bookings map[uuid.UUID]*booking.Booking
	profiles map[string]*profile.Profile
	outbox   []*outboxRow
	nextID   int64

	// Failure injection. Set before the code under test runs.
	ClaimErr        error
	ReleaseErr      error
	InsertErr       error
	EnqueueErr      error
	UpdateStatusErr error
	UpsertErr       error
	// BeforeUpdateStatus runs inside the transaction, before the compare-and-set.
	BeforeUpdateStatus func(id uuid.UUID)

	releaseCalls int
}

type outboxRow struct {
	event       shared.OutboxEvent
	published   bool
	publishedAt time.Time
	lastError   string
}

func New() *Store {
	return &Store{
		turfs:    make(map[uuid.UUID]*turf.Turf),
		slots:    make(map[slotKey]*turf.Slot),
		bookings: make(map[uuid.UUID]*booking.Booking),
		profiles: make(map[string]*profile.Profile),
	}
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, pgx.ErrNoRows, infra.KindNotFound)
}

// ---------------------------------------------------------------------------
// seeding and inspection
// ---------------------------------------------------------------------------

func (s *Store) AddTurf(t *turf.Turf, slots ...*turf.Slot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turfs[t.ID()] = t
	for _, sl := range slots {
		s.slots[slotKey{sl.TurfID(), sl.SlotID()}] = sl
	}
}

func (s *Store) AddProfile(p *profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ExternalID()] = p
}

func (s *Store) AddBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = cloneBooking(b)
}

func (s *Store) SlotAvailable(turfID uuid.UUID, slotID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl, ok := s.slots[slotKey{turfID, slotID}]
	return ok && sl.Available()
}

// SetSlotAvailable forces the flag, bypassing the conditional write.
func (s *Store) SetSlotAvailable(turfID uuid.UUID, slotID string, available bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := slotKey{turfID, slotID}
	if sl, ok := s.slots[k]; ok {
		s.slots[k] = turf.ReconstructSlot(sl.TurfID(), sl.SlotID(), sl.Window(), sl.Price(), available)
	}
}

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, false
	}
	return cloneBooking(b), true
}

func (s *Store) Bookings() []*booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*booking.Booking, 0, len(s.bookings))
	for _, b := range s.bookings {
		out = append(out, cloneBooking(b))
	}
	return out
}

// HoldingCount counts bookings whose status keeps the slot claimed.
func (s *Store) HoldingCount(turfID uuid.UUID, slotID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, b := range s.bookings {
		if b.TurfID() == turfID && b.SlotID() == slotID && b.HoldsSlot() {
			n++
		}
	}
	return n
}

func (s *Store) OutboxEvents() []shared.OutboxEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.OutboxEvent, 0, len(s.outbox))
	for _, r := range s.outbox {
		out = append(out, r.event)
	}
	return out
}

func (s *Store) PublishedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.outbox {
		if r.published {
			n++
		}
	}
	return n
}

func (s *Store) LastError(eventID int64) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.outbox {
		if r.event.ID == eventID {
			return r.lastError
		}
	}
	return ""
}

func (s *Store) ReleaseCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.releaseCalls
}

// ---------------------------------------------------------------------------
// unit of work
// ---------------------------------------------------------------------------

func (s *Store) UoW() *UoW {
	return &UoW{s: s}
}

type UoW struct {
	s *Store
}

func (u *UoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	u.s.txMu.Lock()
	defer u.s.txMu.Unlock()

	u.s.mu.Lock()
	savedBookings := make(map[uuid.UUID]*booking.Booking, len(u.s.bookings))
	for id, b := range u.s.bookings {
		savedBookings[id] = cloneBooking(b)
	}
	savedOutbox := make([]*outboxRow, len(u.s.outbox))
	for i, r := range u.s.outbox {
		cp := *r
		savedOutbox[i] = &cp
	}
	u.s.mu.Unlock()

	if err := fn(ctx, &tx{s: u.s}); err != nil {
		u.s.mu.Lock()
		u.s.bookings = savedBookings
		u.s.outbox = savedOutbox
		u.s.mu.Unlock()
		return err
	}
	return nil
}

func (u *UoW) Bookings() shared.BookingRepository {
	return &BookingRepo{s: u.s}
}

type tx struct {
	s *Store
}

func (t *tx) Bookings() shared.BookingRepository { return &BookingRepo{s: t.s} }
func (t *tx) Outbox() shared.OutboxRepository    { return &OutboxRepo{s: t.s} }
func (t *tx) Profiles() shared.ProfileRepository { return t.s.Profiles() }
func (t *tx) Turfs() shared.TurfRepository       { return &TurfRepo{s: t.s} }

// ---------------------------------------------------------------------------
// slots
// ---------------------------------------------------------------------------

func (s *Store) Slots() *SlotRepo {
	return &SlotRepo{s: s}
}

type SlotRepo struct {
	s *Store
}

func (r *SlotRepo) Claim(_ context.Context, turfID uuid.UUID, slotID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.ClaimErr != nil {
		return false, infra.WrapRepoErr("failed to claim slot", r.s.ClaimErr, infra.KindDBFailure)
	}
	k := slotKey{turfID, slotID}
	sl, ok := r.s.slots[k]
	if !ok || !sl.Available() {
		return false, nil
	}
	r.s.slots[k] = turf.ReconstructSlot(sl.TurfID(), sl.SlotID(), sl.Window(), sl.Price(), false)
	return true, nil
}

func (r *SlotRepo) Release(_ context.Context, turfID uuid.UUID, slotID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.releaseCalls++
	if r.s.ReleaseErr != nil {
		return false, infra.WrapRepoErr("failed to release slot", r.s.ReleaseErr, infra.KindDBFailure)
	}
	k := slotKey{turfID, slotID}
	sl, ok := r.s.slots[k]
	if !ok {
		return false, nil
	}
	r.s.slots[k] = turf.ReconstructSlot(sl.TurfID(), sl.SlotID(), sl.Window(), sl.Price(), true)
	return true, nil
}

func (r *SlotRepo) FindSlot(_ context.Context, turfID uuid.UUID, slotID string) (*turf.Slot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.slots[slotKey{turfID, slotID}]
	if !ok {
		return nil, notFound("slot not found")
	}
	return sl, nil
}

func (r *SlotRepo) TurfOwner(_ context.Context, turfID uuid.UUID) (uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t, ok := r.s.turfs[turfID]
	if !ok {
		return uuid.Nil, notFound("turf not found")
	}
	return t.OwnerID(), nil
}

// ---------------------------------------------------------------------------
// bookings
// ---------------------------------------------------------------------------

type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) Insert(_ context.Context, b *booking.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.InsertErr != nil {
		return infra.WrapRepoErr("failed to insert booking", r.s.InsertErr)
	}
	if _, ok := r.s.slots[slotKey{b.TurfID(), b.SlotID()}]; !ok {
		return infra.WrapRepoErr("failed to insert booking", nil, infra.KindForeignKeyViolated)
	}
	for _, other := range r.s.bookings {
		if other.TurfID() == b.TurfID() && other.SlotID() == b.SlotID() && other.HoldsSlot() {
			return infra.WrapRepoErr("failed to insert booking", &pgconn.PgError{
				Code:           "23505",
				ConstraintName: infra.LiveSlotConstraint,
			})
		}
	}
	r.s.bookings[b.ID()] = cloneBooking(b)
	return nil
}

func (r *BookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, notFound("booking not found")
	}
	return cloneBooking(b), nil
}

func (r *BookingRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to booking.Status, at time.Time) (bool, error) {
	if hook := r.s.BeforeUpdateStatus; hook != nil {
		hook(id)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.UpdateStatusErr != nil {
		return false, infra.WrapRepoErr("failed to update booking status", r.s.UpdateStatusErr)
	}
	b, ok := r.s.bookings[id]
	if !ok || b.Status() != from {
		return false, nil
	}
	r.s.bookings[id] = withStatus(b, to, at)
	return true, nil
}

// ForceStatus writes a status outside any transaction, as a concurrent writer would.
func (s *Store) ForceStatus(id uuid.UUID, to booking.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.bookings[id]; ok {
		s.bookings[id] = withStatus(b, to, b.UpdatedAt())
	}
}

func (r *BookingRepo) ListStalePending(_ context.Context, createdBefore time.Time, limit int) ([]*booking.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*booking.Booking
	for _, b := range r.s.bookings {
		if b.Status() == booking.StatusPending && b.CreatedAt().Before(createdBefore) {
			out = append(out, cloneBooking(b))
		}
	}
	sortByCreated(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// availability reads
// ---------------------------------------------------------------------------

func (s *Store) Availability() *AvailabilityReader {
	return &AvailabilityReader{s: s}
}

// AvailabilityReader serves the slot flag and the holding bookings as two
// separate reads, like the Postgres read store.
type AvailabilityReader struct {
	s *Store
}

func (r *AvailabilityReader) FindSlot(_ context.Context, turfID uuid.UUID, slotID string) (*queries.SlotView, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	sl, ok := r.s.slots[slotKey{turfID, slotID}]
	if !ok {
		return nil, notFound("slot not found")
	}
	return &queries.SlotView{
		TurfID:    sl.TurfID(),
		SlotID:    sl.SlotID(),
		Start:     sl.Window().Start().String(),
		End:       sl.Window().End().String(),
		Price:     sl.Price(),
		Available: sl.Available(),
	}, nil
}

func (r *AvailabilityReader) HoldingBookingIDs(_ context.Context, turfID uuid.UUID, slotID string) ([]uuid.UUID, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var held []*booking.Booking
	for _, b := range r.s.bookings {
		if b.TurfID() == turfID && b.SlotID() == slotID && containsStatus(booking.HoldingStatuses(), b.Status()) {
			held = append(held, b)
		}
	}
	sortByCreated(held)
	ids := make([]uuid.UUID, len(held))
	for i, b := range held {
		ids[i] = b.ID()
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// profiles
// ---------------------------------------------------------------------------

func (s *Store) Profiles() *ProfileRepo {
	return &ProfileRepo{s: s}
}

type ProfileRepo struct {
	s *Store
}

func (r *ProfileRepo) Upsert(_ context.Context, p *profile.Profile) (*profile.Profile, bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.UpsertErr != nil {
		return nil, false, infra.WrapRepoErr("failed to upsert profile", r.s.UpsertErr, infra.KindDBFailure)
	}
	if existing, ok := r.s.profiles[p.ExternalID()]; ok {
		return existing, false, nil
	}
	r.s.profiles[p.ExternalID()] = p
	return p, true, nil
}

func (r *ProfileRepo) FindByExternalID(_ context.Context, externalID string) (*profile.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.profiles[externalID]
	if !ok {
		return nil, notFound("profile not found")
	}
	return p, nil
}

// ---------------------------------------------------------------------------
// outbox
// ---------------------------------------------------------------------------

type OutboxRepo struct {
	s *Store
}

func (r *OutboxRepo) Enqueue(_ context.Context, event shared.BookingEvent) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.EnqueueErr != nil {
		return infra.WrapRepoErr("failed to enqueue booking event", r.s.EnqueueErr)
	}
	r.s.nextID++
	r.s.outbox = append(r.s.outbox, &outboxRow{event: shared.OutboxEvent{
		ID:        r.s.nextID,
		BookingID: event.BookingID,
		Type:      event.Type,
		Payload:   event.Payload,
		CreatedAt: event.OccurredAt,
	}})
	return nil
}

func (r *OutboxRepo) ClaimUnpublished(_ context.Context, limit, maxAttempts int) ([]*shared.OutboxEvent, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*shared.OutboxEvent
	for _, row := range r.s.outbox {
		if row.published || row.event.Attempts >= maxAttempts {
			continue
		}
		ev := row.event
		out = append(out, &ev)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (r *OutboxRepo) MarkPublished(_ context.Context, id int64, at time.Time) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.outbox {
		if row.event.ID == id {
			row.published = true
			row.publishedAt = at
			return nil
		}
	}
	return notFound("booking event not found")
}

func (r *OutboxRepo) MarkFailed(_ context.Context, id int64, reason string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, row := range r.s.outbox {
		if row.event.ID == id {
			row.event.Attempts++
			row.lastError = reason
			return nil
		}
	}
	return notFound("booking event not found")
}

// ---------------------------------------------------------------------------
// turfs
// ---------------------------------------------------------------------------

type TurfRepo struct {
	s *Store
}

func (r *TurfRepo) Create(_ context.Context, t *turf.Turf, slots []*turf.Slot) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.turfs[t.ID()] = t
	for _, sl := range slots {
		r.s.slots[slotKey{sl.TurfID(), sl.SlotID()}] = sl
	}
	return nil
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func cloneBooking(b *booking.Booking) *booking.Booking {
	return withStatus(b, b.Status(), b.UpdatedAt())
}

func withStatus(b *booking.Booking, status booking.Status, updatedAt time.Time) *booking.Booking {
	return booking.ReconstructBooking(
		b.ID(), b.TurfID(), b.PlayerID(), b.OwnerID(),
		b.SlotID(),
		b.Slot(),
		b.Amount(),
		status,
		b.QRUsed(),
		b.PaymentID(),
		b.CreatedAt(), updatedAt,
	)
}

func containsStatus(statuses []booking.Status, s booking.Status) bool {
	for _, st := range statuses {
		if st == s {
			return true
		}
	}
	return false
}

func sortByCreated(bs []*booking.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		return bs[i].CreatedAt().Before(bs[j].CreatedAt())
	})
}
