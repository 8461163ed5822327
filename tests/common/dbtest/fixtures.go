//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestProfile(t *testing.T, db DBLike, externalID, role string) uuid.UUID {
	t.Helper()

	profileID := uuid.New()
	ctx := context.Background()
	err := db.QueryRow(ctx, `
		INSERT INTO profiles (id, external_id, role, name, email)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (external_id) DO UPDATE SET last_active = now()
		RETURNING id`,
		profileID, externalID, role, "Test "+role, externalID+"@example.com").Scan(&profileID)
	require.NoError(t, err)

	return profileID
}

// CreateTestTurf inserts a turf with hourly slots named slot-HH.
func CreateTestTurf(t *testing.T, db DBLike, ownerID uuid.UUID, openHour, closeHour int) uuid.UUID {
	t.Helper()

	turfID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO turfs (id, owner_id, name, address, price_per_hour) VALUES ($1, $2, $3, $4, $5)",
		turfID, ownerID, "Test Turf", "1 Test Lane", 1200)
	require.NoError(t, err)

	for h := openHour; h < closeHour; h++ {
		_, err := db.Exec(ctx,
			"INSERT INTO turf_slots (turf_id, slot_id, start_time, end_time, price) VALUES ($1, $2, $3, $4, $5)",
			turfID, fmt.Sprintf("slot-%02d", h), fmt.Sprintf("%02d:00", h), fmt.Sprintf("%02d:00", h+1), 1200)
		require.NoError(t, err)
	}

	return turfID
}

func SlotAvailable(t *testing.T, db DBLike, turfID uuid.UUID, slotID string) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(),
		"SELECT available FROM turf_slots WHERE turf_id = $1 AND slot_id = $2", turfID, slotID).Scan(&available)
	require.NoError(t, err)
	return available
}

func CountBookings(t *testing.T, db DBLike, turfID uuid.UUID, slotID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM bookings WHERE turf_id = $1 AND slot_id = $2", turfID, slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
