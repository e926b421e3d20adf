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

// CreateTestClient inserts a client directly, bypassing the API. The license
// number is randomized so tests can reuse display names freely.
func CreateTestClient(t *testing.T, db DBLike, name string, enabled bool) uuid.UUID {
	t.Helper()

	clientID := uuid.New()
	license := "LIC-" + strings.ToUpper(clientID.String()[:8])

	ctx := context.Background()
	_, err := db.Exec(ctx,
		"INSERT INTO clients (id, name, enabled, license_number) VALUES ($1, $2, $3, $4)",
		clientID, name, enabled, license)
	require.NoError(t, err)

	return clientID
}

// CreateTestVehicle inserts an enabled vehicle with a 10,000 km service
// interval and its last service recorded at the current odometer reading.
func CreateTestVehicle(t *testing.T, db DBLike, plate string, odometerKm int64) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()

	ctx := context.Background()
	_, err := db.Exec(ctx,
		`INSERT INTO vehicles (id, plate, make, model, year, enabled, odometer_km, service_interval_km, last_service_odometer_km)
		 VALUES ($1, $2, 'Toyota', 'Corolla', 2023, true, $3, 10000, $3)`,
		vehicleID, plate, odometerKm)
	require.NoError(t, err)

	return vehicleID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table so each subtest starts from a clean slate.
// The statement is built once per process by listing the public schema.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'`)
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
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return nil
}
