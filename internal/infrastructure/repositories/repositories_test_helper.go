package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createSubmissionTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE onboarding_submissions (
		id TEXT PRIMARY KEY,
		session_id TEXT NOT NULL,
		account_type TEXT NOT NULL,
		business_name TEXT NOT NULL,
		email TEXT NOT NULL,
		status TEXT NOT NULL,
		error_message TEXT,
		created_at DATETIME
	);`)
}

func createOTPCodeTable(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE otp_codes (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL,
		code_hash TEXT NOT NULL,
		expires_at DATETIME NOT NULL,
		consumed_at DATETIME,
		created_at DATETIME
	);`)
}
