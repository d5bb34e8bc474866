package ResetJob

import (
	"path/filepath"
	"testing"
	"time"

	"Hearth/Models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hearth.db")
	// Busy timeout so writers racing from separate goroutines queue up
	// instead of failing with SQLITE_BUSY.
	db, err := gorm.Open(sqlite.Open(path+"?_busy_timeout=5000"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Models.Task{}, &Models.ResetRunLog{}))
	return db
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}
