package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestBolt(t *testing.T, path string) *BoltStore {
	t.Helper()
	bs, err := NewBoltStore(path)
	require.NoError(t, err)
	return bs
}

// TestBoltStore_RoundTrip verifies that Put followed by Points returns the
// stored value exactly, including the receipt decimals surviving the JSON
// encoding.
func TestBoltStore_RoundTrip(t *testing.T) {
	bs := openTestBolt(t, filepath.Join(t.TempDir(), "receipts.db"))
	defer bs.Close()

	require.NoError(t, bs.Put("id-1", testReceipt(t, "Target"), 31))

	points, err := bs.Points("id-1")
	require.NoError(t, err)
	assert.Equal(t, int64(31), points)
	assert.True(t, bs.Exists("id-1"))
}

// TestBoltStore_Absence verifies the typed not-found error.
func TestBoltStore_Absence(t *testing.T) {
	bs := openTestBolt(t, filepath.Join(t.TempDir(), "receipts.db"))
	defer bs.Close()

	_, err := bs.Points("unknown")
	require.Error(t, err)

	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.False(t, bs.Exists("unknown"))
}

// TestBoltStore_Overwrite verifies that a second Put with the same id
// replaces the record.
func TestBoltStore_Overwrite(t *testing.T) {
	bs := openTestBolt(t, filepath.Join(t.TempDir(), "receipts.db"))
	defer bs.Close()

	require.NoError(t, bs.Put("id-1", testReceipt(t, "Target"), 31))
	require.NoError(t, bs.Put("id-1", testReceipt(t, "Walgreens"), 15))

	points, err := bs.Points("id-1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), points)
}

// TestBoltStore_SurvivesReopen verifies that records persist across a
// close and reopen of the database file.
func TestBoltStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "receipts.db")

	bs := openTestBolt(t, path)
	require.NoError(t, bs.Put("id-1", testReceipt(t, "Target"), 31))
	require.NoError(t, bs.Close())

	reopened := openTestBolt(t, path)
	defer reopened.Close()

	points, err := reopened.Points("id-1")
	require.NoError(t, err)
	assert.Equal(t, int64(31), points)
}
