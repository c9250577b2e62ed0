package flatfile_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/shift-engine/shift"
	"github.com/warp/shift-engine/store/flatfile"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) (*flatfile.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shifts.txt")
	return flatfile.New(path, shift.DefaultConfig()), path
}

func date(t *testing.T, s string) shift.Date {
	t.Helper()
	d, err := shift.ParseDate(s)
	require.NoError(t, err)
	return d
}

func newShift(t *testing.T, driverID, day, start, end string) shift.NewShift {
	t.Helper()
	return shift.NewShift{
		DriverID:   driverID,
		DriverName: "Dana",
		Date:       date(t, day),
		StartTime:  start,
		EndTime:    end,
	}
}

// =============================================================================
// APPEND
// =============================================================================

func TestAppend_DerivesAllFields(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	rec, err := store.Append(ctx, newShift(t, "d1", "2025-05-15", "8:00:00 am", "5:00:00 pm"))
	require.NoError(t, err)

	assert.Equal(t, "9:00:00", rec.Duration.String())
	assert.Equal(t, "0:00:00", rec.Idle.String())
	assert.Equal(t, "9:00:00", rec.Active.String())
	assert.True(t, rec.MetQuota, "9h clears the ordinary 8h24m minimum")
	assert.False(t, rec.HasBonus, "bonus always starts false")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"d1,Dana,2025-05-15,8:00:00 am,5:00:00 pm,9:00:00,0:00:00,9:00:00,true,false\n",
		string(data))
}

func TestAppend_ActiveIsDurationMinusIdle(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	// 7am-11pm: one idle hour on each side of the delivery window
	rec, err := store.Append(ctx, newShift(t, "d1", "2025-05-15", "7:00:00 am", "11:00:00 pm"))
	require.NoError(t, err)

	assert.Equal(t, rec.Duration-rec.Idle, rec.Active)
	assert.Equal(t, 2*shift.Hour, rec.Idle)
}

func TestAppend_DuplicateDriverDateRejectedWithoutWrite(t *testing.T) {
	// GIVEN: a recorded shift for (d1, 2025-05-15)
	// WHEN: appending another shift for the same driver and date
	// THEN: the append is rejected softly and the store is unchanged

	store, path := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, newShift(t, "d1", "2025-05-15", "8:00:00 am", "5:00:00 pm"))
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	rec, err := store.Append(ctx, newShift(t, "d1", "2025-05-15", "9:00:00 am", "6:00:00 pm"))
	assert.Nil(t, rec)
	assert.ErrorIs(t, err, shift.ErrDuplicateShift)

	var dupErr *shift.DuplicateShiftError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, "d1", dupErr.DriverID)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "rejected append must not touch the file")

	records, err := store.Records(ctx)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestAppend_KeepsStoreSortedByDate(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, day := range []string{"2025-05-20", "2025-05-10", "2025-05-15", "2025-04-30"} {
		_, err := store.Append(ctx, newShift(t, "d-"+day, day, "8:00:00 am", "5:00:00 pm"))
		require.NoError(t, err)
	}

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i := 1; i < len(records); i++ {
		assert.False(t, records[i].Date.Before(records[i-1].Date),
			"store must be ascending by date")
	}
}

func TestAppend_SortIsStableForEqualDates(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, newShift(t, "first", "2025-05-15", "8:00:00 am", "5:00:00 pm"))
	require.NoError(t, err)
	_, err = store.Append(ctx, newShift(t, "second", "2025-05-15", "8:00:00 am", "5:00:00 pm"))
	require.NoError(t, err)

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "first", records[0].DriverID, "equal dates keep insertion order")
	assert.Equal(t, "second", records[1].DriverID)
}

func TestAppend_MalformedClockRejected(t *testing.T) {
	store, path := newTestStore(t)

	_, err := store.Append(context.Background(), newShift(t, "d1", "2025-05-15", "whenever", "5:00:00 pm"))
	assert.ErrorIs(t, err, shift.ErrInvalidClock)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "failed append must not create the file")
}

// =============================================================================
// BONUS UPDATE
// =============================================================================

func TestSetBonus_UpdatesMatchingRecord(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, newShift(t, "d1", "2025-05-15", "8:00:00 am", "5:00:00 pm"))
	require.NoError(t, err)

	require.NoError(t, store.SetBonus(ctx, "d1", date(t, "2025-05-15"), true))

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].HasBonus)

	// And back again
	require.NoError(t, store.SetBonus(ctx, "d1", date(t, "2025-05-15"), false))
	records, err = store.Records(ctx)
	require.NoError(t, err)
	assert.False(t, records[0].HasBonus)
}

func TestSetBonus_MissingRecordLeavesFileByteIdentical(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	_, err := store.Append(ctx, newShift(t, "d1", "2025-05-15", "8:00:00 am", "5:00:00 pm"))
	require.NoError(t, err)
	before, err := os.ReadFile(path)
	require.NoError(t, err)
	info, err := os.Stat(path)
	require.NoError(t, err)

	require.NoError(t, store.SetBonus(ctx, "d9", date(t, "2025-05-15"), true))
	require.NoError(t, store.SetBonus(ctx, "d1", date(t, "2025-06-01"), true))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	afterInfo, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, info.ModTime(), afterInfo.ModTime(), "no rewrite when nothing matched")
}

func TestSetBonus_MissingFileIsNoOp(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.SetBonus(context.Background(), "d1", date(t, "2025-05-15"), true))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "SetBonus must not create the file")
}

// =============================================================================
// MALFORMED LINE TOLERANCE
// =============================================================================

func TestShortLines_SkippedByReadersPreservedByRewrite(t *testing.T) {
	store, path := newTestStore(t)
	ctx := context.Background()

	short := "legacy,row,with-too-few-fields"
	full := "d1,Dana,2025-05-15,8:00:00 am,5:00:00 pm,9:00:00,0:00:00,9:00:00,true,false"
	require.NoError(t, os.WriteFile(path, []byte(short+"\n"+full+"\n"), 0o644))

	records, err := store.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1, "short line is skipped on read")
	assert.Equal(t, "d1", records[0].DriverID)

	// A bonus rewrite passes the short line through verbatim
	require.NoError(t, store.SetBonus(ctx, "d1", date(t, "2025-05-15"), true))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), short), "short line survives the rewrite")
	assert.True(t, strings.Contains(string(data), "true,true"), "bonus field updated")
}

func TestRecords_MissingFileReadsEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	records, err := store.Records(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)
}
