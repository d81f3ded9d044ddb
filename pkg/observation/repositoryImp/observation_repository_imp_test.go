package repositoryImp

import (
	"fmt"
	"strings"
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"mycolog/entities"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.Batch{}, &entities.Observation{}))
	return db
}

func TestUpsertKeepsOneRowPerDate(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	day := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)

	first, err := r.Upsert(&entities.Observation{
		BatchID:                   1,
		Date:                      day,
		AmbientTemperatureCelsius: 24,
		RelativeHumidityPercent:   80,
		CO2Level:                  "low",
		LightHoursPerDay:          12,
	})
	require.NoError(t, err)

	second, err := r.Upsert(&entities.Observation{
		BatchID:                   1,
		Date:                      day,
		AmbientTemperatureCelsius: 27,
		RelativeHumidityPercent:   88,
		CO2Level:                  "high",
		LightHoursPerDay:          10,
	})
	require.NoError(t, err)

	// second write overwrote the same row
	require.Equal(t, first.ObservationID, second.ObservationID)
	require.InDelta(t, 27, second.AmbientTemperatureCelsius, 1e-9)
	require.InDelta(t, 88, second.RelativeHumidityPercent, 1e-9)
	require.Equal(t, "high", second.CO2Level)

	var count int64
	require.NoError(t, db.Model(&entities.Observation{}).Where("batch_id = ?", 1).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestUpsertDifferentDatesInsertSeparateRows(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	d1 := time.Date(2025, 11, 10, 0, 0, 0, 0, time.UTC)
	d2 := d1.AddDate(0, 0, 1)

	_, err := r.Upsert(&entities.Observation{BatchID: 1, Date: d1, RelativeHumidityPercent: 80})
	require.NoError(t, err)
	_, err = r.Upsert(&entities.Observation{BatchID: 1, Date: d2, RelativeHumidityPercent: 90})
	require.NoError(t, err)
	// same date on another batch is its own row too
	_, err = r.Upsert(&entities.Observation{BatchID: 2, Date: d1, RelativeHumidityPercent: 70})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entities.Observation{}).Count(&count).Error)
	require.EqualValues(t, 3, count)
}

func TestListOrdering(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	base := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	for _, off := range []int{2, 0, 1} {
		_, err := r.Upsert(&entities.Observation{BatchID: 1, Date: base.AddDate(0, 0, off)})
		require.NoError(t, err)
	}

	desc, err := r.ListByBatch(1)
	require.NoError(t, err)
	require.Len(t, desc, 3)
	require.True(t, desc[0].Date.After(desc[1].Date))

	asc, err := r.ByDateAsc(1)
	require.NoError(t, err)
	require.True(t, asc[0].Date.Before(asc[1].Date))
}
