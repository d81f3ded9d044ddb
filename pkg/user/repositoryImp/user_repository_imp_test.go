package repositoryImp

import (
	"fmt"
	"strings"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&entities.User{}))
	return db
}

func TestFindOrCreateIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	first, err := r.FindOrCreate("dhanush")
	require.NoError(t, err)
	require.NotZero(t, first.UserID)

	second, err := r.FindOrCreate("dhanush")
	require.NoError(t, err)
	require.Equal(t, first.UserID, second.UserID)

	var count int64
	require.NoError(t, db.Model(&entities.User{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestFindOrCreateDistinctUsernames(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	a, err := r.FindOrCreate("a")
	require.NoError(t, err)
	b, err := r.FindOrCreate("b")
	require.NoError(t, err)
	require.NotEqual(t, a.UserID, b.UserID)
}

func TestFindByUsernameMissing(t *testing.T) {
	db := openTestDB(t)
	r := New(db)

	_, err := r.FindByUsername("ghost")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
