// database/bootstrap.go
package database

import (
	"fmt"
	"log"
	"strings"

	sqlite "github.com/glebarez/sqlite" // CGO-free driver
	"gorm.io/gorm"

	"mycolog/entities"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}

	// Run the owner migration BEFORE AutoMigrate so old databases that tag
	// batches with a bare username column get linked to user rows first.
	if err := migrateBatchesUsernameToOwner(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Batch{},
		&entities.Observation{},
		&entities.Harvest{},
		&entities.GuideDocument{},
		&entities.GuideChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}

	return db
}

// migrateBatchesUsernameToOwner backfills users and batch ownership on
// databases from before the users table existed, where each batch carried a
// plain username text column. The legacy column stays in place (SQLite drops
// are not worth a table rebuild here); new writes only touch user_id.
func migrateBatchesUsernameToOwner(db *gorm.DB) error {
	// does table exist?
	var tbl string
	if err := db.Raw(`SELECT name FROM sqlite_master WHERE type='table' AND name='batches'`).Scan(&tbl).Error; err != nil {
		return fmt.Errorf("check table exist: %w", err)
	}
	if tbl == "" {
		// fresh DB, nothing to do
		return nil
	}

	// inspect columns
	type colInfo struct {
		Cid     int
		Name    string
		Type    string
		NotNull int
		Pk      int
	}
	var cols []colInfo
	if err := db.Raw(`PRAGMA table_info(batches)`).Scan(&cols).Error; err != nil {
		return fmt.Errorf("table_info: %w", err)
	}

	hasUsername, hasUserID := false, false
	for _, c := range cols {
		switch strings.ToLower(c.Name) {
		case "username":
			hasUsername = true
		case "user_id":
			hasUserID = true
		}
	}
	if !hasUsername || hasUserID {
		// nothing legacy to convert
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE,
    created_at DATETIME
);`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`
INSERT OR IGNORE INTO users (username, created_at)
SELECT DISTINCT username, CURRENT_TIMESTAMP FROM batches
WHERE username IS NOT NULL AND username != '';`).Error; err != nil {
			return err
		}
		if err := tx.Exec(`ALTER TABLE batches ADD COLUMN user_id INTEGER`).Error; err != nil {
			return err
		}
		return tx.Exec(`
UPDATE batches SET user_id = (
    SELECT u.user_id FROM users u WHERE u.username = batches.username
);`).Error
	})
}
