package repos

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// MemoryDSN is a named in-memory database shared by every connection of the
// pool. Its content is gone when the process exits.
const MemoryDSN = "file:luxemarket?mode=memory&cache=shared"

// OpenDB opens the session-scoped store behind favorites.
func OpenDB(dsn string) (*sqlx.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// One connection keeps a plain ":memory:" DSN on a single database.
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

CREATE TABLE IF NOT EXISTS favorite_lists(
  id TEXT PRIMARY KEY,
  session_id TEXT UNIQUE NOT NULL,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS favorite_items(
  list_id    TEXT NOT NULL REFERENCES favorite_lists(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL,
  created_at TEXT,
  PRIMARY KEY (list_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}
