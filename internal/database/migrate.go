package database

import (
	"context"
	"database/sql"
)

// Migrate creates the catalog schema when it does not exist yet.  The
// statements are idempotent so the server can run them on every start.
// Park and trail names are deliberately NOT unique at the database level;
// uniqueness is an application rule checked only at creation time.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS parks (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			state VARCHAR(100) NOT NULL DEFAULT '',
			established DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
			picture MEDIUMBLOB NULL
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS trails (
			id INT AUTO_INCREMENT PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			distance DOUBLE NOT NULL,
			difficulty TINYINT NOT NULL DEFAULT 0,
			park_id INT NOT NULL,
			CONSTRAINT fk_trails_park FOREIGN KEY (park_id) REFERENCES parks (id)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
		`CREATE TABLE IF NOT EXISTS users (
			id INT AUTO_INCREMENT PRIMARY KEY,
			username VARCHAR(64) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			role VARCHAR(16) NOT NULL DEFAULT 'User',
			UNIQUE KEY uq_users_username (username)
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	}
	for _, q := range stmts {
		if _, err := db.ExecContext(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
