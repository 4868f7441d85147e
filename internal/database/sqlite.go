package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/gevsen/Tg-bot/internal/config"
	"github.com/gevsen/Tg-bot/internal/logger"
)

type sqliteDB struct {
	db     *sql.DB
	logger logger.Logger
}

func NewSQLiteDB(cfg *config.Config, log logger.Logger) (Database, error) {
	db, err := sql.Open("sqlite", cfg.GetDatabaseDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.WithFields(logger.Fields{
		"DSN": cfg.GetDatabaseDSN(),
	}).Debug("Database opened")

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return &sqliteDB{db: db, logger: log}, nil
}

func (s *sqliteDB) GetUser(userID int64) (*User, error) {
	user := &User{}
	err := s.db.QueryRow(
		"SELECT id, first_name, username, created_at FROM users WHERE id = ?",
		userID,
	).Scan(
		&user.ID,
		&user.FirstName,
		&user.Username,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *sqliteDB) SaveUser(user User) error {
	_, err := s.db.Exec(`
		INSERT INTO users (id, first_name, username)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			first_name = excluded.first_name,
			username = excluded.username,
			updated_at = CURRENT_TIMESTAMP
	`, user.ID, user.FirstName, user.Username)
	return err
}

func (s *sqliteDB) Close() error {
	return s.db.Close()
}
