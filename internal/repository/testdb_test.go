package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every connection to :memory: is a separate database
	sqlDB.SetMaxOpenConns(1)

	// Tables are created by hand for SQLite compatibility (no uuid or jsonb types)
	statements := []string{
		`CREATE TABLE projects (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			readme TEXT,
			created_by TEXT NOT NULL,
			is_closed BOOLEAN NOT NULL DEFAULT 0,
			closed_at DATETIME
		)`,
		`CREATE TABLE project_members (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'read',
			invitation_status TEXT NOT NULL DEFAULT 'invited',
			invited_by TEXT,
			invited_at DATETIME,
			joined_at DATETIME,
			UNIQUE (project_id, user_id)
		)`,
		`CREATE TABLE users (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT,
			description TEXT,
			avatar_url TEXT,
			links TEXT,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,
		`CREATE TABLE field_options (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			project_id TEXT NOT NULL,
			field_type TEXT NOT NULL,
			label TEXT NOT NULL,
			color TEXT NOT NULL,
			description TEXT,
			display_order INTEGER NOT NULL DEFAULT 0,
			task_limit INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE tasks (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			project_id TEXT NOT NULL,
			status_id TEXT NOT NULL,
			status_position REAL NOT NULL DEFAULT 0,
			title TEXT NOT NULL,
			description TEXT,
			created_by TEXT NOT NULL,
			size_id TEXT,
			priority_id TEXT
		)`,
		`CREATE TABLE task_assignees (
			id TEXT PRIMARY KEY,
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL,
			task_id TEXT NOT NULL,
			user_id TEXT NOT NULL,
			UNIQUE (task_id, user_id)
		)`,
		`CREATE TABLE task_labels (
			task_id TEXT NOT NULL,
			label_id TEXT NOT NULL,
			PRIMARY KEY (task_id, label_id)
		)`,
	}
	for _, stmt := range statements {
		if err := db.Exec(stmt).Error; err != nil {
			t.Fatalf("failed to create table: %v", err)
		}
	}

	return db
}
