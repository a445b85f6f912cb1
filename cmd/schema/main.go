// Command schema applies the gallery tables and constraints to the store's
// Postgres database. Safe to re-run; every statement is idempotent.
//
// The serving path never touches Postgres directly (it goes through the
// PostgREST API), but the dedup guarantee lives here: the unique index on
// (name, species, student_id) is what turns a repeated submission into an
// insert conflict instead of a second canonical tree.
package main

import (
	"database/sql"
	"log"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var statements = []string{
	`CREATE EXTENSION IF NOT EXISTS pgcrypto`,

	`CREATE TABLE IF NOT EXISTS trees (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		name text NOT NULL,
		species text NOT NULL,
		description text NOT NULL DEFAULT '',
		image_url text NOT NULL DEFAULT '',
		css_style text NOT NULL DEFAULT '',
		student_id text NOT NULL
	)`,

	// No foreign keys on tree_id: the cascade is the purge workflow's job,
	// and ratings against unknown trees are accepted on purpose.
	`CREATE TABLE IF NOT EXISTS duplicates (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		tree_id uuid NOT NULL,
		name text NOT NULL,
		species text NOT NULL,
		description text NOT NULL DEFAULT '',
		image_url text NOT NULL DEFAULT '',
		css_style text NOT NULL DEFAULT '',
		student_id text NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS ratings (
		id uuid PRIMARY KEY DEFAULT gen_random_uuid(),
		tree_id uuid NOT NULL,
		student_id text NOT NULL,
		rating numeric NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS trees_dedup_key
		ON trees (name, species, student_id)`,
}

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Fatalf("apply schema: %v\nstatement:\n%s", err, stmt)
		}
	}
	log.Println("schema applied")
}
