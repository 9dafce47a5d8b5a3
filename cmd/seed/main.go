package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/devmarq/bookmarkd/config"
	"github.com/devmarq/bookmarkd/pkg/helpers"
)

// Seeds a demo user with a couple of bookmarks for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "demo@bookmarkd.local"
	password := "demo1234"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, first_name, last_name)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE SET updated_at = now()
		RETURNING id
	`, email, hash, "Demo", "User").Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}

	seedBookmarks := []struct {
		title, link string
	}{
		{"Go", "https://go.dev"},
		{"Gin", "https://gin-gonic.com"},
	}
	for _, b := range seedBookmarks {
		if _, err := db.Exec(`
			INSERT INTO bookmarks (user_id, title, link)
			SELECT $1, $2, $3
			WHERE NOT EXISTS (
				SELECT 1 FROM bookmarks WHERE user_id = $1 AND link = $3
			)
		`, id, b.title, b.link); err != nil {
			log.Fatalf("failed to seed bookmark %q: %v", b.title, err)
		}
	}

	fmt.Printf("seeded user: id=%d email=%s password=%s\n", id, email, password)
}
