// Command promote creates an admin account or promotes an existing user to
// admin, setting a new password. It is used to bootstrap the first admin.
//
// Usage:
//
//	promote --email=admin@example.com --password=secret [--name="Site Admin"]
//
// The DSN is taken from the application config (DATABASE_DSN).
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/mail"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tooldir-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/tooldir-backend/internal/app"
	"github.com/heartmarshall/tooldir-backend/internal/auth"
	"github.com/heartmarshall/tooldir-backend/internal/config"
)

const minPasswordLen = 8

func main() {
	email := flag.String("email", "", "email of the admin account")
	password := flag.String("password", "", "password to set")
	name := flag.String("name", "", "display name (defaults to the email local part)")
	flag.Parse()

	addr, err := mail.ParseAddress(strings.TrimSpace(*email))
	if err != nil || len(*password) < minPasswordLen {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=admin@example.com --password=<at least 8 chars> [--name=...]")
		os.Exit(1)
	}
	if strings.TrimSpace(*name) == "" {
		*name, _, _ = strings.Cut(addr.Address, "@")
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	hash, err := auth.HashPassword(*password, cfg.Auth.BcryptCost)
	if err != nil {
		logger.Error("hash password", slog.String("error", err.Error()))
		os.Exit(1)
	}

	u, err := user.New(pool).UpsertAdmin(ctx, strings.ToLower(addr.Address), strings.TrimSpace(*name), hash, time.Now().UTC())
	if err != nil {
		logger.Error("upsert admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("admin ready", slog.String("user_id", u.ID.String()), slog.String("email", u.Email))
}
