// Command admin bootstraps console operators. There is no signup flow:
// accounts are provisioned from the machine running the database.
//
//	admin adduser -username jo -name "Jo Riya" -role ADMIN -password secret
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/hostelhq/hostelhq/internal/auth"
	authStore "github.com/hostelhq/hostelhq/internal/auth/store"
	"github.com/hostelhq/hostelhq/internal/config"
	"github.com/hostelhq/hostelhq/internal/database"
)

func main() {
	if len(os.Args) < 2 || os.Args[1] != "adduser" {
		fmt.Fprintln(os.Stderr, "usage: admin adduser -username <u> -name <n> -role <ADMIN|SUPERVISOR> -password <p> [-hostel <uuid>]")
		os.Exit(2)
	}

	fs := flag.NewFlagSet("adduser", flag.ExitOnError)

	var (
		username = fs.String("username", "", "login username")
		name     = fs.String("name", "", "display name")
		role     = fs.String("role", string(auth.RoleSupervisor), "operator role")
		password = fs.String("password", "", "plaintext password, hashed before storage")
		hostelID = fs.String("hostel", "", "hostel id, generated when empty")
	)

	_ = fs.Parse(os.Args[2:])

	if *username == "" || *name == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "username, name and password are required")
		os.Exit(2)
	}

	opRole := auth.Role(*role)
	if opRole != auth.RoleAdmin && opRole != auth.RoleSupervisor {
		fmt.Fprintln(os.Stderr, "role must be ADMIN or SUPERVISOR")
		os.Exit(2)
	}

	hostel := uuid.New()

	if *hostelID != "" {
		parsed, err := uuid.Parse(*hostelID)
		if err != nil {
			fmt.Fprintln(os.Stderr, "hostel must be a valid uuid")
			os.Exit(2)
		}

		hostel = parsed
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	hash, err := auth.HashPassword(*password)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	op := &auth.Operator{
		Username:     *username,
		Name:         *name,
		Role:         opRole,
		HostelID:     hostel,
		PasswordHash: hash,
	}

	if err := authStore.New(db).CreateOperator(context.Background(), op); err != nil {
		slog.Error("failed to create operator", "error", err)
		os.Exit(1)
	}

	fmt.Printf("created operator %s (%s)\n", op.Username, op.ID)
}
