// Enrolls an administrator. Admin accounts are created only through this
// tool, the HTTP surface can not create, update or delete them.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/djbookingcom/internal/auth"
	"github.com/2beens/djbookingcom/internal/config"
	"github.com/2beens/djbookingcom/internal/db"
	"github.com/2beens/djbookingcom/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	email := flag.String("email", "", "admin email")
	password := flag.String("password", "", "admin password; random one generated when empty")
	flag.Parse()

	if *email == "" {
		fmt.Println("usage: admin_tool -email <email> [-password <password>]")
		os.Exit(1)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	adminPassword := *password
	if adminPassword == "" {
		adminPassword, err = pkg.GenerateRandomString(16)
		if err != nil {
			log.Fatalf("generate password: %s", err)
		}
		fmt.Printf("generated password: %s\n", adminPassword)
	}

	passwordHash, err := pkg.HashPassword(adminPassword)
	if err != nil {
		log.Fatalf("hash password: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbParams := db.NewDBPoolParams{
		DBHost: cfg.PostgresHost,
		DBPort: cfg.PostgresPort,
		DBName: cfg.PostgresDBName,
	}
	dbPool, err := db.NewDBPool(ctx, dbParams)
	if err != nil {
		log.Fatalf("new db pool: %s", err)
	}
	defer dbPool.Close()

	if err := db.RunMigrations(dbParams.ConnString()); err != nil {
		log.Fatalf("run db migrations: %s", err)
	}

	admin := &auth.Admin{
		ID:           uuid.NewString(),
		Email:        *email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	switch err := auth.NewRepo(dbPool).Add(ctx, admin); {
	case err == nil:
		fmt.Printf("admin %s [%s] created\n", admin.Email, admin.ID)
	case pkg.IsUniqueViolationError(err):
		log.Fatalf("admin %s already exists", admin.Email)
	default:
		log.Fatalf("add admin: %s", err)
	}
}
