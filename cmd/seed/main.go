// Command seed populates the database with a demo user and a few todos for
// local development.
package main

import (
	"context"
	"errors"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"todoapi/internal/config"
	"todoapi/internal/db"
	"todoapi/internal/model"
	"todoapi/internal/repository"
)

const (
	demoEmail    = "demo@example.com"
	demoPassword = "password123"
)

func main() {
	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.User{}, &model.Todo{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	todos := repository.NewTodoRepository(gormDB)

	user, err := users.FindByEmail(ctx, demoEmail)
	switch {
	case err == nil:
		log.Printf("demo user %s already exists (id=%d)", demoEmail, user.ID)
	case errors.Is(err, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}
		user = &model.User{Email: demoEmail, PasswordHash: string(hash)}
		if err := users.Create(ctx, user); err != nil {
			log.Fatalf("create demo user: %v", err)
		}
		log.Printf("created demo user %s (id=%d)", demoEmail, user.ID)
	default:
		log.Fatalf("look up demo user: %v", err)
	}

	existing, err := todos.ListByOwner(ctx, user.ID)
	if err != nil {
		log.Fatalf("list todos: %v", err)
	}
	if len(existing) > 0 {
		log.Printf("demo user already has %d todos, nothing to do", len(existing))
		return
	}

	now := time.Now()
	fixtures := []model.Todo{
		{UserID: user.ID, Title: "Clean room", Priority: model.PriorityLow, DueDate: now.Add(24 * time.Hour)},
		{UserID: user.ID, Title: "Pay rent", Description: "Bank transfer before the 1st", Priority: model.PriorityHigh, DueDate: now.Add(72 * time.Hour)},
		{UserID: user.ID, Title: "Buy groceries", Priority: model.PriorityMedium, DueDate: now.Add(6 * time.Hour)},
	}
	for i := range fixtures {
		if err := todos.Create(ctx, &fixtures[i]); err != nil {
			log.Fatalf("create todo %q: %v", fixtures[i].Title, err)
		}
	}
	log.Printf("created %d demo todos for %s", len(fixtures), demoEmail)
}
