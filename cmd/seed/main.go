package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"scribe/internal/auth"
	"scribe/internal/cache"
	"scribe/internal/config"
	"scribe/internal/db"
	"scribe/internal/model"
	"scribe/internal/repository"
)

// Common passwords of eight characters or more; shorter entries never pass
// the minimum-length rule, so the corpus skips them.
var breachedPasswords = []string{
	"password",
	"12345678",
	"123456789",
	"qwertyuiop",
	"iloveyou",
	"sunshine",
	"princess",
	"football",
	"baseball",
	"superman",
	"trustno1",
	"password1",
	"welcome1",
	"letmein1",
}

type seedUser struct {
	name     string
	email    string
	password string
}

var seedUsers = []seedUser{
	{"Ada Lovelace", "ada@example.com", "first-program-1843"},
	{"Grace Hopper", "grace@example.com", "nanoseconds-matter"},
	{"Dennis Ritchie", "dennis@example.com", "hello-world-1972"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	digests := make([]string, 0, len(breachedPasswords))
	for _, pw := range breachedPasswords {
		digests = append(digests, auth.Digest(pw))
	}
	if err := cacheClient.SetAdd(ctx, auth.BreachedPasswordsKey, digests...); err != nil {
		log.Printf("Warning: failed to load breached-password corpus: %v", err)
	} else {
		log.Printf("Loaded %d entries into the breached-password corpus", len(digests))
	}

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	for _, su := range seedUsers {
		if _, err := userRepo.FindByEmail(ctx, su.email); err == nil {
			log.Printf("User %s already exists, skipping", su.email)
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(su.password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		user := &model.User{
			Name:         su.name,
			Email:        su.email,
			PasswordHash: string(hash),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", su.email, err)
		}

		post := &model.Post{
			UserID: user.ID,
			Title:  fmt.Sprintf("Hello from %s", su.name),
			Body:   "This is a seeded post.",
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Fatalf("Failed to create post for %s: %v", su.email, err)
		}

		comment := &model.Comment{
			UserID: user.ID,
			PostID: post.ID,
			Body:   "First!",
		}
		if err := commentRepo.Create(ctx, comment); err != nil {
			log.Fatalf("Failed to create comment for %s: %v", su.email, err)
		}

		log.Printf("Seeded user %s with one post and one comment", su.email)
	}

	log.Println("Seed completed")
}
