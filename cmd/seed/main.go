package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"noticeboard/internal/config"
	"noticeboard/internal/db"
	"noticeboard/internal/model"
	"noticeboard/internal/repository"
)

// Seeds a development database with an initial admin and a handful of
// announcements and events. Safe to re-run: the admin is reused if it
// already exists.
func main() {
	username := flag.String("username", "admin", "username of the seeded admin")
	password := flag.String("password", "changeme", "password of the seeded admin")
	flag.Parse()

	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}, &model.Announcement{}, &model.Event{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	adminRepo := repository.NewAdminRepository(gormDB)

	admin, err := seedAdmin(ctx, adminRepo, *username, *password)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}
	log.Printf("Admin %q ready (id=%d)", admin.Username, admin.ID)

	announcementRepo := repository.NewAnnouncementRepository(gormDB)
	for _, a := range sampleAnnouncements(admin.ID) {
		if err := announcementRepo.Create(ctx, &a); err != nil {
			log.Fatalf("Failed to seed announcement %q: %v", a.Title, err)
		}
	}

	eventRepo := repository.NewEventRepository(gormDB)
	for _, e := range sampleEvents(admin.ID) {
		if err := eventRepo.Create(ctx, &e); err != nil {
			log.Fatalf("Failed to seed event %q: %v", e.Title, err)
		}
	}

	log.Println("Seed completed successfully!")
}

// seedAdmin creates the admin or returns the existing row.
func seedAdmin(ctx context.Context, repo repository.AdminRepository, username, password string) (*model.Admin, error) {
	existing, err := repo.FindByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{Username: username, PasswordHash: string(hash)}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func sampleAnnouncements(adminID uint) []model.Announcement {
	return []model.Announcement{
		{Title: "Welcome", Content: "The site is live.", Category: "general", AdminID: adminID},
		{Title: "Maintenance window", Content: "Scheduled downtime Sunday 02:00-04:00 UTC.", Category: "maintenance", AdminID: adminID},
		{Title: "New calendar", Content: "Upcoming events are now listed on the events page.", Category: "general", AdminID: adminID},
	}
}

func sampleEvents(adminID uint) []model.Event {
	nextMonth := time.Now().AddDate(0, 1, 0)
	date := func(day int) string {
		return time.Date(nextMonth.Year(), nextMonth.Month(), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
	}
	return []model.Event{
		{Title: "Community meetup", Description: "Monthly get-together.", EventDate: date(5), EventTime: "18:30", Location: "Main hall", AdminID: adminID},
		{Title: "Board meeting", Description: "Open session.", EventDate: date(12), EventTime: "10:00", Location: "Room 2", AdminID: adminID},
		{Title: "Open day", EventDate: date(20), Location: "Campus", AdminID: adminID},
	}
}
