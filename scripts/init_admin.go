package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hopefoundation/charity-backend/internal/config"
	"github.com/hopefoundation/charity-backend/internal/db"
)

// One-shot bootstrap: connects, migrates and seeds the default admin and
// singleton content rows. Useful when the server first started without a
// reachable database.
func main() {
	envFile := ""
	if _, err := os.Stat(".env"); err == nil {
		envFile = ".env"
	}
	if err := config.Load(envFile); err != nil {
		log.Fatal("failed to load config: ", err)
	}
	cfg := config.Get()

	if err := db.Init(cfg); err != nil {
		log.Fatal("failed to initialize database: ", err)
	}

	var count int64
	if err := db.DB.Model(&db.Admin{}).Count(&count).Error; err != nil {
		log.Fatal("database still unreachable: ", err)
	}

	fmt.Println("database initialized")
	fmt.Printf("admin accounts: %d (default username: %s)\n", count, cfg.AdminUsername)
}
