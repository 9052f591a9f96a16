package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/hopefoundation/charity-backend/internal/config"
	"github.com/hopefoundation/charity-backend/pkg/logger"
)

// DB is the global database handle shared by services.
var DB *gorm.DB

// Init opens the connection pool, verifies reachability and, when the
// database answers, migrates the schema and seeds default rows. An
// unreachable database is logged but does not abort startup: the pool
// retries lazily on the first request once connectivity is back.
func Init(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{DisableAutomaticPing: true})
	if err != nil {
		return err
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	if err := sqlDB.Ping(); err != nil {
		logger.Error("database unreachable, starting anyway", "driver", cfg.DBDriver, "error", err.Error())
		return nil
	}
	logger.Info("database connected", "driver", cfg.DBDriver)

	if err := Migrate(DB); err != nil {
		return err
	}
	return seedDefaults(cfg)
}

// Migrate creates or updates the eight content tables.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&Admin{},
		&HomeContent{},
		&Cause{},
		&GalleryImage{},
		&Donation{},
		&Post{},
		&SiteSettings{},
		&ContactMessage{},
	)
}

// seedDefaults inserts the bootstrap admin and the singleton content rows
// when their tables are empty.
func seedDefaults(cfg *config.Config) error {
	if err := EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword, cfg.AdminEmail); err != nil {
		return err
	}

	var homeCount int64
	if err := DB.Model(&HomeContent{}).Count(&homeCount).Error; err != nil {
		return err
	}
	if homeCount == 0 {
		if err := DB.Create(&HomeContent{
			HeroTitle:         "Transforming Lives, One Step at a Time",
			HeroTagline:       "Together, we can bring hope, education, and nourishment to those who need it most",
			HeroImage:         "images/hero-image.jpg",
			PeopleHelped:      15000,
			EventsDone:        250,
			Volunteers:        500,
			CommunitiesServed: 45,
			IntroTitle:        "Building a Better Tomorrow",
			IntroText:         "Hope Foundation is a non-profit organization dedicated to empowering underprivileged communities through education, nutrition, and healthcare. Since our inception, we have been committed to creating lasting change and breaking the cycle of poverty.",
		}).Error; err != nil {
			return err
		}
	}

	var settingsCount int64
	if err := DB.Model(&SiteSettings{}).Count(&settingsCount).Error; err != nil {
		return err
	}
	if settingsCount == 0 {
		if err := DB.Create(&SiteSettings{
			SiteName:       "Hope Foundation",
			Tagline:        "Transforming Lives Together",
			ContactEmail:   "info@hopefoundation.org",
			ContactPhone:   "+1 (555) 123-4567",
			ContactAddress: "123 Hope Street, City, State",
		}).Error; err != nil {
			return err
		}
	}

	return nil
}
