package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"hostel-backend/models"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode())
	return dsn, nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hostel_db")

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	)
	return dsn, nil
}

// SeedDatabase fills an empty database with the default hostel profile and a
// starter room layout so a fresh install has something to book against.
func SeedDatabase() {
	var settingCount int64
	DB.Model(&models.HostelSetting{}).Count(&settingCount)
	if settingCount == 0 {
		setting := models.HostelSetting{
			Name: "Hostel",
		}
		if err := DB.Create(&setting).Error; err != nil {
			log.Printf("warning: failed to seed hostel settings: %v", err)
		} else {
			log.Println("Hostel settings seeded")
		}
	}

	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount > 0 {
		return
	}

	layout := []struct {
		name string
		beds []string
	}{
		{"Dorm A", []string{"A1", "A2", "A3", "A4", "A5", "A6"}},
		{"Dorm B", []string{"B1", "B2", "B3", "B4"}},
		{"Private 1", []string{"P1-1", "P1-2"}},
	}

	for _, entry := range layout {
		room := models.Room{RoomName: entry.name, Capacity: len(entry.beds)}
		if err := DB.Create(&room).Error; err != nil {
			log.Printf("warning: failed to seed room %s: %v", entry.name, err)
			continue
		}
		for _, bedName := range entry.beds {
			bed := models.Bed{
				RoomID:  room.ID,
				BedName: bedName,
				Status:  models.BedStatusAvailable,
			}
			if err := DB.Create(&bed).Error; err != nil {
				log.Printf("warning: failed to seed bed %s: %v", bedName, err)
			}
		}
	}
	log.Println("Rooms and beds seeded")
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.HostelSetting{},
		&models.Room{},
		&models.Bed{},
		&models.Booking{},
		&models.BookingRoom{},
		&models.BookingBed{},
		&models.Guest{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
