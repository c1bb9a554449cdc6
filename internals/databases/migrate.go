package database

import (
	"embed"
	"log"

	"github.com/golang-migrate/migrate/v4"
	migratePg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations menjalankan semua migrasi SQL yang ter-embed.
// Dipanggil sekali di startup, setelah ConnectDB.
func RunMigrations() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Fatalf("❌ Gagal ambil sql.DB untuk migrasi: %v", err)
	}

	driver, err := migratePg.WithInstance(sqlDB, &migratePg.Config{})
	if err != nil {
		log.Fatalf("❌ Gagal init driver migrasi: %v", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		log.Fatalf("❌ Gagal baca migrasi embed: %v", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		log.Fatalf("❌ Gagal init migrate: %v", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("❌ Migrasi gagal: %v", err)
	}
	log.Println("✅ Migrasi DB selesai.")
}
