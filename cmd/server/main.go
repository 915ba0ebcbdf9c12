package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"factory-backend/internal/backup"
	"factory-backend/internal/config"
	"factory-backend/internal/db"
	"factory-backend/internal/server"

	"github.com/joho/godotenv"
)

// simple middleware chain
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

var (
	migrateOnlyFlag = flag.Bool("migrate-only", false, "Run DB migrations and exit")
	backupFlag      = flag.Bool("backup", false, "Create one database backup and exit")
)

func main() {
	flag.Parse()
	_ = godotenv.Load()
	cfg := config.Load()

	if *migrateOnlyFlag {
		if err := db.RunSQLMigrations(db.NormalizeDSN(cfg.DatabaseDSN)); err != nil {
			log.Fatalf("migrate-only failed: %v", err)
		}
		log.Println("migrations completed; exiting as requested")
		return
	}
	if *backupFlag {
		mgr := backup.New(cfg.BackupDir, cfg.BackupKeep, db.ParseDSN(cfg.DatabaseDSN))
		path, err := mgr.Run()
		if err != nil {
			log.Fatalf("backup failed: %v", err)
		}
		log.Printf("backup written to %s", path)
		return
	}

	dbConn, err := db.Connect(cfg.DatabaseDSN)
	if err != nil {
		// bounded retries exhausted; no schema work is attempted
		log.Fatalf("database connection failed: %v", err)
	}
	if db.MigrationsEnabled() {
		if err := db.RunSQLMigrations(db.NormalizeDSN(cfg.DatabaseDSN)); err != nil {
			log.Fatalf("sql migrations failed: %v", err)
		}
	} else if err := db.EnsureSchema(dbConn); err != nil {
		log.Fatalf("schema check failed: %v", err)
	}

	log.Printf("Starting server env=%s port=%s", cfg.Env, cfg.Port)
	srv := &http.Server{Addr: ":" + cfg.Port, Handler: withLogging(server.New(dbConn, cfg))}

	go func() {
		log.Printf("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
