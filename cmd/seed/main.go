package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"panomap/internal/config"
	"panomap/internal/database"
	"panomap/internal/database/migration"
	"panomap/internal/repository/memory"
	"panomap/internal/repository/postgres"
	"panomap/internal/seed"
	"panomap/internal/service"
	"panomap/internal/storage"
)

func main() {
	manifestPath := flag.String("f", "", "path to the YAML manifest")
	dryRun := flag.Bool("dry-run", false, "import into memory and discard uploads")
	flag.Parse()

	if *manifestPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	log.SetFlags(0)
	cfg := config.Load()
	loc := cfg.Location()
	ctx := context.Background()

	f, err := os.Open(*manifestPath)
	if err != nil {
		log.Fatalf("open manifest: %v", err)
	}
	manifest, err := seed.Load(f)
	f.Close()
	if err != nil {
		log.Fatalf("load manifest: %v", err)
	}

	var svc service.AuthoringService
	if *dryRun {
		mem := memory.NewStore()
		svc = service.NewAuthoringService(storage.NewDiscard(), mem.Monuments(), mem.Panoramas(), mem.HotSpots())
	} else {
		db, err := database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("failed to connect to database: %v", err)
		}
		defer db.Close()
		svc, err = postgresService(ctx, cfg, db)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	importer := seed.NewImporter(svc, seed.DirOpener(filepath.Dir(*manifestPath)), loc)
	if _, err := importer.Import(ctx, manifest); err != nil {
		log.Printf("import failed: %v", err)
		os.Exit(1)
	}
}

func postgresService(ctx context.Context, cfg *config.AppConfig, db *sql.DB) (service.AuthoringService, error) {
	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, cfg.Location(), cfg.Database.Host); err != nil {
			return nil, err
		}
	}
	objStore, err := storage.NewMinIO(ctx, cfg.MinIO)
	if err != nil {
		return nil, err
	}
	return service.NewAuthoringService(
		objStore,
		postgres.NewMonumentPostgres(db),
		postgres.NewPanoramaPostgres(db),
		postgres.NewHotSpotPostgres(db),
	), nil
}
