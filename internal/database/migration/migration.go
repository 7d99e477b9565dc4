package migration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

type migrationStep struct {
	Name string
	SQL  string
}

// Range checks on hotspot angles and timings are enforced by the authoring service,
// not by the schema.
var steps = []migrationStep{
	{
		Name: "create_table_monuments",
		SQL: `CREATE TABLE IF NOT EXISTS monuments (
  id          BIGSERIAL        PRIMARY KEY,
  name        VARCHAR(100)     NOT NULL,
  description TEXT             NOT NULL,
  latitude    DOUBLE PRECISION NULL,
  longitude   DOUBLE PRECISION NULL
);`,
	},
	{
		Name: "create_table_panoramas",
		SQL: `CREATE TABLE IF NOT EXISTS panoramas (
  id             BIGSERIAL        PRIMARY KEY,
  monument_id    BIGINT           NOT NULL REFERENCES monuments (id) ON DELETE CASCADE,
  title          VARCHAR(200)     NOT NULL,
  image          VARCHAR(255)     NOT NULL,
  is_main        BOOLEAN          NOT NULL DEFAULT FALSE,
  vaov           DOUBLE PRECISION NOT NULL DEFAULT 55,
  haov           DOUBLE PRECISION NOT NULL DEFAULT 360,
  min_pitch      DOUBLE PRECISION NOT NULL DEFAULT -27,
  max_pitch      DOUBLE PRECISION NOT NULL DEFAULT 27,
  min_yaw        DOUBLE PRECISION NOT NULL DEFAULT -130,
  max_yaw        DOUBLE PRECISION NOT NULL DEFAULT 130,
  min_hfov       DOUBLE PRECISION NOT NULL DEFAULT 30,
  max_hfov       DOUBLE PRECISION NOT NULL DEFAULT 30,
  show_zoom_ctrl BOOLEAN          NOT NULL DEFAULT TRUE
);`,
	},
	{
		Name: "create_index_panoramas_monument_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_panoramas_monument_id ON panoramas (monument_id);`,
	},
	{
		Name: "create_table_hotspots",
		SQL: `CREATE TABLE IF NOT EXISTS hotspots (
  id                  BIGSERIAL        PRIMARY KEY,
  panorama_id         BIGINT           NOT NULL REFERENCES panoramas (id) ON DELETE CASCADE,
  pitch               DOUBLE PRECISION NOT NULL,
  yaw                 DOUBLE PRECISION NOT NULL,
  title               VARCHAR(100)     NOT NULL,
  description         TEXT             NOT NULL,
  image               VARCHAR(255)     NULL,
  target_panorama_id  BIGINT           NULL REFERENCES panoramas (id) ON DELETE SET NULL,
  target_pitch        DOUBLE PRECISION NULL,
  target_yaw          DOUBLE PRECISION NULL,
  transition_duration INTEGER          NOT NULL DEFAULT 2000,
  target_hfov         DOUBLE PRECISION NOT NULL DEFAULT 50,
  css_class           VARCHAR(50)      NOT NULL DEFAULT 'custom-hotspot',
  entry_hotspot_id    BIGINT           NULL REFERENCES hotspots (id) ON DELETE SET NULL
);`,
	},
	{
		Name: "create_index_hotspots_panorama_title",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_hotspots_panorama_title ON hotspots (panorama_id, title);`,
	},
	{
		Name: "create_index_hotspots_target_panorama_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_hotspots_target_panorama_id ON hotspots (target_panorama_id);`,
	},
	{
		Name: "create_index_hotspots_entry_hotspot_id",
		SQL:  `CREATE INDEX IF NOT EXISTS idx_hotspots_entry_hotspot_id ON hotspots (entry_hotspot_id);`,
	},
}

// sentinelQuery reports whether the last table created by steps exists.
const sentinelQuery = "SELECT to_regclass('public.hotspots') IS NOT NULL"

// EnsureMigrated checks if the 'hotspots' table exists and runs migrations if it doesn't.
func EnsureMigrated(ctx context.Context, db *sql.DB, loc *time.Location, dbHost string) error {
	start := time.Now()

	logJSON(loc, map[string]any{
		"component": "database",
		"event":     "db_migration_check",
		"status":    "starting",
		"db_host":   dbHost,
	})

	var exists bool
	if err := db.QueryRowContext(ctx, sentinelQuery).Scan(&exists); err != nil {
		logJSON(loc, map[string]any{
			"component":     "database",
			"event":         "db_migration_failed",
			"status":        "error",
			"error_message": fmt.Sprintf("failed to check sentinel table: %v", err),
			"db_host":       dbHost,
			"duration_ms":   time.Since(start).Milliseconds(),
		})
		return fmt.Errorf("failed to check sentinel table: %w", err)
	}

	if exists {
		logJSON(loc, map[string]any{
			"component":   "database",
			"event":       "db_migration_skip",
			"status":      "success",
			"msg":         "schema already exists, skipping migration",
			"db_host":     dbHost,
			"duration_ms": time.Since(start).Milliseconds(),
		})
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err := tx.ExecContext(ctx, step.SQL); err != nil {
			logJSON(loc, map[string]any{
				"component":        "database",
				"event":            "db_migration_failed",
				"status":           "error",
				"migration_step":   step.Name,
				"error_message":    err.Error(),
				"db_host":          dbHost,
				"duration_ms":      time.Since(start).Milliseconds(),
				"step_duration_ms": time.Since(stepStart).Milliseconds(),
			})
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}

		logJSON(loc, map[string]any{
			"component":        "database",
			"event":            "db_migration_step",
			"status":           "success",
			"migration_step":   step.Name,
			"db_host":          dbHost,
			"step_duration_ms": time.Since(stepStart).Milliseconds(),
		})
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit migration: %w", err)
	}

	logJSON(loc, map[string]any{
		"component":   "database",
		"event":       "db_migration_success",
		"status":      "success",
		"db_host":     dbHost,
		"steps":       len(steps),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	return nil
}

func logJSON(loc *time.Location, data map[string]any) {
	if loc == nil {
		loc = time.UTC
	}
	data["ts"] = time.Now().In(loc).Format(time.RFC3339Nano)
	if _, ok := data["level"]; !ok {
		if data["status"] == "error" {
			data["level"] = "error"
		} else {
			data["level"] = "info"
		}
	}

	b, err := json.Marshal(data)
	if err != nil {
		log.Printf("failed to marshal migration log: %v", err)
		return
	}
	log.SetFlags(0)
	log.Println(string(b))
}
