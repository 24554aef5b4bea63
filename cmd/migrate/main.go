package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	database "cloud.google.com/go/spanner/admin/database/apiv1"
	databasepb "cloud.google.com/go/spanner/admin/database/apiv1/databasepb"

	"github.com/murkotick/catalog-engine/internal/config"
	"github.com/murkotick/catalog-engine/internal/logging"
)

// Applies migrations/001_initial_schema.sql to the configured Spanner database
// (typically the emulator for local dev).
//
// Usage (emulator):
//
//	export SPANNER_EMULATOR_HOST=localhost:9010
//	export CATALOG_SPANNER_DATABASE=projects/test-project/instances/emulator-instance/databases/test-db
//	go run ./cmd/migrate
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("load config")
	}
	logging.Init(cfg.Logging)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ddlPath := filepath.Join("migrations", "001_initial_schema.sql")
	b, err := os.ReadFile(ddlPath)
	if err != nil {
		logging.Fatal().Err(err).Str("path", ddlPath).Msg("read DDL")
	}
	stmts := splitStatements(string(b))
	if len(stmts) == 0 {
		logging.Fatal().Str("path", ddlPath).Msg("no DDL statements found")
	}

	admin, err := database.NewDatabaseAdminClient(ctx)
	if err != nil {
		logging.Fatal().Err(err).Msg("database admin client")
	}
	defer admin.Close()

	op, err := admin.UpdateDatabaseDdl(ctx, &databasepb.UpdateDatabaseDdlRequest{
		Database:   cfg.Spanner.Database,
		Statements: stmts,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("UpdateDatabaseDdl")
	}
	if err := op.Wait(ctx); err != nil {
		logging.Fatal().Err(err).Msg("UpdateDatabaseDdl wait")
	}

	logging.Info().
		Int("statements", len(stmts)).
		Str("database", cfg.Spanner.Database).
		Msg("schema applied")
}

// splitStatements splits a DDL file on ";" and drops "--" comment lines.
func splitStatements(sql string) []string {
	// Normalize line endings for Windows-authored files.
	sql = strings.ReplaceAll(sql, "\r\n", "\n")

	var kept []string
	for _, line := range strings.Split(sql, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}

	parts := strings.Split(strings.Join(kept, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if stmt := strings.TrimSpace(p); stmt != "" {
			out = append(out, stmt)
		}
	}
	return out
}
