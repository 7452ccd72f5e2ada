package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "holdout/internal/adapter/http"
	metricsinmem "holdout/internal/adapter/metrics/inmemory"
	staticnames "holdout/internal/adapter/namesource/static"
	"holdout/internal/adapter/randsource"
	gormrepo "holdout/internal/adapter/repo/gorm"
	memoryrepo "holdout/internal/adapter/repo/memory"
	"holdout/internal/app/engine"
	"holdout/internal/app/ports"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	repo := mustBuildRepo()
	kpiRecorder := metricsinmem.NewRecorder()

	h := httpadapter.Handler{
		Repo: repo,
		Engine: engine.Engine{
			Rand:    randsource.New(int64(intEnv("HOLDOUT_RAND_SEED", 0))),
			Names:   buildNameSourceFromEnv(),
			Metrics: kpiRecorder,
			Now:     time.Now,
		},
		KPI: kpiRecorder,
	}

	addr := strings.TrimSpace(os.Getenv("HOLDOUT_HTTP_ADDR"))
	if addr == "" {
		addr = ":8080"
	}
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("holdout server listening on %s", addr)
	s.Spin()
}

// mustBuildRepo picks postgres when a DSN is configured and falls back to the
// in-process store, which suits single-node play and local development.
func mustBuildRepo() ports.GameRepository {
	dsn := strings.TrimSpace(os.Getenv("HOLDOUT_DB_DSN"))
	if dsn == "" {
		log.Println("HOLDOUT_DB_DSN not set, using in-memory store")
		return memoryrepo.NewGameRepo(memoryrepo.NewStore())
	}
	db, err := gormrepo.OpenPostgres(dsn)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	return gormrepo.NewGameRepo(db)
}

func buildNameSourceFromEnv() ports.NameSource {
	path := strings.TrimSpace(os.Getenv("HOLDOUT_NAMES_FILE"))
	if path == "" {
		return nil
	}
	return staticnames.Provider{Path: path}
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
