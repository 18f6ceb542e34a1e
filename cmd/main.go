package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oyasar/staffdir/internal/config"
	"github.com/oyasar/staffdir/internal/i18n"
	"github.com/oyasar/staffdir/internal/logger"
	"github.com/oyasar/staffdir/internal/service"
	"github.com/oyasar/staffdir/internal/storage/sqlite"
	"github.com/oyasar/staffdir/internal/store"
	"github.com/oyasar/staffdir/internal/view"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	kv, err := sqlite.New(ctx, cfg.Storage.Dir, cfg.Storage.Name)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer kv.Close()

	st, err := store.New(ctx, kv)
	if err != nil {
		logger.Fatal("failed to initialize store", "error", err)
	}

	actions := service.NewEmployee(st, logger)

	translator, err := i18n.NewTranslator(ctx, kv, i18n.Lang(cfg.App.DefaultLanguage))
	if err != nil {
		logger.Fatal("failed to initialize translator", "error", err)
	}

	if cfg.App.SeedSampleData && len(st.State().Employees) == 0 {
		if err := actions.LoadSampleData(ctx, time.Now().UnixNano()); err != nil {
			logger.Fatal("failed to seed sample data", "error", err)
		}
	}

	list := view.NewListController(st, actions, logger)
	defer list.Close()

	logAppVersion()

	state := st.State()
	logger.Info("employee directory ready",
		"employees", len(state.Employees),
		"view_mode", state.ViewMode,
		"language", translator.Language(),
	)

	for _, emp := range list.VisibleEmployees() {
		logger.Info("visible",
			"name", emp.FirstName+" "+emp.LastName,
			"email", emp.Email,
			"department", emp.Department,
			"position", emp.Position,
		)
	}

	<-ctx.Done()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
