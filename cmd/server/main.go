package main

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/nayamama/hr-project/internal/config"
	"github.com/nayamama/hr-project/internal/db"
	"github.com/nayamama/hr-project/internal/httpapi"
	"github.com/nayamama/hr-project/internal/service"
	"github.com/nayamama/hr-project/internal/storage"
	"github.com/nayamama/hr-project/internal/store"
	"github.com/nayamama/hr-project/internal/sysinfo"
)

func loggingMiddleware(logger *log.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Printf("%s %s %s", r.Method, r.URL.RequestURI(), time.Since(start))
	})
}

func healthcheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func main() {
	// -- Logger --
	logger := log.New(os.Stdout, "", log.LstdFlags)

	// -- Configs preload --
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config error: %v", err)
	}

	// -- Connect to DB --
	database, err := db.Connect(cfg)
	if err != nil {
		logger.Fatalf("database connection error: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		logger.Fatalf("migration error: %v", err)
	}

	stores := store.NewGormStores(database)
	attachments := storage.NewFilesystemStore(cfg.UploadDir)

	handler := httpapi.NewHandler(httpapi.Services{
		Departments: service.NewDepartmentService(stores.Departments),
		Roles:       service.NewRoleService(stores.Roles),
		Employees:   service.NewEmployeeService(stores.Employees, stores.Departments, stores.Roles),
		Anchors:     service.NewAnchorService(stores.Anchors, attachments),
		System:      sysinfo.HostCollector{},
	}, logger)

	// -- Router --
	mux := http.NewServeMux()
	mux.Handle("/", httpapi.AuthMiddleware(cfg.AdminToken, handler))
	mux.HandleFunc("/healthcheck", healthcheck)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           loggingMiddleware(logger, mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// -- Startup --
	logger.Printf("starting server, listening to port %s...", cfg.Port)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("server failed: %v", err)
	}
}
