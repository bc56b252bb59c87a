package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"forhonor/internal/codec"
	"forhonor/internal/config"
	"forhonor/internal/core/bootstrap"
	"forhonor/internal/handler"
	"forhonor/internal/repository/sqlite"
	"forhonor/internal/service"
)

// shutdownGrace bounds how long an interrupted menu gets to return
const shutdownGrace = 2 * time.Second

func main() {
	// Command line flags
	configPath := flag.String("config", "", "config file path (default: search standard locations)")
	dbPath := flag.String("db", "", "SQLite database path (default: data/honor.db)")
	format := flag.String("format", "", "output format: table, json or yaml")
	debug := flag.Bool("debug", false, "log every SQL statement")
	listTables := flag.Bool("tables", false, "print the database tables and exit")
	writeConfig := flag.String("write-config", "", "write the effective config to this path and exit")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		config.Exitf("Failed to load config: %v", err)
	}

	// Flags override file and environment
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *format != "" {
		cfg.Output.Format = config.NormalizeFormat(*format)
	}
	if *debug {
		cfg.Log.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		config.Exitf("Invalid config: %v", err)
	}

	if *writeConfig != "" {
		if err := cfg.Save(*writeConfig); err != nil {
			config.Exitf("Failed to write config: %v", err)
		}
		fmt.Printf("Config written to %s\n", *writeConfig)
		return
	}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			config.Exitf("Failed to open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	log.Println("Starting forhonor...")
	log.Printf("Config:\n%s", cfg.Summary())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := initialize(ctx, cfg); err != nil {
		config.Exitf("Failed to initialize database: %v", err)
	}

	gw, err := sqlite.Connect(cfg.Database.Path, sqlite.WithTrace(cfg.Log.Debug))
	if err != nil {
		config.Exitf("Failed to open database: %v", err)
	}
	defer gw.Close()

	if *listTables {
		if err := printTables(ctx, gw, os.Stdout); err != nil {
			gw.Close()
			config.Exitf("Failed to list tables: %v", err)
		}
		return
	}

	exporter, err := newExporter(cfg)
	if err != nil {
		gw.Close()
		config.Exitf("Invalid output format: %v", err)
	}

	svc := service.NewQueryService(sqlite.NewRepository(gw))
	reports := handler.NewReportHandler(svc, exporter, os.Stdout)
	menu := handler.NewMenu(reports, os.Stdin, os.Stdout)

	done := make(chan error, 1)
	go func() {
		done <- menu.Run(ctx)
	}()

	// Wait for the menu to finish or an interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Printf("Menu stopped: %v", err)
		}
	case sig := <-quit:
		log.Printf("Received %s, shutting down...", sig)
		cancel()

		// A running query sees the cancelled context and returns. The menu
		// may instead be blocked reading stdin, which nothing can interrupt,
		// so the wait is bounded; sql.DB.Close also waits for active queries.
		select {
		case <-done:
		case <-time.After(shutdownGrace):
			log.Println("Menu still waiting for input, closing database")
		}
	}

	log.Println("forhonor stopped")
}

// loadConfig reads an explicit config file, or searches the standard locations
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		cfg, _, err := config.LoadFromPath(path)
		if err != nil {
			return nil, err
		}
		log.Printf("Config loaded from %s", path)
		return cfg, nil
	}

	cfg, found, err := config.Load()
	if err != nil {
		return nil, err
	}
	if found != "" {
		log.Printf("Config loaded from %s", found)
	} else {
		log.Printf("No config file found in %v, using defaults", config.SearchPaths())
	}
	return cfg, nil
}

// initialize creates and seeds the database on first startup
func initialize(ctx context.Context, cfg *config.Config) error {
	initializer := bootstrap.New(cfg.Database.Path, sqlite.WithTrace(cfg.Log.Debug))

	if cfg.Database.SeedFile != "" {
		seed, err := bootstrap.LoadSeedFile(cfg.Database.SeedFile)
		if err != nil {
			return err
		}
		initializer.Seed = seed
	}

	result, err := initializer.Run(ctx)
	if err != nil {
		return err
	}
	if result.Created {
		log.Printf("Database created with tables %v", result.Tables)
	}
	return nil
}

func newExporter(cfg *config.Config) (codec.Exporter, error) {
	if cfg.Output.Format == "table" {
		return codec.NewTableCodec(cfg.Output.SummaryWidth), nil
	}
	return codec.ForFormat(cfg.Output.Format)
}

func printTables(ctx context.Context, gw *sqlite.Gateway, w io.Writer) error {
	tables, err := gw.ListTables(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Tables in %s:\n", gw.Path())
	for _, name := range tables {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}
