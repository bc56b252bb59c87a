package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"forhonor/internal/domain"
	"forhonor/internal/repository/sqlite"
)

// Step names the phase of initialization that failed
type Step string

const (
	StepCheck   Step = "check"
	StepConnect Step = "connect"
	StepSchema  Step = "schema"
	StepSeed    Step = "seed"
	StepVerify  Step = "verify"
)

// InitializationError reports a failed first-time setup. By the time it is
// returned the partially written database file has been removed.
type InitializationError struct {
	Path string
	Step Step
	Err  error
}

func (e *InitializationError) Error() string {
	return fmt.Sprintf("initialize %s: %s: %v", e.Path, e.Step, e.Err)
}

func (e *InitializationError) Unwrap() error {
	return e.Err
}

// Result describes what initialization did
type Result struct {
	Path       string
	Created    bool
	Factions   int
	Characters int
	Tables     []string
	Duration   time.Duration
}

// Initializer creates and seeds the database file on first startup
type Initializer struct {
	Path    string
	Seed    *domain.Dataset
	Options []sqlite.Option

	// afterSchema runs between table creation and seeding
	afterSchema func(ctx context.Context, gw *sqlite.Gateway) error
}

// New returns an initializer for path using the default seed dataset
func New(path string, opts ...sqlite.Option) *Initializer {
	return &Initializer{
		Path:    path,
		Seed:    DefaultSeed(),
		Options: opts,
	}
}

// Initialize runs a default initializer for path
func Initialize(ctx context.Context, path string, opts ...sqlite.Option) (*Result, error) {
	return New(path, opts...).Run(ctx)
}

// Run guarantees that the database at Path exists with both tables and the
// seed rows. An existing file is trusted as already initialized and is not
// inspected.
func (in *Initializer) Run(ctx context.Context) (*Result, error) {
	start := time.Now()

	_, err := os.Stat(in.Path)
	if err == nil {
		log.Printf("Bootstrap: Database %s already exists, skipping initialization", in.Path)
		return &Result{Path: in.Path, Duration: time.Since(start)}, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &InitializationError{Path: in.Path, Step: StepCheck, Err: err}
	}

	log.Printf("Bootstrap: Database %s does not exist, creating and seeding...", in.Path)

	if dir := filepath.Dir(in.Path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, &InitializationError{Path: in.Path, Step: StepCheck, Err: fmt.Errorf("create data dir: %w", err)}
		}
	}

	result, err := in.populate(ctx)
	if err != nil {
		log.Printf("Bootstrap: Initialization failed: %v", err)
		in.removePartial()
		return nil, err
	}

	result.Duration = time.Since(start)
	log.Printf("Bootstrap: Complete in %s", result.Duration)
	return result, nil
}

// populate connects, creates the schema and inserts the seed. The gateway is
// closed before returning so the file can be removed on failure.
func (in *Initializer) populate(ctx context.Context) (*Result, error) {
	fail := func(step Step, err error) (*Result, error) {
		return nil, &InitializationError{Path: in.Path, Step: step, Err: err}
	}

	gw, err := sqlite.Connect(in.Path, in.Options...)
	if err != nil {
		return fail(StepConnect, err)
	}
	defer gw.Close()

	log.Println("Bootstrap: Creating tables...")
	if _, err := gw.ExecStatic(ctx, sqlite.CreateFactionTable); err != nil {
		return fail(StepSchema, fmt.Errorf("create faction table: %w", err))
	}
	if _, err := gw.ExecStatic(ctx, sqlite.CreateCharacterTable); err != nil {
		return fail(StepSchema, fmt.Errorf("create character table: %w", err))
	}
	log.Println("Bootstrap: Tables created")

	if in.afterSchema != nil {
		if err := in.afterSchema(ctx, gw); err != nil {
			return fail(StepSchema, err)
		}
	}

	seed := in.Seed
	if seed == nil {
		seed = DefaultSeed()
	}

	log.Println("Bootstrap: Inserting seed data...")
	if err := sqlite.NewRepository(gw).InsertDataset(ctx, seed); err != nil {
		if sqlite.IsConstraint(err) {
			logConstraint(err)
		}
		return fail(StepSeed, err)
	}
	log.Printf("Bootstrap: Inserted %d factions and %d characters", len(seed.Factions), len(seed.Characters))

	tables, err := gw.ListTables(ctx)
	if err != nil {
		return fail(StepVerify, err)
	}
	for _, want := range sqlite.Tables {
		if !contains(tables, want) {
			return fail(StepVerify, fmt.Errorf("table %s missing after creation", want))
		}
	}

	return &Result{
		Path:       in.Path,
		Created:    true,
		Factions:   len(seed.Factions),
		Characters: len(seed.Characters),
		Tables:     tables,
	}, nil
}

// removePartial deletes the half-built database so the next startup does not
// mistake it for an initialized one
func (in *Initializer) removePartial() {
	for _, p := range []string{in.Path, in.Path + "-journal"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("Bootstrap: WARNING: failed to remove %s: %v", p, err)
		}
	}
}

// logConstraint explains a seed row rejected by the schema, which usually
// means a character names a faction_id that no seeded faction received
func logConstraint(err error) {
	var qe *sqlite.QueryError
	if errors.As(err, &qe) {
		log.Printf("Bootstrap: Seed rejected by a schema constraint (SQLite code %d); check names and faction_id references", qe.Code())
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
