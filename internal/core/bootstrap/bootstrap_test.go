package bootstrap

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forhonor/internal/domain"
	"forhonor/internal/repository/sqlite"
)

var quiet = sqlite.WithLogger(log.New(io.Discard, "", 0))

func openRepo(t *testing.T, path string) (*sqlite.Repository, *sqlite.Gateway) {
	t.Helper()
	gw, err := sqlite.Connect(path, quiet)
	require.NoError(t, err)
	t.Cleanup(func() { gw.Close() })
	return sqlite.NewRepository(gw), gw
}

func names(characters []domain.Character) []string {
	out := make([]string, 0, len(characters))
	for _, c := range characters {
		out = append(out, c.Name)
	}
	return out
}

func assertRemoved(t *testing.T, path string) {
	t.Helper()
	for _, p := range []string{path, path + "-journal"} {
		_, err := os.Stat(p)
		assert.True(t, errors.Is(err, os.ErrNotExist), "%s should not exist after a failed initialization", p)
	}
}

func TestInitializeCreatesSeededDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "honor.db")

	result, err := Initialize(ctx, path, quiet)
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, path, result.Path)
	assert.Equal(t, 3, result.Factions)
	assert.Equal(t, 9, result.Characters)
	assert.Equal(t, []string{"Faccion", "Personaje"}, result.Tables)

	repo, _ := openRepo(t, path)

	factions, err := repo.ListFactions(ctx)
	require.NoError(t, err)
	want := []domain.Faction{
		{ID: 1, Name: "Cavallers", Summary: "Though seen as a single group, the Knights are hardly unified..."},
		{ID: 2, Name: "Vikings", Summary: "The Vikings are a loose coalition of hundreds of clans and tribes..."},
		{ID: 3, Name: "Samurais", Summary: "The Samurai are the most unified of the three factions..."},
	}
	if diff := cmp.Diff(want, factions); diff != "" {
		t.Errorf("factions mismatch (-want +got):\n%s", diff)
	}

	characters, err := repo.ListCharacters(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Warden", "Conqueror", "Peacekeep",
		"Raider", "Warlord", "Berserker",
		"Kensei", "Shugoki", "Orochi",
	}, names(characters))
	for i, c := range characters {
		assert.Equal(t, int64(i+1), c.ID)
		assert.Equal(t, int64(i/3+1), c.FactionID, "character %s", c.Name)
		assert.Empty(t, c.FactionName, "unjoined read should not carry a faction name")
	}
}

func TestSeededQueries(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "honor.db")
	_, err := Initialize(ctx, path, quiet)
	require.NoError(t, err)
	repo, _ := openRepo(t, path)

	roster, err := repo.ListCharactersByFaction(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Warden", "Conqueror", "Peacekeep"}, names(roster))
	for _, c := range roster {
		assert.Equal(t, "Cavallers", c.FactionName)
	}

	tests := []struct {
		name      string
		query     func(context.Context, int64) ([]domain.Character, error)
		factionID int64
		want      []string
	}{
		{"best attacker knights", repo.BestAttacker, 1, []string{"Conqueror"}},
		{"best defender knights", repo.BestDefender, 1, []string{"Warden"}},
		{"best attacker vikings", repo.BestAttacker, 2, []string{"Raider"}},
		{"best defender vikings", repo.BestDefender, 2, []string{"Raider"}},
		{"best attacker samurai", repo.BestAttacker, 3, []string{"Kensei"}},
		{"best defender samurai", repo.BestDefender, 3, []string{"Kensei"}},
		{"roster unknown", repo.ListCharactersByFaction, 999, []string{}},
		{"best attacker unknown", repo.BestAttacker, 999, []string{}},
		{"best defender unknown", repo.BestDefender, 999, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.query(ctx, tt.factionID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestInitializeIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "honor.db")

	first, err := Initialize(ctx, path, quiet)
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := Initialize(ctx, path, quiet)
	require.NoError(t, err)
	assert.False(t, second.Created)
	assert.Zero(t, second.Factions)
	assert.Zero(t, second.Characters)

	repo, _ := openRepo(t, path)
	factions, err := repo.ListFactions(ctx)
	require.NoError(t, err)
	assert.Len(t, factions, 3)
	characters, err := repo.ListCharacters(ctx)
	require.NoError(t, err)
	assert.Len(t, characters, 9)
}

func TestInitializeTwiceWithQueryCharactersInPath(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "honor?v1.db")

	first, err := Initialize(ctx, path, quiet)
	require.NoError(t, err)
	require.True(t, first.Created)

	second, err := Initialize(ctx, path, quiet)
	require.NoError(t, err)
	assert.False(t, second.Created)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "honor?v1.db", entries[0].Name())

	repo, _ := openRepo(t, path)
	characters, err := repo.ListCharacters(ctx)
	require.NoError(t, err)
	assert.Len(t, characters, 9)
}

func TestInitializeTrustsExistingFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "honor.db")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	result, err := Initialize(ctx, path, quiet)
	require.NoError(t, err)
	assert.False(t, result.Created)

	// No schema check happens on an existing file
	_, gw := openRepo(t, path)
	tables, err := gw.ListTables(ctx)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestInitializeFailureRemovesFile(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "honor.db")
	boom := errors.New("disk full")

	in := New(path, quiet)
	in.afterSchema = func(ctx context.Context, gw *sqlite.Gateway) error {
		return boom
	}

	result, err := in.Run(ctx)
	require.Error(t, err)
	assert.Nil(t, result)

	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, path, initErr.Path)
	assert.Equal(t, StepSchema, initErr.Step)
	assert.ErrorIs(t, err, boom)

	assertRemoved(t, path)

	// The next startup starts from scratch and succeeds
	result, err = Initialize(ctx, path, quiet)
	require.NoError(t, err)
	assert.True(t, result.Created)
}

func TestInitializeSeedConstraintFailure(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "honor.db")

	in := New(path, quiet)
	in.Seed = &domain.Dataset{
		Factions:   []domain.Faction{domain.NewFaction("Cavallers", "")},
		Characters: []domain.Character{domain.NewCharacter("Orochi", 3, 2, 99)},
	}

	var logs strings.Builder
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	_, err := in.Run(ctx)
	require.Error(t, err)

	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, StepSeed, initErr.Step)
	assert.True(t, sqlite.IsConstraint(err), "foreign key violation expected, got %v", err)

	assert.Contains(t, logs.String(), "Seed rejected by a schema constraint (SQLite code ")

	assertRemoved(t, path)
}

func TestInitializeUncreatableDirectory(t *testing.T) {
	// The parent is a regular file, so the data directory cannot be created
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err := Initialize(context.Background(), filepath.Join(blocker, "honor.db"), quiet)

	var initErr *InitializationError
	require.ErrorAs(t, err, &initErr)
	assert.Equal(t, StepCheck, initErr.Step)
}

func TestInitializationErrorMessage(t *testing.T) {
	err := &InitializationError{Path: "data/honor.db", Step: StepSeed, Err: errors.New("boom")}
	assert.Equal(t, "initialize data/honor.db: seed: boom", err.Error())
	assert.Equal(t, "boom", errors.Unwrap(err).Error())
}
