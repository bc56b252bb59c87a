package handler

import (
	"context"
	"errors"
	"io"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forhonor/internal/codec"
	"forhonor/internal/core/bootstrap"
	"forhonor/internal/repository/sqlite"
	"forhonor/internal/service"
)

// newSeededService initializes a fresh database and returns a query service on it
func newSeededService(t *testing.T) (*service.QueryService, *sqlite.Gateway) {
	t.Helper()
	quiet := sqlite.WithLogger(log.New(io.Discard, "", 0))
	path := filepath.Join(t.TempDir(), "honor.db")

	_, err := bootstrap.Initialize(context.Background(), path, quiet)
	require.NoError(t, err)

	gw, err := sqlite.Connect(path, quiet)
	require.NoError(t, err)
	t.Cleanup(func() { gw.Close() })

	return service.NewQueryService(sqlite.NewRepository(gw)), gw
}

type runResult struct {
	out  string
	logs string
	err  error
}

func runMenu(t *testing.T, svc ReportService, exporter codec.Exporter, input string) runResult {
	t.Helper()
	var out, logs strings.Builder

	reports := NewReportHandler(svc, exporter, &out)
	menu := NewMenu(reports, strings.NewReader(input), &out)
	menu.SetLogger(log.New(&logs, "", 0))

	err := menu.Run(context.Background())
	return runResult{out: out.String(), logs: logs.String(), err: err}
}

func TestMenuFlows(t *testing.T) {
	svc, _ := newSeededService(t)

	tests := []struct {
		name     string
		input    string
		contains []string
		absent   []string
	}{
		{
			name:     "exit",
			input:    "5\n",
			contains: []string{"===== FOR HONOR =====", "5. Exit", "Exiting the program..."},
			absent:   []string{"(Enter to continue...)"},
		},
		{
			name:     "end of input",
			input:    "",
			contains: []string{"End of input, exiting..."},
		},
		{
			name:     "faction table",
			input:    "1\n1\n\n5\n",
			contains: []string{"1. Faction", "--- Faction table ---", "Cavallers", "Samurais", "(Enter to continue...)"},
		},
		{
			name:     "character table",
			input:    "1\n2\n\n5\n",
			contains: []string{"--- Character table ---", "Berserker", "Faction ID"},
		},
		{
			name:  "characters by faction",
			input: "2\n1\n\n5\n",
			contains: []string{
				"Enter the faction ID: ",
				"--- Characters of faction ID: 1 ---",
				"Warden          | 1.0     | 3.0     | Cavallers",
				"Peacekeep",
			},
			absent: []string{"Raider"},
		},
		{
			name:     "best attacker",
			input:    "3\n2\n\n5\n",
			contains: []string{"--- Best attacker of faction ID: 2 ---", "Raider"},
			absent:   []string{"Warlord"},
		},
		{
			name:     "best defender tie goes to first row",
			input:    "4\n3\n\n5\n",
			contains: []string{"--- Best defender of faction ID: 3 ---", "Kensei"},
			absent:   []string{"Orochi"},
		},
		{
			name:     "unknown faction",
			input:    "2\n999\n\n5\n",
			contains: []string{"No characters found for this faction."},
		},
		{
			name:     "invalid table option",
			input:    "1\n7\n5\n",
			contains: []string{"Invalid table option."},
			absent:   []string{"(Enter to continue...)"},
		},
		{
			name:     "invalid menu option",
			input:    "9\n5\n",
			contains: []string{"Invalid option, try again.", "Exiting the program..."},
		},
		{
			name:     "input ends inside an action",
			input:    "2\n",
			contains: []string{"Enter the faction ID: ", "End of input, exiting..."},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runMenu(t, svc, codec.NewTableCodec(codec.DefaultSummaryWidth), tt.input)
			require.NoError(t, res.err)
			for _, want := range tt.contains {
				assert.Contains(t, res.out, want)
			}
			for _, unwanted := range tt.absent {
				assert.NotContains(t, res.out, unwanted)
			}
		})
	}
}

func TestMenuOptionsTwoToFourListFactionsFirst(t *testing.T) {
	svc, _ := newSeededService(t)

	for _, option := range []string{"2", "3", "4"} {
		t.Run(option, func(t *testing.T) {
			res := runMenu(t, svc, nil, option+"\n1\n\n5\n")
			require.NoError(t, res.err)

			listing := strings.Index(res.out, "--- Faction table ---")
			prompt := strings.Index(res.out, "Enter the faction ID: ")
			require.NotEqual(t, -1, listing)
			require.NotEqual(t, -1, prompt)
			assert.Less(t, listing, prompt)
		})
	}
}

func TestMenuExitsWhenInputEndsInsideAnAction(t *testing.T) {
	svc, _ := newSeededService(t)

	tests := []struct {
		name      string
		input     string
		prompt    string
		wantMenus int
	}{
		{"table submenu", "1\n", "Choose a table: ", 1},
		{"faction prompt", "2\n", "Enter the faction ID: ", 1},
		{"faction prompt after a report", "1\n1\n\n4\n", "Enter the faction ID: ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := runMenu(t, svc, nil, tt.input)
			require.NoError(t, res.err)

			assert.True(t, strings.HasSuffix(res.out, tt.prompt+"\nEnd of input, exiting...\n"),
				"loop should stop right after the unanswered prompt, got:\n%s", res.out)
			assert.Equal(t, tt.wantMenus, strings.Count(res.out, "===== FOR HONOR ====="))
		})
	}
}

func TestMenuRejectsNonNumericInput(t *testing.T) {
	svc, _ := newSeededService(t)

	res := runMenu(t, svc, nil, "abc\n2\nxyz\n5\n")
	require.NoError(t, res.err)

	assert.Equal(t, 2, strings.Count(res.out, "Please enter a valid number."))
	assert.NotContains(t, res.out, "(Enter to continue...)")
	assert.Contains(t, res.logs, `Invalid menu option "abc"`)
	assert.Contains(t, res.logs, `Invalid faction ID "xyz"`)
}

func TestMenuContinuesAfterQueryError(t *testing.T) {
	svc, gw := newSeededService(t)
	require.NoError(t, gw.Close())

	res := runMenu(t, svc, nil, "1\n1\n\n3\n1\n\n5\n")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, "Failed to list factions.")
	assert.Contains(t, res.out, "Failed to find best attacker.")
	assert.Contains(t, res.out, "Exiting the program...")
	assert.Contains(t, res.logs, "Failed to list factions: ")
}

func TestMenuJSONOutput(t *testing.T) {
	svc, _ := newSeededService(t)

	res := runMenu(t, svc, codec.NewJSONCodec(), "3\n2\n\n5\n")
	require.NoError(t, res.err)

	assert.Contains(t, res.out, `"title": "Best attacker of faction ID: 2"`)
	assert.Contains(t, res.out, `"name": "Raider"`)
	assert.Contains(t, res.out, `"faction_name": "Vikings"`)
}

func TestMenuStopsOnCancelledContext(t *testing.T) {
	svc, _ := newSeededService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out strings.Builder
	menu := NewMenu(NewReportHandler(svc, nil, &out), strings.NewReader("5\n"), &out)

	err := menu.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestMenuReturnsRenderFailure(t *testing.T) {
	svc, _ := newSeededService(t)

	menu := NewMenu(NewReportHandler(svc, nil, failingWriter{}), strings.NewReader("1\n1\n\n5\n"), failingWriter{})
	menu.SetLogger(log.New(io.Discard, "", 0))

	err := menu.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken pipe")
}
