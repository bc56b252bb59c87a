package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
)

// Main menu choices
const (
	OptionShowTable    = 1
	OptionRoster       = 2
	OptionBestAttacker = 3
	OptionBestDefender = 4
	OptionExit         = 5
)

// Table submenu choices
const (
	TableFactions   = 1
	TableCharacters = 2
)

const mainMenu = `
===== FOR HONOR =====
1. Show a table (Faction or Character)
2. Show characters by faction
3. Show best attacker by faction
4. Show best defender by faction
5. Exit
Choose an option: `

const tableMenu = `
1. Faction
2. Character
Choose a table: `

// errEndOfInput stops the loop when input runs out in the middle of an action
var errEndOfInput = errors.New("end of input")

// Menu is the interactive loop over an input source and an output sink
type Menu struct {
	reports *ReportHandler
	in      *bufio.Scanner
	out     io.Writer
	logger  *log.Logger
}

// NewMenu creates a menu reading from in and writing to out
func NewMenu(reports *ReportHandler, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		reports: reports,
		in:      bufio.NewScanner(in),
		out:     out,
		logger:  log.Default(),
	}
}

// SetLogger routes diagnostics to l
func (m *Menu) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
		m.reports.SetLogger(l)
	}
}

// Run shows the menu until the user exits or input ends
func (m *Menu) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		m.print(mainMenu)
		line, ok := m.readLine()
		if !ok {
			return m.finish()
		}

		option, err := strconv.Atoi(line)
		if err != nil {
			m.logger.Printf("Invalid menu option %q: enter a number", line)
			m.print("Please enter a valid number.\n")
			continue
		}

		if option == OptionExit {
			m.print("Exiting the program...\n")
			return nil
		}

		done, err := m.dispatch(ctx, option)
		if errors.Is(err, errEndOfInput) {
			return m.finish()
		}
		if err != nil {
			return err
		}
		if !done {
			continue
		}

		m.print("\n(Enter to continue...)")
		if _, ok := m.readLine(); !ok {
			return m.finish()
		}
	}
}

// dispatch runs one menu action. It reports false when the action was
// skipped because of bad input, in which case there is nothing to pause on.
func (m *Menu) dispatch(ctx context.Context, option int) (bool, error) {
	switch option {
	case OptionShowTable:
		return m.showTable(ctx)
	case OptionRoster:
		return m.withFaction(ctx, m.reports.ShowRoster)
	case OptionBestAttacker:
		return m.withFaction(ctx, m.reports.ShowBestAttacker)
	case OptionBestDefender:
		return m.withFaction(ctx, m.reports.ShowBestDefender)
	default:
		m.print("Invalid option, try again.\n")
		return false, nil
	}
}

func (m *Menu) showTable(ctx context.Context) (bool, error) {
	m.print(tableMenu)
	line, ok := m.readLine()
	if !ok {
		return false, errEndOfInput
	}

	choice, err := strconv.Atoi(line)
	if err != nil {
		m.logger.Printf("Invalid table option %q: enter a number", line)
		m.print("Please enter a valid number.\n")
		return false, nil
	}

	switch choice {
	case TableFactions:
		return true, m.reports.ShowFactions(ctx)
	case TableCharacters:
		return true, m.reports.ShowCharacters(ctx)
	default:
		m.print("Invalid table option.\n")
		return false, nil
	}
}

// withFaction lists the factions, asks for an ID and runs show with it
func (m *Menu) withFaction(ctx context.Context, show func(context.Context, int64) error) (bool, error) {
	if err := m.reports.ShowFactions(ctx); err != nil {
		return false, err
	}

	m.print("\nEnter the faction ID: ")
	line, ok := m.readLine()
	if !ok {
		return false, errEndOfInput
	}

	id, err := strconv.ParseInt(line, 10, 64)
	if err != nil {
		m.logger.Printf("Invalid faction ID %q: enter a number", line)
		m.print("Please enter a valid number.\n")
		return false, nil
	}

	return true, show(ctx, id)
}

// readLine returns the next trimmed line, or false once input is exhausted
func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// finish ends the loop at end of input
func (m *Menu) finish() error {
	if err := m.in.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	m.print("\nEnd of input, exiting...\n")
	return nil
}

func (m *Menu) print(s string) {
	io.WriteString(m.out, s)
}
