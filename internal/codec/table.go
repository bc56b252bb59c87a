package codec

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"forhonor/internal/domain"
)

// DefaultSummaryWidth is the column width for faction summaries
const DefaultSummaryWidth = 50

// TableCodec renders reports as fixed-width text tables
type TableCodec struct {
	SummaryWidth int
}

// NewTableCodec creates a table codec; widths below 4 fall back to the default
func NewTableCodec(summaryWidth int) *TableCodec {
	if summaryWidth < 4 {
		summaryWidth = DefaultSummaryWidth
	}
	return &TableCodec{SummaryWidth: summaryWidth}
}

// Format returns the codec format identifier
func (c *TableCodec) Format() string {
	return "table"
}

// Export writes the report title, a header row and one line per record
func (c *TableCodec) Export(report *domain.Report, w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "\n--- %s ---\n", report.Title)

	switch report.Kind {
	case domain.ReportFactions:
		c.writeFactions(&b, report.Factions)
	case domain.ReportCharacters:
		writeCharacters(&b, report.Characters)
	case domain.ReportRoster:
		writeRoster(&b, report.Characters)
	default:
		return fmt.Errorf("unknown report kind %q", report.Kind)
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

func (c *TableCodec) writeFactions(b *strings.Builder, factions []domain.Faction) {
	summaryCol := fmt.Sprintf("%%-%ds", c.SummaryWidth)
	writeHeader(b, fmt.Sprintf("%-5s | %-15s | "+summaryCol, "ID", "Name", "Summary (truncated)"))

	if len(factions) == 0 {
		b.WriteString("The faction table is empty.\n")
		return
	}
	for _, f := range factions {
		fmt.Fprintf(b, "%-5d | %-15s | "+summaryCol+"\n", f.ID, cell(f.Name), Truncate(f.Summary, c.SummaryWidth))
	}
}

func writeCharacters(b *strings.Builder, characters []domain.Character) {
	writeHeader(b, fmt.Sprintf("%-5s | %-15s | %-7s | %-7s | %-10s", "ID", "Name", "Attack", "Defense", "Faction ID"))

	if len(characters) == 0 {
		b.WriteString("The character table is empty.\n")
		return
	}
	for _, ch := range characters {
		fmt.Fprintf(b, "%-5d | %-15s | %-7s | %-7s | %-10d\n",
			ch.ID, cell(ch.Name), rating(ch.Attack), rating(ch.Defense), ch.FactionID)
	}
}

func writeRoster(b *strings.Builder, characters []domain.Character) {
	writeHeader(b, fmt.Sprintf("%-5s | %-15s | %-7s | %-7s | %-15s", "ID", "Name", "Attack", "Defense", "Faction"))

	if len(characters) == 0 {
		b.WriteString("No characters found for this faction.\n")
		return
	}
	for _, ch := range characters {
		fmt.Fprintf(b, "%-5d | %-15s | %-7s | %-7s | %-15s\n",
			ch.ID, cell(ch.Name), rating(ch.Attack), rating(ch.Defense), cell(ch.FactionName))
	}
}

func writeHeader(b *strings.Builder, header string) {
	header = strings.TrimRight(header, " ")
	b.WriteString(header)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("-", utf8.RuneCountInString(header)))
	b.WriteByte('\n')
}

// rating formats a nullable rating with one decimal, "-" when NULL
func rating(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.1f", *v)
}

// cell composes accents onto their base letters so that padding, which
// counts runes, lines up
func cell(s string) string {
	return norm.NFC.String(s)
}

// Truncate shortens text to at most length runes, marking cuts with "...".
// Text is NFC-normalized first so a cut never separates a letter from its accent.
func Truncate(text string, length int) string {
	text = cell(text)
	if utf8.RuneCountInString(text) <= length {
		return text
	}
	if length <= 3 {
		return strings.Repeat(".", length)
	}
	runes := []rune(text)
	return string(runes[:length-3]) + "..."
}
