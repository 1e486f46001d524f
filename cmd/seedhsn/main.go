// Command seedhsn converts the GST HSN/SAC rate Excel workbook into a SQL
// seed file for the hsn_codes reference table.
// Usage: go run ./cmd/seedhsn <workbook.xlsx>
// Output: db/seeds/hsn_codes.sql
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

const batchSize = 500

type hsnEntry struct {
	code        string
	description string
	gstRate     float64
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	if len(os.Args) < 2 {
		return fmt.Errorf("usage: seedhsn <workbook.xlsx>")
	}
	xlsxPath := os.Args[1]
	outPath := "db/seeds/hsn_codes.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	seen := make(map[string]bool)
	var entries []hsnEntry

	goods, err := parseGoodsSheet(f, seen)
	if err != nil {
		return fmt.Errorf("parse goods sheet: %w", err)
	}
	entries = append(entries, goods...)
	log.Printf("goods sheet: %d entries", len(goods))

	services, err := parseServicesSheet(f, seen)
	if err != nil {
		return fmt.Errorf("parse services sheet: %w", err)
	}
	entries = append(entries, services...)
	log.Printf("services sheet: %d entries", len(services))

	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	header := fmt.Sprintf("-- HSN/SAC seed data generated from %s.\n-- %d entries in batches of %d.\nBEGIN;\n\n",
		xlsxPath, len(entries), batchSize)
	if _, err := out.WriteString(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i := 0; i < len(entries); i += batchSize {
		end := i + batchSize
		if end > len(entries) {
			end = len(entries)
		}
		if err := writeBatch(out, entries[i:end]); err != nil {
			return fmt.Errorf("write batch at offset %d: %w", i, err)
		}
	}

	if _, err := out.WriteString("\nCOMMIT;\n"); err != nil {
		return fmt.Errorf("write footer: %w", err)
	}

	log.Printf("generated %d entries in %s", len(entries), outPath)
	return nil
}

// parseGoodsSheet reads the HSN master sheet (index 0). The workbook carries
// 4, 6, and 8 digit codes with their descriptions on the same row and a
// percentage-formatted GST rate. Data starts at row index 5.
func parseGoodsSheet(f *excelize.File, seen map[string]bool) ([]hsnEntry, error) {
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	var entries []hsnEntry
	for i := 5; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 14 {
			continue
		}

		rateStr := strings.TrimSuffix(strings.TrimSpace(cellVal(row, 13)), "%")
		if rateStr == "" {
			continue
		}
		var rate float64
		if _, serr := fmt.Sscanf(rateStr, "%f", &rate); serr != nil {
			continue
		}

		for _, pair := range [][2]int{{10, 12}, {8, 9}, {5, 7}} {
			code := strings.TrimSpace(cellVal(row, pair[0]))
			if code != "" && isNumeric(code) {
				entries = addEntry(entries, seen, code, strings.TrimSpace(cellVal(row, pair[1])), rate)
			}
		}
	}
	return entries, nil
}

// parseServicesSheet reads the SAC master sheet. Rates are free text
// ("18%", "Exempt", "12%-18%"), so each parsed rate yields its own entry.
// Data starts at row index 3.
func parseServicesSheet(f *excelize.File, seen map[string]bool) ([]hsnEntry, error) {
	rows, err := f.GetRows("SAC_Master")
	if err != nil {
		return nil, err
	}

	var entries []hsnEntry
	for i := 3; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 5 {
			continue
		}

		rates := parseServiceRate(strings.TrimSpace(cellVal(row, 4)))
		if len(rates) == 0 {
			continue
		}

		for _, rate := range rates {
			for _, pair := range [][2]int{{2, 3}, {0, 1}} {
				code := strings.TrimSpace(cellVal(row, pair[0]))
				if code != "" && isNumeric(code) {
					entries = addEntry(entries, seen, code, strings.TrimSpace(cellVal(row, pair[1])), rate)
				}
			}
		}
	}
	return entries, nil
}

var ratePattern = regexp.MustCompile(`(\d+(?:\.\d+)?)%`)

// parseServiceRate extracts GST rate(s) from free-text SAC rate strings.
func parseServiceRate(s string) []float64 {
	if s == "" {
		return nil
	}

	lower := strings.ToLower(s)
	if lower == "exempt" || lower == "nil" {
		return []float64{0}
	}

	matches := ratePattern.FindAllStringSubmatch(s, -1)
	seenRate := make(map[float64]bool)
	var rates []float64
	for _, m := range matches {
		var rate float64
		if _, err := fmt.Sscanf(m[1], "%f", &rate); err == nil && !seenRate[rate] {
			seenRate[rate] = true
			rates = append(rates, rate)
		}
	}
	return rates
}

func addEntry(entries []hsnEntry, seen map[string]bool, code, description string, gstRate float64) []hsnEntry {
	key := fmt.Sprintf("%s|%.2f", code, gstRate)
	if seen[key] {
		return entries
	}
	seen[key] = true
	return append(entries, hsnEntry{code: code, description: description, gstRate: gstRate})
}

func writeBatch(out *os.File, batch []hsnEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var b strings.Builder
	b.WriteString("INSERT INTO hsn_codes (code, description, gst_rate) VALUES\n")
	for i := range batch {
		e := &batch[i]
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(&b, "  ('%s', '%s', %.2f)",
			escapeSQL(e.code), escapeSQL(e.description), e.gstRate)
	}
	b.WriteString("\nON CONFLICT (code, gst_rate) DO NOTHING;\n")

	_, err := out.WriteString(b.String())
	return err
}

func cellVal(row []string, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}

func isNumeric(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return s != ""
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
