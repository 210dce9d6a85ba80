// Command seedcolors converts a color-name Excel workbook into a SQL seed
// file for the color_names table. The workbook's first sheet must carry a
// header row followed by name and hex columns.
// Usage: go run ./cmd/seedcolors [workbook.xlsx]
// Output: db/seeds/color_names.sql
package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"palettehub/internal/domain"
)

const batchSize = 500

type colorEntry struct {
	name string
	hex  string
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	xlsxPath := "color_names.xlsx"
	if len(os.Args) > 1 {
		xlsxPath = os.Args[1]
	}
	outPath := "db/seeds/color_names.sql"

	f, err := excelize.OpenFile(xlsxPath)
	if err != nil {
		return fmt.Errorf("open Excel file: %w", err)
	}
	defer func() { _ = f.Close() }()

	entries, err := parseSheet(f)
	if err != nil {
		return fmt.Errorf("parse sheet: %w", err)
	}
	log.Printf("parsed %d color names", len(entries))

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer func() { _ = out.Close() }()

	w := func(s string) error { _, werr := fmt.Fprintln(out, s); return werr }

	for _, line := range []string{
		"-- Color name seed data generated from Excel.",
		fmt.Sprintf("-- %d entries in batches of %d.", len(entries), batchSize),
		"-- Run: make seed-colors",
		"BEGIN;",
		"",
	} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write header: %w", werr)
		}
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

	for _, line := range []string{"", "COMMIT;"} {
		if werr := w(line); werr != nil {
			return fmt.Errorf("write footer: %w", werr)
		}
	}

	log.Printf("Generated %d entries (%d batches) in %s",
		len(entries), (len(entries)+batchSize-1)/batchSize, outPath)
	return nil
}

// parseSheet reads the first sheet. Column A holds the color name and
// column B the hex value; row 0 is the header.
func parseSheet(f *excelize.File) ([]colorEntry, error) {
	sheetName := f.GetSheetName(0)
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var entries []colorEntry
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 2 {
			continue
		}

		name := strings.TrimSpace(row[0])
		hex, err := domain.NormalizeHex(strings.TrimSpace(row[1]))
		if name == "" || err != nil || seen[hex] {
			continue
		}
		seen[hex] = true
		entries = append(entries, colorEntry{name: name, hex: hex})
	}
	return entries, nil
}

func writeBatch(out *os.File, batch []colorEntry) error {
	if len(batch) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO color_names (hex, name) VALUES\n")
	for i, e := range batch {
		sb.WriteString(fmt.Sprintf("  ('%s', '%s')", e.hex, sqlEscape(e.name)))
		if i < len(batch)-1 {
			sb.WriteString(",\n")
		}
	}
	sb.WriteString("\nON CONFLICT (hex) DO UPDATE SET name = EXCLUDED.name;\n")

	_, err := fmt.Fprintln(out, sb.String())
	return err
}

func sqlEscape(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
