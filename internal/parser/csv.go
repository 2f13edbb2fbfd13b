package parser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/id"
	"github.com/spendview-dev/spendview/internal/model"
)

const (
	extCSV = ".csv"
	extOFX = ".ofx"
	extQFX = ".qfx"
)

// sniffLines is how many header lines CanParse inspects in a CSV.
const sniffLines = 5

func fileExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// sniffCSV returns the first few lines of the file, lowercased, for
// bank-signature detection. ok is false on any read problem.
func sniffCSV(path string) (head string, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	var b strings.Builder
	sc := bufio.NewScanner(f)
	for i := 0; i < sniffLines && sc.Scan(); i++ {
		b.WriteString(sc.Text())
		b.WriteString("\n")
	}
	if sc.Err() != nil {
		return "", false
	}
	return strings.ToLower(b.String()), true
}

// sniffOFX returns the first 1000 bytes of the file, lowercased.
func sniffOFX(path string) (head string, ok bool) {
	f, err := os.Open(path)
	if err != nil {
		return "", false
	}
	defer f.Close()

	buf := make([]byte, 1000)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", false
	}
	return strings.ToLower(string(buf[:n])), true
}

func containsAny(haystack string, tokens []string) bool {
	for _, tok := range tokens {
		if strings.Contains(haystack, tok) {
			return true
		}
	}
	return false
}

// columnAliases lists known header-name fragments per role for one bank.
type columnAliases struct {
	date   []string
	desc   []string
	amount []string
}

func matchesAny(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// resolveColumns assigns the three required roles by case-insensitive
// substring match against the bank's aliases. Columns are considered for one
// role at most (date takes precedence over description over amount) and the
// last matching column in file order wins, so exports that list a coarse
// column before the canonical one (Chase's "Details" before "Description")
// resolve to the canonical one.
func resolveColumns(header []string, aliases columnAliases) (date, desc, amount int, missing []string) {
	date, desc, amount = -1, -1, -1
	for i, col := range header {
		name := strings.ToLower(col)
		switch {
		case matchesAny(name, aliases.date):
			date = i
		case matchesAny(name, aliases.desc):
			desc = i
		case matchesAny(name, aliases.amount):
			amount = i
		}
	}
	if date < 0 {
		missing = append(missing, "date")
	}
	if desc < 0 {
		missing = append(missing, "description")
	}
	if amount < 0 {
		missing = append(missing, "amount")
	}
	return date, desc, amount, missing
}

// readRecords loads all CSV records from path. Bank exports disagree on field
// counts, so no count is enforced here.
func readRecords(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, unreadable(err)
	}
	defer f.Close()

	cr := csv.NewReader(bufio.NewReader(f))
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	return records, nil
}

// csvOptions control per-bank CSV extraction.
type csvOptions struct {
	aliases     columnAliases
	passthrough bool // carry the bank's own Category/Type columns when present
}

// rowSchema holds resolved column indices; -1 means absent.
type rowSchema struct {
	date, desc, amount    int
	origCategory, txnType int
}

// parseCSV is the shared CSV driver for the bank-specific parsers.
func parseCSV(path, bank string, opts csvOptions) ([]model.Transaction, error) {
	records, err := readRecords(path)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &SchemaError{File: filepath.Base(path), Missing: []string{"date", "description", "amount"}}
	}

	header := records[0]
	dateCol, descCol, amountCol, missing := resolveColumns(header, opts.aliases)
	if len(missing) > 0 {
		return nil, &SchemaError{File: filepath.Base(path), Missing: missing}
	}

	schema := rowSchema{date: dateCol, desc: descCol, amount: amountCol, origCategory: -1, txnType: -1}
	if opts.passthrough {
		for i, col := range header {
			switch strings.ToLower(strings.TrimSpace(col)) {
			case "category":
				schema.origCategory = i
			case "type":
				schema.txnType = i
			}
		}
	}

	return extractRows(records[1:], schema, bank), nil
}

// extractRows converts CSV records to transactions. Rows whose date or amount
// does not parse are dropped, not failed.
func extractRows(records [][]string, s rowSchema, bank string) []model.Transaction {
	var txns []model.Transaction
	for _, rec := range records {
		if s.date >= len(rec) || s.desc >= len(rec) || s.amount >= len(rec) {
			continue
		}
		date, ok := parseDate(rec[s.date])
		if !ok {
			continue
		}
		amount, ok := parseAmount(rec[s.amount])
		if !ok {
			continue
		}

		txn := model.Transaction{
			Date:        date,
			Description: strings.TrimSpace(rec[s.desc]),
			Amount:      amount,
			Source:      bank,
			Category:    model.Uncategorized,
		}
		if s.origCategory >= 0 && s.origCategory < len(rec) {
			txn.OriginalCategory = strings.TrimSpace(rec[s.origCategory])
		}
		if s.txnType >= 0 && s.txnType < len(rec) {
			txn.TransactionType = strings.TrimSpace(rec[s.txnType])
		}
		txn.ID = id.ForTransaction(bank, date, amount, txn.Description)
		txns = append(txns, txn)
	}
	return txns
}

// dateLayouts are tried in order. US bank exports are month-first.
var dateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01/02/06",
	"2006/01/02",
	"2006-01-02 15:04:05",
	"Jan 2, 2006",
	"January 2, 2006",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseAmount(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "")
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	s = strings.TrimPrefix(s, "$")
	if neg {
		s = "-" + s
	}
	if s == "" || s == "-" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// allDates reports whether every non-empty value in the column parses as a
// date. Used by the generic parser's content-based inference.
func allDates(records [][]string, col int) bool {
	seen := false
	for _, rec := range records {
		if col >= len(rec) {
			return false
		}
		v := strings.TrimSpace(rec[col])
		if v == "" {
			continue
		}
		if _, ok := parseDate(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}

// allNumeric reports whether every non-empty value in the column parses as a
// number.
func allNumeric(records [][]string, col int) bool {
	seen := false
	for _, rec := range records {
		if col >= len(rec) {
			return false
		}
		v := strings.TrimSpace(rec[col])
		if v == "" {
			continue
		}
		if _, ok := parseAmount(v); !ok {
			return false
		}
		seen = true
	}
	return seen
}
