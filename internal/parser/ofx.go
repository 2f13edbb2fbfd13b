package parser

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendview-dev/spendview/internal/id"
	"github.com/spendview-dev/spendview/internal/model"
)

// OFX/QFX is SGML-like, not well-formed XML. Card exports close their
// transaction aggregates, so a regex scan over <STMTTRN>...</STMTTRN> blocks
// is sufficient and matches the wire contract exactly.
var (
	ofxBlockRe  = regexp.MustCompile(`(?s)<STMTTRN>(.*?)</STMTTRN>`)
	ofxDateRe   = regexp.MustCompile(`<DTPOSTED>(.*?)</DTPOSTED>`)
	ofxNameRe   = regexp.MustCompile(`<NAME>(.*?)</NAME>`)
	ofxMemoRe   = regexp.MustCompile(`<MEMO>(.*?)</MEMO>`)
	ofxAmountRe = regexp.MustCompile(`<TRNAMT>(.*?)</TRNAMT>`)
)

// parseOFX extracts transactions from an OFX/QFX export. Blocks missing the
// posted date or the amount are skipped silently; zero surviving blocks is
// ErrNoTransactions.
func parseOFX(path, bank string) ([]model.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, unreadable(err)
	}

	var txns []model.Transaction
	for _, m := range ofxBlockRe.FindAllStringSubmatch(string(data), -1) {
		block := m[1]

		date, ok := ofxPostedDate(block)
		if !ok {
			continue
		}
		am := ofxAmountRe.FindStringSubmatch(block)
		if am == nil {
			continue
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(am[1]))
		if err != nil {
			continue
		}

		// NAME is preferred; MEMO is the fallback narrative field.
		desc := "Unknown"
		if nm := ofxNameRe.FindStringSubmatch(block); nm != nil {
			desc = strings.TrimSpace(nm[1])
		} else if mm := ofxMemoRe.FindStringSubmatch(block); mm != nil {
			desc = strings.TrimSpace(mm[1])
		}

		txns = append(txns, model.Transaction{
			ID:          id.ForTransaction(bank, date, amount, desc),
			Date:        date,
			Description: desc,
			Amount:      amount,
			Source:      bank,
			Category:    model.Uncategorized,
		})
	}

	if len(txns) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoTransactions)
	}
	return txns, nil
}

// ofxPostedDate converts the 8-digit YYYYMMDD prefix of a DTPOSTED value.
// Anything after the first eight digits (time of day, GMT offset) is ignored.
func ofxPostedDate(block string) (time.Time, bool) {
	m := ofxDateRe.FindStringSubmatch(block)
	if m == nil {
		return time.Time{}, false
	}
	s := strings.TrimSpace(m[1])
	if len(s) < 8 {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", s[:8])
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
