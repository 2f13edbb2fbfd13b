package parser

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/spendview-dev/spendview/internal/model"
)

// Dispatcher routes statement files to the first parser that recognizes them
// and merges multi-file results into one table.
type Dispatcher struct {
	parsers []Parser
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher over the default parser list.
func NewDispatcher(log zerolog.Logger) *Dispatcher {
	return &Dispatcher{parsers: DefaultParsers(), log: log}
}

// BatchResult is the outcome of parsing a batch of files. Failures holds
// per-file errors; the batch as a whole fails only when Parsed stays empty.
type BatchResult struct {
	Transactions model.Table
	Parsed       []string
	Failures     []FileError
}

// ParseFile parses one file with the first parser whose CanParse accepts it.
// When none does, the generic parser is tried as a last resort.
func (d *Dispatcher) ParseFile(path string) (model.Table, error) {
	base := filepath.Base(path)
	for _, p := range d.parsers {
		if !p.CanParse(path) {
			continue
		}
		d.log.Info().Str("file", base).Str("parser", p.Bank()).Msg("parsing statement")
		return d.parseWith(p, path)
	}

	d.log.Warn().Str("file", base).Msg("no bank parser matched, trying generic")
	return d.parseWith(d.parsers[len(d.parsers)-1], path)
}

func (d *Dispatcher) parseWith(p Parser, path string) (model.Table, error) {
	txns, err := p.Parse(path)
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrNoTransactions)
	}
	return model.Table(txns), nil
}

// ParseFiles parses every file, collecting per-file outcomes. A single file's
// failure never aborts the batch; the combined table is sorted by date
// ascending. The returned error is non-nil only when zero files succeed.
func (d *Dispatcher) ParseFiles(paths []string) (BatchResult, error) {
	var res BatchResult
	if len(paths) == 0 {
		return res, errors.New("no files provided")
	}

	for _, path := range paths {
		txns, err := d.ParseFile(path)
		if err != nil {
			d.log.Warn().Str("file", filepath.Base(path)).Err(err).Msg("statement failed to parse")
			res.Failures = append(res.Failures, FileError{File: filepath.Base(path), Err: err})
			continue
		}
		res.Transactions = append(res.Transactions, txns...)
		res.Parsed = append(res.Parsed, path)
	}

	if len(res.Parsed) == 0 {
		return res, &BatchError{Failures: res.Failures}
	}

	res.Transactions.SortByDate()
	return res, nil
}
