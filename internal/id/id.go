package id

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ForTransaction returns a deterministic UUID for a parsed statement row,
// derived from the fields that identify it in the source export. Re-importing
// the same file yields the same IDs.
func ForTransaction(source string, date time.Time, amount decimal.Decimal, description string) string {
	key := strings.Join([]string{
		strings.ToLower(source),
		date.Format("2006-01-02"),
		amount.String(),
		description,
	}, "|")
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()
}
