package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/campaign_finance/internal/core/domain"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// EncodeToken creates a base64 encoded token from an entry's session date and creation time.
// The triple matches the (session_year, session_day, created_at) ordering of ledger listings.
func EncodeToken(date domain.SessionDate, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%d|%d|%s", date.Year, date.Day, createdAt.Format(timeFormat))
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses the base64 encoded token back into a session date and creation time.
func DecodeToken(token string) (domain.SessionDate, time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.SessionDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 3)
	if len(parts) != 3 {
		return domain.SessionDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (split)")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return domain.SessionDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (session year parse): %w", err)
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return domain.SessionDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (session day parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[2])
	if err != nil {
		return domain.SessionDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return domain.SessionDate{Day: day, Year: year}, createdAt, nil
}
