package cli

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/alexanderramin/cropcal/internal/contract"
	"github.com/alexanderramin/cropcal/internal/domain"
)

// parseTodayFlag parses --today. Empty means "use the clock" and yields nil.
func parseTodayFlag(s string) (*civil.Date, error) {
	if s == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(s)
	if err != nil {
		return nil, fmt.Errorf("--today: use YYYY-MM-DD format")
	}
	return &d, nil
}

// resolveCategory matches a category name ignoring case. Empty stays empty.
func resolveCategory(s string) (domain.CropCategory, error) {
	if s == "" {
		return "", nil
	}
	for _, c := range domain.Categories {
		if strings.EqualFold(string(c), s) {
			return c, nil
		}
	}
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = strings.ToLower(string(c))
	}
	return "", fmt.Errorf("unknown category %q (want one of %s)", s, strings.Join(names, ", "))
}

// resolveGardenStatus validates a --status value.
func resolveGardenStatus(s string) (domain.GardenStatus, error) {
	s = strings.ToLower(s)
	if s == "" || domain.ValidGardenStatuses[s] {
		return domain.GardenStatus(s), nil
	}
	return "", fmt.Errorf("unknown status %q (want planned, planted, harvesting or harvested)", s)
}

// resolveGardenSort validates a --sort value.
func resolveGardenSort(s string) (contract.GardenSort, error) {
	switch contract.GardenSort(strings.ToLower(s)) {
	case "", contract.GardenSortName:
		return contract.GardenSortName, nil
	case contract.GardenSortDate:
		return contract.GardenSortDate, nil
	case contract.GardenSortWindow:
		return contract.GardenSortWindow, nil
	default:
		return "", fmt.Errorf("unknown sort %q (want name, date or window)", s)
	}
}

// parseMonthFlag parses --month as YYYY-MM. Empty yields zeros, which the
// calendar reads as the current month.
func parseMonthFlag(s string) (int, time.Month, error) {
	if s == "" {
		return 0, 0, nil
	}
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return 0, 0, fmt.Errorf("--month: use YYYY-MM format")
	}
	return t.Year(), t.Month(), nil
}
