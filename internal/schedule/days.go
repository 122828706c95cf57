package schedule

import (
	"sort"
	"strings"

	"github.com/opencampus/roomfinder/internal/domain"
)

// dayTokens maps every recognised weekday spelling, lowercased, to its
// canonical code. Lookup is case-insensitive.
var dayTokens = map[string]domain.DayCode{
	"mo": domain.DayMonday, "mon": domain.DayMonday, "monday": domain.DayMonday,
	"tu": domain.DayTuesday, "tue": domain.DayTuesday, "tues": domain.DayTuesday, "tuesday": domain.DayTuesday,
	"we": domain.DayWednesday, "wed": domain.DayWednesday, "wednesday": domain.DayWednesday,
	"th": domain.DayThursday, "thu": domain.DayThursday, "thur": domain.DayThursday, "thursday": domain.DayThursday,
	"fr": domain.DayFriday, "fri": domain.DayFriday, "friday": domain.DayFriday,
	"sa": domain.DaySaturday, "sat": domain.DaySaturday, "saturday": domain.DaySaturday,
	"su": domain.DaySunday, "sun": domain.DaySunday, "sunday": domain.DaySunday,
}

var maxDayTokenLen = func() int {
	max := 0
	for token := range dayTokens {
		if len(token) > max {
			max = len(token)
		}
	}
	return max
}()

// ParseDays extracts weekday codes from a free-form day token string such as
// "MoWeFr" or "Monday/Wednesday". The scan is greedy: at each position the
// longest recognised token wins, and unrecognised characters are silently
// discarded. The result is deduplicated and sorted in canonical order
// Mo<Tu<We<Th<Fr<Sa<Su. An input with no recognised tokens yields an empty
// set, not an error.
func ParseDays(days string) []domain.DayCode {
	days = strings.TrimSpace(days)
	lower := strings.ToLower(days)

	found := make(map[domain.DayCode]struct{})
	for i := 0; i < len(lower); {
		matched := 0
		for length := maxDayTokenLen; length >= 2; length-- {
			if i+length > len(lower) {
				continue
			}
			if code, ok := dayTokens[lower[i:i+length]]; ok {
				found[code] = struct{}{}
				matched = length
				break
			}
		}
		if matched == 0 {
			i++
			continue
		}
		i += matched
	}

	result := make([]domain.DayCode, 0, len(found))
	for code := range found {
		result = append(result, code)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].OrderIndex() < result[j].OrderIndex()
	})
	return result
}
