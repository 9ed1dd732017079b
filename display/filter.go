package display

import (
	"strings"

	"github.com/diversion-social/diversion-go/domain"
)

// FilterInterestsBySearchTerm filters categories and their sub-interests
// by a case-insensitive substring match against names and descriptions.
// A category is retained when it matches directly or has at least one
// matching sub-interest; retained categories carry only their matching
// sub-interests. A blank term returns
// the input unchanged, so the browse screen can call this on every
// keystroke without copying.
func FilterInterestsBySearchTerm(interests []domain.Interest, term string) []domain.Interest {
	term = strings.TrimSpace(term)
	if term == "" {
		return interests
	}
	lower := strings.ToLower(term)

	filtered := make([]domain.Interest, 0, len(interests))
	for _, interest := range interests {
		var matching []domain.SubInterest
		for _, sub := range interest.SubInterests {
			if containsFold(sub.Name, lower) || containsFold(sub.Description, lower) {
				matching = append(matching, sub)
			}
		}

		selfMatch := containsFold(interest.Name, lower) || containsFold(interest.Description, lower)
		if !selfMatch && len(matching) == 0 {
			continue
		}

		kept := interest
		kept.SubInterests = matching
		filtered = append(filtered, kept)
	}
	return filtered
}

// containsFold reports whether s contains lowerTerm, ignoring case.
// lowerTerm must already be lowercase.
func containsFold(s, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(s), lowerTerm)
}
