package maintenance

import (
	"strings"

	"github.com/google/uuid"
	"github.com/keeslam/CarRentalManager-sub004/internal/fleet"
)

// suppressionKeywords maps each deadline type to the note keywords that
// mark its maintenance as already handled. Matching is a case-insensitive
// substring test over the block's free-text notes; this mirrors how the
// administration actually tags blocks and is intentionally loose.
var suppressionKeywords = map[DeadlineType][]string{
	DeadlineAPKInspection:   {"apk_inspection", "apk", "keuring", "rdw"},
	DeadlineWarrantyService: {"warranty_service", "warranty", "garantie", "garanti", "recall"},
}

// IsSuppressed reports whether automatic reminders for a vehicle and
// deadline type should be skipped because a matching maintenance block
// exists. Any matching block suppresses, regardless of whether the block
// is scheduled, in progress or completed: once maintenance has been put on
// the books the automatic reminders would only duplicate it.
func IsSuppressed(vehicleID uuid.UUID, deadline DeadlineType, blocks []fleet.Reservation) bool {
	keywords := suppressionKeywords[deadline]
	if len(keywords) == 0 {
		return false
	}

	for _, block := range blocks {
		if block.VehicleID != vehicleID || block.Notes == nil {
			continue
		}

		notes := strings.ToLower(*block.Notes)
		for _, keyword := range keywords {
			if strings.Contains(notes, keyword) {
				return true
			}
		}
	}

	return false
}
