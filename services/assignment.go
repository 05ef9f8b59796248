package services

import "fmt"

// AssignmentResult collects every violation of a proposed adult→room
// assignment, not just the first one. Submission is blocked while Violations
// is non-empty.
type AssignmentResult struct {
	Violations    []string
	OverAssigned  map[string]bool
	GuestsPerRoom map[string]int
}

func (r AssignmentResult) OK() bool {
	return len(r.Violations) == 0
}

// TallyGuestsPerRoom builds the canonical room id → assigned adult count map
// from per-adult room selections. Empty selections are skipped.
func TallyGuestsPerRoom(selections []string) map[string]int {
	counts := make(map[string]int)
	for _, roomID := range selections {
		if roomID == "" {
			continue
		}
		counts[roomID]++
	}
	return counts
}

// ValidateAssignment checks a proposed assignment of adultCount adults to
// rooms against the per-room availability map. All rules are evaluated
// independently:
//   - adultCount must be at least 1
//   - every adult needs a room selected
//   - no room may be assigned more adults than it has free beds
//
// A room that is already selected but has dropped to zero availability stays
// in the tally and comes back flagged over-assigned rather than being cleared.
func ValidateAssignment(adultCount int, selections []string, availability map[string]int) AssignmentResult {
	res := AssignmentResult{
		OverAssigned:  make(map[string]bool),
		GuestsPerRoom: TallyGuestsPerRoom(selections),
	}

	if adultCount < 1 {
		res.Violations = append(res.Violations, "At least one adult must be added.")
	}

	assigned := 0
	for _, roomID := range selections {
		if roomID != "" {
			assigned++
		}
	}
	if assigned < adultCount || len(selections) != adultCount {
		res.Violations = append(res.Violations, "All adults must be assigned a room.")
	}

	for roomID, count := range res.GuestsPerRoom {
		if count > availability[roomID] {
			res.OverAssigned[roomID] = true
			res.Violations = append(res.Violations, fmt.Sprintf("Too many guests selected for room %s.", roomID))
		}
	}

	return res
}
