package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTallyGuestsPerRoom(t *testing.T) {
	counts := TallyGuestsPerRoom([]string{"1", "1", "2", ""})
	assert.Equal(t, map[string]int{"1": 2, "2": 1}, counts)

	assert.Empty(t, TallyGuestsPerRoom(nil))
	assert.Empty(t, TallyGuestsPerRoom([]string{"", ""}))
}

func TestValidateAssignmentOK(t *testing.T) {
	res := ValidateAssignment(3, []string{"1", "1", "2"}, map[string]int{"1": 2, "2": 4})
	assert.True(t, res.OK())
	assert.Empty(t, res.OverAssigned)
	assert.Equal(t, map[string]int{"1": 2, "2": 1}, res.GuestsPerRoom)
}

func TestValidateAssignmentNoAdults(t *testing.T) {
	res := ValidateAssignment(0, []string{}, map[string]int{})
	assert.False(t, res.OK())
	assert.Contains(t, res.Violations, "At least one adult must be added.")
}

func TestValidateAssignmentUnassignedAdult(t *testing.T) {
	res := ValidateAssignment(2, []string{"1", ""}, map[string]int{"1": 5})
	assert.False(t, res.OK())
	assert.Contains(t, res.Violations, "All adults must be assigned a room.")
	// the assigned adult still counts toward the tally
	assert.Equal(t, map[string]int{"1": 1}, res.GuestsPerRoom)
}

func TestValidateAssignmentOverAssigned(t *testing.T) {
	res := ValidateAssignment(3, []string{"1", "1", "1"}, map[string]int{"1": 2})
	assert.False(t, res.OK())
	assert.True(t, res.OverAssigned["1"])
	assert.Contains(t, res.Violations, "Too many guests selected for room 1.")
}

func TestValidateAssignmentZeroAvailabilityKeepsSelection(t *testing.T) {
	// a room that dropped to zero free beds stays selected and is flagged,
	// the selection is not silently cleared
	res := ValidateAssignment(1, []string{"7"}, map[string]int{"7": 0})
	assert.False(t, res.OK())
	assert.True(t, res.OverAssigned["7"])
	assert.Equal(t, map[string]int{"7": 1}, res.GuestsPerRoom)
}

func TestValidateAssignmentCollectsAllViolations(t *testing.T) {
	res := ValidateAssignment(3, []string{"1", "1"}, map[string]int{"1": 1})
	assert.False(t, res.OK())
	assert.Len(t, res.Violations, 2)
}
