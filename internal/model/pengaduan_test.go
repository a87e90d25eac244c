package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusInProcess.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("REJECTED").Valid())
	assert.False(t, Status("").Valid())
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusInProcess, true},
		{StatusPending, StatusCompleted, true},
		{StatusInProcess, StatusCompleted, true},
		{StatusInProcess, StatusPending, false},
		{StatusCompleted, StatusPending, false},
		{StatusCompleted, StatusInProcess, false},
		// Status yang sama selalu boleh (edit konten tanpa ubah status).
		{StatusPending, StatusPending, true},
		{StatusCompleted, StatusCompleted, true},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
