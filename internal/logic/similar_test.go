package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClosestItem(t *testing.T) {
	items := []string{"milk", "eggs", "wholegrain bread"}

	tests := []struct {
		name  string
		typed string
		want  string
		found bool
	}{
		{name: "exact match", typed: "milk", want: "milk", found: true},
		{name: "case insensitive", typed: "MILK", want: "milk", found: true},
		{name: "swapped letters", typed: "mikl", want: "milk", found: true},
		{name: "surrounding whitespace ignored", typed: "  eggs ", want: "eggs", found: true},
		{name: "longer input gets more slack", typed: "wholegrain bred", want: "wholegrain bread", found: true},
		{name: "unrelated word", typed: "bananas", found: false},
		{name: "too short to judge", typed: "mi", found: false},
		{name: "empty input", typed: "", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := ClosestItem(tt.typed, items)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClosestItemEmptyList(t *testing.T) {
	_, found := ClosestItem("milk", nil)
	assert.False(t, found)
}

func TestClosestItemTieKeepsListOrder(t *testing.T) {
	// "goat milk" and "oat milks" are both one edit away; the earlier
	// list entry wins the tie.
	got, found := ClosestItem("oat milk", []string{"goat milk", "oat milks", "milk"})

	assert.True(t, found)
	assert.Equal(t, "goat milk", got)
}
