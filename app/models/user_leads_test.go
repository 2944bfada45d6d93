package models

import "testing"

func TestUserLeadsAvailable(t *testing.T) {
	var nilPool *UserLeads
	if nilPool.Available() != 0 {
		t.Fatal("nil pool must report zero")
	}

	tests := []struct {
		bonus, used, want int64
	}{
		{0, 0, 0},
		{10, 0, 10},
		{10, 4, 6},
		{10, 10, 0},
		{10, 12, 0}, // over-consumption clamps, never goes negative
	}
	for _, tt := range tests {
		ul := &UserLeads{BonusLeads: tt.bonus, BonusLeadsUsed: tt.used}
		if got := ul.Available(); got != tt.want {
			t.Fatalf("Available(%d/%d) = %d, want %d", tt.used, tt.bonus, got, tt.want)
		}
	}
}

func TestUserLeadsConsume(t *testing.T) {
	ul := &UserLeads{BonusLeads: 2}

	if !ul.Consume() || !ul.Consume() {
		t.Fatal("consuming within the pool must succeed")
	}
	if ul.Consume() {
		t.Fatal("consuming an empty pool must fail")
	}
	if ul.BonusLeadsUsed != 2 {
		t.Fatalf("BonusLeadsUsed = %d, want 2", ul.BonusLeadsUsed)
	}
}
