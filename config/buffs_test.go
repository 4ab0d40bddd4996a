package config

import (
	"strings"
	"testing"
)

func TestDefaultBuffTable(t *testing.T) {
	table, err := DefaultBuffTable()
	if err != nil {
		t.Fatalf("DefaultBuffTable: %v", err)
	}
	if table.Count() != 4 {
		t.Errorf("Count = %d, want 4", table.Count())
	}
	def, ok := table.Get("Odycopin")
	if !ok {
		t.Fatal("Odycopin missing")
	}
	if def.Buff.Ticks != 900 || def.Debuff.Deltas[AttrEndurance] != -10 {
		t.Errorf("Odycopin = %+v", def)
	}
}

func TestParseBuffTableErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"syntax", "buffs: [", "parse buff table"},
		{"no name", "buffs:\n  - category: x\n", "has no name"},
		{"negative", "buffs:\n  - name: a\n    buff:\n      ticks: -1\n", "negative duration"},
		{"attribute", "buffs:\n  - name: a\n    buff:\n      deltas:\n        luck: 1\n", "unknown attribute"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBuffTable([]byte(tt.yaml))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}
