package models

import "testing"

func TestComposeID(t *testing.T) {
	tests := []struct {
		name      string
		pincode   string
		catererID string
		want      string
	}{
		{"typical pair", "500081", "CAT_1", "500081_CAT_1"},
		{"caterer id with underscore survives", "110001", "CAT_abc_def", "110001_CAT_abc_def"},
		{"empty caterer id", "110001", "", "110001_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComposeID(tt.pincode, tt.catererID); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
