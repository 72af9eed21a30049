package httpx

import (
	"net/http/httptest"
	"testing"
)

func TestPageParams(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		defaultSize int32
		wantSize    int32
		wantToken   string
	}{
		{
			name:        "defaults when no params",
			url:         "/orders",
			defaultSize: 50,
			wantSize:    50,
			wantToken:   "",
		},
		{
			name:        "reads pageSize",
			url:         "/orders?pageSize=10",
			defaultSize: 50,
			wantSize:    10,
			wantToken:   "",
		},
		{
			name:        "reads continuationToken verbatim",
			url:         "/orders?continuationToken=abc%2Bdef%3D%3D",
			defaultSize: 50,
			wantSize:    50,
			wantToken:   "abc+def==",
		},
		{
			name:        "invalid pageSize falls back to default",
			url:         "/orders?pageSize=banana",
			defaultSize: 20,
			wantSize:    20,
			wantToken:   "",
		},
		{
			name:        "non-positive pageSize falls back to default",
			url:         "/orders?pageSize=0",
			defaultSize: 20,
			wantSize:    20,
			wantToken:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			size, token := PageParams(r, tt.defaultSize)
			if size != tt.wantSize {
				t.Fatalf("expected size %d, got %d", tt.wantSize, size)
			}
			if token != tt.wantToken {
				t.Fatalf("expected token %q, got %q", tt.wantToken, token)
			}
		})
	}
}
