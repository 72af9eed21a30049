package cosmos

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/data/azcosmos"

	"github.com/naatukodi/catering/services/catalog/domain/repositories"
)

func TestBuildMenuItemsQuery(t *testing.T) {
	tests := []struct {
		name       string
		filter     repositories.MenuItemFilter
		wantQuery  string
		wantParams []azcosmos.QueryParameter
	}{
		{
			name:      "no filter",
			filter:    repositories.MenuItemFilter{},
			wantQuery: "SELECT * FROM c WHERE c.type = 'menuItem' AND c.catererId = @cid ORDER BY c.createdAt DESC",
			wantParams: []azcosmos.QueryParameter{
				{Name: "@cid", Value: "CAT_1"},
			},
		},
		{
			name:      "category filter",
			filter:    repositories.MenuItemFilter{Category: "Starter"},
			wantQuery: "SELECT * FROM c WHERE c.type = 'menuItem' AND c.catererId = @cid AND c.category = @cat ORDER BY c.createdAt DESC",
			wantParams: []azcosmos.QueryParameter{
				{Name: "@cid", Value: "CAT_1"},
				{Name: "@cat", Value: "Starter"},
			},
		},
		{
			name:      "vegType filter",
			filter:    repositories.MenuItemFilter{VegType: "Veg"},
			wantQuery: "SELECT * FROM c WHERE c.type = 'menuItem' AND c.catererId = @cid AND c.vegType = @veg ORDER BY c.createdAt DESC",
			wantParams: []azcosmos.QueryParameter{
				{Name: "@cid", Value: "CAT_1"},
				{Name: "@veg", Value: "Veg"},
			},
		},
		{
			name:      "onlyActive filter",
			filter:    repositories.MenuItemFilter{OnlyActive: true},
			wantQuery: "SELECT * FROM c WHERE c.type = 'menuItem' AND c.catererId = @cid AND c.isActive = true ORDER BY c.createdAt DESC",
			wantParams: []azcosmos.QueryParameter{
				{Name: "@cid", Value: "CAT_1"},
			},
		},
		{
			name:      "all filters combined",
			filter:    repositories.MenuItemFilter{Category: "Main", VegType: "NonVeg", OnlyActive: true},
			wantQuery: "SELECT * FROM c WHERE c.type = 'menuItem' AND c.catererId = @cid AND c.category = @cat AND c.vegType = @veg AND c.isActive = true ORDER BY c.createdAt DESC",
			wantParams: []azcosmos.QueryParameter{
				{Name: "@cid", Value: "CAT_1"},
				{Name: "@cat", Value: "Main"},
				{Name: "@veg", Value: "NonVeg"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, params := buildMenuItemsQuery("CAT_1", tt.filter)
			if query != tt.wantQuery {
				t.Fatalf("expected query %q, got %q", tt.wantQuery, query)
			}
			if len(params) != len(tt.wantParams) {
				t.Fatalf("expected %d params, got %d", len(tt.wantParams), len(params))
			}
			for i, want := range tt.wantParams {
				if params[i] != want {
					t.Fatalf("param %d: expected %+v, got %+v", i, want, params[i])
				}
			}
		})
	}
}

func TestBuildPackagesQuery(t *testing.T) {
	t.Run("without onlyActive", func(t *testing.T) {
		query, params := buildPackagesQuery("CAT_1", false)
		want := "SELECT * FROM c WHERE c.type = 'package' AND c.catererId = @cid ORDER BY c.createdAt DESC"
		if query != want {
			t.Fatalf("expected query %q, got %q", want, query)
		}
		if len(params) != 1 || params[0].Name != "@cid" || params[0].Value != "CAT_1" {
			t.Fatalf("unexpected params: %+v", params)
		}
	})

	t.Run("with onlyActive", func(t *testing.T) {
		query, _ := buildPackagesQuery("CAT_1", true)
		want := "SELECT * FROM c WHERE c.type = 'package' AND c.catererId = @cid AND c.isActive = true ORDER BY c.createdAt DESC"
		if query != want {
			t.Fatalf("expected query %q, got %q", want, query)
		}
	})
}
