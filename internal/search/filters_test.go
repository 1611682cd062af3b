package search

import (
	"reflect"
	"testing"
	"time"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestFilters_Qualifiers(t *testing.T) {
	tests := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{
			name:    "empty filters produce no tokens",
			filters: Filters{},
			want:    nil,
		},
		{
			name: "all filters in fixed order",
			filters: Filters{
				Extension:    "py",
				Path:         "/src/",
				MinRepoSize:  500,
				MinFollowers: 10,
				PushedAfter:  datePtr(2020, time.January, 1),
				Language:     "Python",
			},
			want: []string{
				"extension:py",
				"path:/src/",
				"repo:>=500",
				"user:>=10 followers",
				"pushed:>=2020-01-01",
				"language:Python",
			},
		},
		{
			name:    "zero numeric fields emit no tokens",
			filters: Filters{Extension: "go", MinRepoSize: 0, MinFollowers: 0},
			want:    []string{"extension:go"},
		},
		{
			name:    "positive numeric fields emit tokens",
			filters: Filters{MinRepoSize: 1, MinFollowers: 1},
			want:    []string{"repo:>=1", "user:>=1 followers"},
		},
		{
			name:    "nil date emits no token",
			filters: Filters{Language: "Go"},
			want:    []string{"language:Go"},
		},
		{
			name:    "malformed input passes through verbatim",
			filters: Filters{Extension: ".py, .js", Path: "docs or src"},
			want:    []string{"extension:.py, .js", "path:docs or src"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filters.Qualifiers()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Qualifiers() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildQuery(t *testing.T) {
	f := Filters{Extension: "py", Language: "Python"}
	got := BuildQuery("CNN implementation", f)
	want := "CNN implementation extension:py language:Python"
	if got != want {
		t.Errorf("BuildQuery() = %q, want %q", got, want)
	}
}

func TestBuildQuery_NoFilters(t *testing.T) {
	got := BuildQuery("quicksort", Filters{})
	if got != "quicksort" {
		t.Errorf("BuildQuery() = %q, want %q", got, "quicksort")
	}
}
