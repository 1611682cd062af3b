package github

import "testing"

func TestParseFullName(t *testing.T) {
	tests := []struct {
		in        string
		owner     string
		repo      string
		expectErr bool
	}{
		{in: "owner/repo", owner: "owner", repo: "repo"},
		{in: "torvalds/linux", owner: "torvalds", repo: "linux"},
		{in: "no-slash", expectErr: true},
		{in: "too/many/parts", expectErr: true},
		{in: "/repo", expectErr: true},
		{in: "owner/", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			owner, repo, err := ParseFullName(tt.in)
			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseFullName(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFullName(%q) error = %v", tt.in, err)
			}
			if owner != tt.owner || repo != tt.repo {
				t.Errorf("ParseFullName(%q) = (%q, %q), want (%q, %q)", tt.in, owner, repo, tt.owner, tt.repo)
			}
		})
	}
}
