package rbac

import "testing"

func TestAuthorized(t *testing.T) {
	cases := []struct {
		name     string
		roles    []string
		required string
		want     bool
	}{
		{"member of required role", []string{"Tech", "Tech Lead"}, "Tech Lead", true},
		{"not a member", []string{"Tech"}, "Tech Lead", false},
		{"no roles at all", nil, "Tech", false},
		{"empty requirement is open", nil, "", true},
		{"exact match only", []string{"Tech Leader"}, "Tech Lead", false},
		{"case sensitive", []string{"tech lead"}, "Tech Lead", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Authorized(tc.roles, tc.required); got != tc.want {
				t.Errorf("Authorized(%v, %q) = %v, want %v", tc.roles, tc.required, got, tc.want)
			}
		})
	}
}
