package middleware

import "testing"

func TestIsAdminIdentity(t *testing.T) {
	master := "admin@temmyrealty.com"

	cases := []struct {
		name       string
		hasProfile bool
		email      string
		want       bool
	}{
		{"companion profile exists", true, "agent@example.com", true},
		{"master email exact", false, "admin@temmyrealty.com", true},
		{"master email different casing", false, "Admin@TemmyRealty.COM", true},
		{"no profile, other email", false, "visitor@example.com", false},
		{"no profile, empty email", false, "", false},
	}

	for _, tc := range cases {
		if got := IsAdminIdentity(tc.hasProfile, tc.email, master); got != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestIsAdminIdentityEmptyMasterEmailNeverMatches(t *testing.T) {
	if IsAdminIdentity(false, "", "") {
		t.Error("empty email matched an empty master email")
	}
	if !IsAdminIdentity(true, "", "") {
		t.Error("profile-backed identity rejected when master email unset")
	}
}
