package domain

import "testing"

func TestActor_CanView(t *testing.T) {
	target := &User{ID: "u1", Email: "u1@example.com"}

	cases := []struct {
		name  string
		actor Actor
		want  bool
	}{
		{"self", Actor{UserID: "u1"}, true},
		{"admin", Actor{UserID: "u9", Admin: true}, true},
		{"other non-admin", Actor{UserID: "u2"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.actor.CanView(target); got != tc.want {
				t.Errorf("CanView = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestActor_CanMutate(t *testing.T) {
	plain := &User{ID: "u1", Roles: Roles{Admin: false}}
	admin := &User{ID: "a1", Roles: Roles{Admin: true}}

	cases := []struct {
		name     string
		actor    Actor
		target   *User
		newRoles *Roles
		want     bool
	}{
		{"self without roles change", Actor{UserID: "u1"}, plain, nil, true},
		{"self keeping same roles value", Actor{UserID: "u1"}, plain, &Roles{Admin: false}, true},
		{"self granting admin", Actor{UserID: "u1"}, plain, &Roles{Admin: true}, false},
		{"admin granting admin", Actor{UserID: "a1", Admin: true}, plain, &Roles{Admin: true}, true},
		{"admin revoking admin", Actor{UserID: "x", Admin: true}, admin, &Roles{Admin: false}, true},
		{"non-admin revoking admin on other", Actor{UserID: "u1"}, admin, &Roles{Admin: false}, false},
		{"non-admin touching other user", Actor{UserID: "u2"}, plain, nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.actor.CanMutate(tc.target, tc.newRoles); got != tc.want {
				t.Errorf("CanMutate = %v, want %v", got, tc.want)
			}
		})
	}
}
