package app

import (
	"errors"
	"testing"

	"templehub/pkg/domain"
)

func TestEnsureOwnerSeedsOnce(t *testing.T) {
	a := newTestApp(t)
	if err := a.EnsureOwner("Initial#Pass1"); err != nil {
		t.Fatalf("ensure owner: %v", err)
	}
	if err := a.EnsureOwner("Different#Pass2"); err != nil {
		t.Fatalf("second ensure owner: %v", err)
	}
	// the first password stays in effect
	if _, _, err := a.Login("owner", "Initial#Pass1"); err != nil {
		t.Fatalf("login with initial password: %v", err)
	}
	if _, _, err := a.Login("owner", "Different#Pass2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginIssuesResolvableToken(t *testing.T) {
	a := newTestApp(t)
	if err := a.EnsureOwner("Initial#Pass1"); err != nil {
		t.Fatalf("ensure owner: %v", err)
	}
	user, token, err := a.Login("owner", "Initial#Pass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Role != domain.RoleOwner {
		t.Fatalf("role = %q, want owner", user.Role)
	}
	if token == "" {
		t.Fatalf("expected token")
	}
	resolved, ok := a.UserFromToken(token)
	if !ok {
		t.Fatalf("token did not resolve")
	}
	if resolved.ID != user.ID {
		t.Fatalf("resolved id = %q, want %q", resolved.ID, user.ID)
	}
}

func TestUserFromTokenRejectsGarbage(t *testing.T) {
	a := newTestApp(t)
	if _, ok := a.UserFromToken("not-a-token"); ok {
		t.Fatalf("garbage token must not resolve")
	}
}

func TestCreateUserRules(t *testing.T) {
	a := newTestApp(t)
	user, err := a.CreateUser("seva", "Seva#Pass99", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("role = %q", user.Role)
	}
	if _, err := a.CreateUser("seva", "Seva#Pass99", domain.RoleUser); !errors.Is(err, ErrUsernameAlreadyExists) {
		t.Fatalf("err = %v, want ErrUsernameAlreadyExists", err)
	}
	if _, err := a.CreateUser("other", "Seva#Pass99", domain.RoleOwner); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("err = %v, want ErrInvalidRole", err)
	}
	if _, err := a.CreateUser("", "Seva#Pass99", domain.RoleUser); !errors.Is(err, ErrUsernameAndPasswordRequired) {
		t.Fatalf("err = %v, want ErrUsernameAndPasswordRequired", err)
	}
}

func TestCreateUserEnforcesPasswordPolicy(t *testing.T) {
	a := newTestApp(t)
	for _, password := range []string{"short#A1", "alllowercase#1", "NoDigitsHere#", "NoSpecials123A"} {
		if _, err := a.CreateUser("weak", password, domain.RoleUser); !errors.Is(err, ErrWeakPassword) {
			t.Fatalf("password %q: err = %v, want ErrWeakPassword", password, err)
		}
	}
	// nothing may have been saved for the rejected attempts
	users, err := a.ListUsers()
	if err != nil {
		t.Fatalf("list users: %v", err)
	}
	if len(users) != 0 {
		t.Fatalf("users = %+v, want none", users)
	}
}

func TestEnsureOwnerEnforcesPasswordPolicy(t *testing.T) {
	a := newTestApp(t)
	if err := a.EnsureOwner("weak"); !errors.Is(err, ErrWeakPassword) {
		t.Fatalf("err = %v, want ErrWeakPassword", err)
	}
	// a weak password must not block a later valid seed
	if err := a.EnsureOwner("Initial#Pass1"); err != nil {
		t.Fatalf("ensure owner: %v", err)
	}
}

func TestDeleteUserProtectsOwner(t *testing.T) {
	a := newTestApp(t)
	if err := a.EnsureOwner("Initial#Pass1"); err != nil {
		t.Fatalf("ensure owner: %v", err)
	}
	owner, _, err := a.Login("owner", "Initial#Pass1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := a.DeleteUser(owner.ID); !errors.Is(err, ErrOwnerImmutable) {
		t.Fatalf("err = %v, want ErrOwnerImmutable", err)
	}

	user, err := a.CreateUser("temp", "Temp#Pass99", domain.RoleUser)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if err := a.DeleteUser(user.ID); err != nil {
		t.Fatalf("delete user: %v", err)
	}
	if err := a.DeleteUser(user.ID); !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("second delete err = %v, want ErrRecordNotFound", err)
	}
}
