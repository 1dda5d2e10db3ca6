package token

import (
	"testing"
	"time"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager("test-secret-key-for-unit-testing", "internship-management", ttl)
}

func TestIssueAndParse(t *testing.T) {
	m := newTestManager(15 * time.Minute)

	raw, err := m.Issue(42, "company")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := m.Parse(raw)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("AccountID = %d, want 42", claims.AccountID)
	}
	if claims.Role != "company" {
		t.Errorf("Role = %q, want %q", claims.Role, "company")
	}
	if len(claims.ID) != 32 {
		t.Errorf("jti length = %d, want 32", len(claims.ID))
	}
}

func TestParse_Expired(t *testing.T) {
	m := newTestManager(-time.Minute)

	raw, err := m.Issue(1, "student")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := m.Parse(raw); err != ErrTokenExpired {
		t.Fatalf("err = %v, want ErrTokenExpired", err)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	raw, err := newTestManager(time.Minute).Issue(1, "student")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	other := NewManager("a-different-secret", "internship-management", time.Minute)
	if _, err := other.Parse(raw); err != ErrTokenInvalid {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestParse_Garbage(t *testing.T) {
	m := newTestManager(time.Minute)
	if _, err := m.Parse("not.a.token"); err != ErrTokenInvalid {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
