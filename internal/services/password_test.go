package services

import "testing"

func TestPasswordHashAndVerify(t *testing.T) {
	hash, err := hashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if hash == "" || hash == "p@ssw0rd" {
		t.Fatalf("expected salted hash, got %q", hash)
	}
	if !verifyPassword("p@ssw0rd", hash) {
		t.Fatalf("expected verify ok")
	}
	if verifyPassword("wrong", hash) {
		t.Fatalf("expected verify fail")
	}
}

func TestPasswordHashesAreSalted(t *testing.T) {
	first, err := hashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	second, err := hashPassword("p@ssw0rd")
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct hashes for the same password")
	}
}
