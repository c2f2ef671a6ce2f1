package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/mergington/portal/internal/xtime"
)

func TestPasswordRoundtrip(t *testing.T) {
	hash, err := HashPassword("art123")
	if err != nil {
		t.Fatalf("failed to hash password: %s", err)
	}
	if hash == "art123" {
		t.Fatal("hash should not equal the password")
	}

	if err = VerifyPassword(hash, "art123"); err != nil {
		t.Fatalf("correct password rejected: %s", err)
	}
	if err = VerifyPassword(hash, "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRandomStr(t *testing.T) {
	a := RandomStr(32)
	b := RandomStr(32)
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("unexpected lengths: %d, %d", len(a), len(b))
	}
	if a == b {
		t.Fatal("two session ids should not collide")
	}
}

func TestAllowLoginBurst(t *testing.T) {
	a := &Auth{
		cfg: Config{
			LoginEvery: xtime.Duration(time.Hour),
			LoginBurst: 3,
		},
		visitors: make(map[string]*visitor),
	}

	for i := 0; i < 3; i++ {
		if !a.AllowLogin("10.0.0.1") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if a.AllowLogin("10.0.0.1") {
		t.Fatal("attempt past the burst should be throttled")
	}

	if !a.AllowLogin("10.0.0.2") {
		t.Fatal("other addresses should not be affected")
	}
}

func TestCleanupVisitors(t *testing.T) {
	a := &Auth{
		cfg: Config{
			LoginEvery: xtime.Duration(time.Second),
			LoginBurst: 5,
		},
		visitors: make(map[string]*visitor),
	}

	a.AllowLogin("10.0.0.1")
	a.visitors["10.0.0.1"].lastSeen = time.Now().Add(-time.Hour)
	a.AllowLogin("10.0.0.2")

	a.doCleanupVisitors()

	if _, ok := a.visitors["10.0.0.1"]; ok {
		t.Fatal("idle visitor should be removed")
	}
	if _, ok := a.visitors["10.0.0.2"]; !ok {
		t.Fatal("active visitor should be kept")
	}
}
