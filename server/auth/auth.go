package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/time/rate"

	"github.com/mergington/portal/server/database"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTooManyAttempts    = errors.New("too many login attempts")
)

const visitorMaxIdle = 15 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func New(cfg Config, db *database.Database) *Auth {
	a := &Auth{
		cfg:      cfg,
		db:       db,
		visitors: make(map[string]*visitor),
	}

	go a.cleanupVisitors()

	return a
}

type Auth struct {
	cfg        Config
	db         *database.Database
	visitors   map[string]*visitor
	visitorsMu sync.Mutex
}

// Login verifies the credentials against the teachers table. A missing account
// and a wrong password both return ErrInvalidCredentials so the response does
// not reveal which usernames exist.
func (a *Auth) Login(ctx context.Context, username string, password string) (*database.Teacher, error) {
	teacher, err := a.db.GetTeacher(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up teacher: %w", err)
	}

	if err = VerifyPassword(teacher.PasswordHash, password); err != nil {
		return nil, err
	}

	return teacher, nil
}

// CheckSession revalidates a persisted username against the teachers table.
func (a *Auth) CheckSession(ctx context.Context, username string) (*database.Teacher, error) {
	teacher, err := a.db.GetTeacher(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up teacher: %w", err)
	}

	return teacher, nil
}

// NewSession creates a session row for the given teacher and returns it.
func (a *Auth) NewSession(ctx context.Context, username string) (database.Session, error) {
	now := time.Now()
	session := database.Session{
		ID:        RandomStr(32),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Duration(a.cfg.SessionDuration)),
	}

	if err := a.db.CreateSession(ctx, session); err != nil {
		return database.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// EnsureTeachers seeds the configured staff accounts. Accounts that already
// exist keep their stored password hash.
func (a *Auth) EnsureTeachers(ctx context.Context) error {
	for _, account := range a.cfg.Teachers {
		hash, err := HashPassword(account.Password)
		if err != nil {
			return fmt.Errorf("failed to hash password for %q: %w", account.Username, err)
		}

		if err = a.db.InsertTeacher(ctx, database.Teacher{
			Username:     account.Username,
			DisplayName:  account.DisplayName,
			Role:         account.Role,
			PasswordHash: hash,
		}); err != nil {
			return err
		}
	}

	return nil
}

// AllowLogin rate limits login attempts per remote address.
func (a *Auth) AllowLogin(addr string) bool {
	a.visitorsMu.Lock()
	defer a.visitorsMu.Unlock()

	v, ok := a.visitors[addr]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Duration(a.cfg.LoginEvery)), a.cfg.LoginBurst),
		}
		a.visitors[addr] = v
	}
	v.lastSeen = time.Now()

	return v.limiter.Allow()
}

func (a *Auth) cleanupVisitors() {
	for {
		time.Sleep(10 * time.Minute)
		a.doCleanupVisitors()
	}
}

func (a *Auth) doCleanupVisitors() {
	a.visitorsMu.Lock()
	defer a.visitorsMu.Unlock()

	for addr, v := range a.visitors {
		if time.Since(v.lastSeen) > visitorMaxIdle {
			delete(a.visitors, addr)
		}
	}
}

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func VerifyPassword(hash string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
