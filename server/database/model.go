package database

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Teacher struct {
	Username     string `db:"username"`
	DisplayName  string `db:"display_name"`
	Role         string `db:"role"`
	PasswordHash string `db:"password_hash"`
}

type Session struct {
	ID        string    `db:"id"`
	Username  string    `db:"username"`
	CreatedAt time.Time `db:"created_at"`
	ExpiresAt time.Time `db:"expires_at"`
}

type SessionWithTeacher struct {
	ID          string    `db:"id"`
	Username    string    `db:"username"`
	CreatedAt   time.Time `db:"created_at"`
	ExpiresAt   time.Time `db:"expires_at"`
	DisplayName string    `db:"display_name"`
	Role        string    `db:"role"`
}

type Activity struct {
	Name            string         `db:"name"`
	Description     string         `db:"description"`
	Schedule        string         `db:"schedule"`
	Days            pq.StringArray `db:"days"`
	StartTime       string         `db:"start_time"`
	EndTime         string         `db:"end_time"`
	MaxParticipants int            `db:"max_participants"`
}

type ActivityWithParticipants struct {
	Activity
	Participants []string
}

type Participant struct {
	ActivityName string    `db:"activity_name"`
	Email        string    `db:"email"`
	RegisteredAt time.Time `db:"registered_at"`
}

type Announcement struct {
	ID             int64          `db:"id"`
	Title          string         `db:"title"`
	Message        string         `db:"message"`
	StartDate      sql.NullTime   `db:"start_date"`
	ExpirationDate time.Time      `db:"expiration_date"`
	CreatedBy      string         `db:"created_by"`
	CreatedAt      time.Time      `db:"created_at"`
	UpdatedBy      sql.NullString `db:"updated_by"`
	UpdatedAt      sql.NullTime   `db:"updated_at"`
}
