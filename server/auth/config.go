package auth

import (
	"fmt"
	"strings"

	"github.com/mergington/portal/internal/xtime"
)

type Config struct {
	SessionDuration xtime.Duration   `toml:"session_duration"`
	LoginEvery      xtime.Duration   `toml:"login_every"`
	LoginBurst      int              `toml:"login_burst"`
	Teachers        []TeacherAccount `toml:"teachers"`
}

func (c Config) String() string {
	accounts := make([]string, len(c.Teachers))
	for i, teacher := range c.Teachers {
		accounts[i] = teacher.String()
	}
	return fmt.Sprintf("\n SessionDuration: %s\n LoginEvery: %s\n LoginBurst: %d\n Teachers: %s",
		c.SessionDuration,
		c.LoginEvery,
		c.LoginBurst,
		strings.Join(accounts, ", "),
	)
}

// TeacherAccount is a staff account seeded on startup. The plain-text password
// is hashed before it reaches the database and never logged.
type TeacherAccount struct {
	Username    string `toml:"username"`
	DisplayName string `toml:"display_name"`
	Role        string `toml:"role"`
	Password    string `toml:"password"`
}

func (a TeacherAccount) String() string {
	return fmt.Sprintf("%s (%s, %s)", a.Username, a.DisplayName, a.Role)
}
