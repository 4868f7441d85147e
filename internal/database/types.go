package database

import "time"

type Database interface {
	GetUser(userID int64) (*User, error)
	SaveUser(user User) error
	Close() error
}

// User is a row in the seen-users registry. It is operational
// bookkeeping only; session state never touches the database.
type User struct {
	ID        int64
	FirstName string
	Username  string
	CreatedAt time.Time
}

func (u User) Equal(other User) bool {
	return u.ID == other.ID &&
		u.FirstName == other.FirstName &&
		u.Username == other.Username
}
