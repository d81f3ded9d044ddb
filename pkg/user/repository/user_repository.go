package repository

import "mycolog/entities"

type UserRepository interface {
	// FindOrCreate returns the user row for username, inserting it on first
	// sight. Calling it again with the same username yields the same row.
	FindOrCreate(username string) (*entities.User, error)
	FindByUsername(username string) (*entities.User, error)
}
