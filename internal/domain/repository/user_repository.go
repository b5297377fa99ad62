package repository

import "github.com/quikfix/spares-api/internal/domain/entity"

// UserRepository is the persistence port for accounts.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id string) (*entity.User, error)
	// FindByMobile returns nil when no account matches.
	FindByMobile(mobile string) (*entity.User, error)
}
