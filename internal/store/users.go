package store

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/avolkov/order-status/internal/domain"
)

// ErrUserExists is returned when the username is already taken.
var ErrUserExists = errors.New("user already exists")

// User records are declared by the storage contract but have no HTTP
// surface; this is the minimal honest implementation of it.

func (s *Store) CreateUser(username, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return domain.User{}, ErrUserExists
	}

	user := domain.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: string(hash),
	}
	s.nextUserID++
	s.users[username] = user
	return user, nil
}

func (s *Store) GetUserByUsername(username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[username]
	if !ok {
		return domain.User{}, domain.ErrNotFound
	}
	return user, nil
}
