package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/forumhub-dev/forumhub/internal/domain"
	internal_errors "github.com/forumhub-dev/forumhub/internal/errors"
)

func (s *Storage) CreateUser(data domain.UserCreationData) (domain.UserId, error) {
	var id domain.UserId
	err := s.db.QueryRow(`
        INSERT INTO users (name, login, pass_hash)
        VALUES ($1, $2, $3)
        RETURNING id`,
		data.Name, data.Login, data.PassHash,
	).Scan(&id)
	if err != nil {
		if mapped := constraintError(err, "Login already registered"); mapped != err {
			return 0, mapped
		}
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (s *Storage) GetUser(id domain.UserId) (domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(
		"SELECT id, name, login, pass_hash, admin FROM users WHERE id = $1", id,
	).Scan(&u.Id, &u.Name, &u.Login, &u.PassHash, &u.Admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewNotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}
	return u, nil
}

// ResolveByLogin implements the identity directory lookup.
func (s *Storage) ResolveByLogin(login domain.Login) (domain.User, error) {
	var u domain.User
	err := s.db.QueryRow(
		"SELECT id, name, login, pass_hash, admin FROM users WHERE login = $1", login,
	).Scan(&u.Id, &u.Name, &u.Login, &u.PassHash, &u.Admin)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewNotFound("User not found")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user by login: %w", err)
	}
	return u, nil
}

func (s *Storage) ListUsers(page domain.PageRequest) (domain.Page[domain.User], error) {
	result := domain.Page[domain.User]{Page: page.Page, Size: page.Size}

	if err := s.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&result.Total); err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("failed to count users: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT id, name, login, pass_hash, admin FROM users ORDER BY id LIMIT $1 OFFSET $2",
		page.Size, page.Offset(),
	)
	if err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.Id, &u.Name, &u.Login, &u.PassHash, &u.Admin); err != nil {
			return domain.Page[domain.User]{}, fmt.Errorf("failed to scan user: %w", err)
		}
		result.Items = append(result.Items, u)
	}
	if err = rows.Err(); err != nil {
		return domain.Page[domain.User]{}, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func (s *Storage) UpdateUser(id domain.UserId, name, passHash string) error {
	result, err := s.db.Exec(
		"UPDATE users SET name = $2, pass_hash = $3 WHERE id = $1",
		id, name, passHash,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NewNotFound("User not found")
	}
	return nil
}

func (s *Storage) DeleteUser(id domain.UserId) error {
	result, err := s.db.Exec("DELETE FROM users WHERE id = $1", id)
	if err != nil {
		if mapped := constraintError(err, "User is referenced by forum content"); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if affected, _ := result.RowsAffected(); affected == 0 {
		return internal_errors.NewNotFound("User not found")
	}
	return nil
}
