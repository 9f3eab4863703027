package repository

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/marketplace/models"
)

// ============================================================
// Users
// ============================================================

const userColumns = `id, first_name, last_name, age, email, role, phone`

func (r *Repository) CreateUser(ctx context.Context, f models.UserFields) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        INSERT INTO users (first_name, last_name, age, email, role, phone)
        VALUES (?, ?, ?, ?, ?, ?)
    `, f.FirstName, f.LastName, f.Age, f.Email, f.Role, f.Phone)
	if err != nil {
		return models.User{}, storageErr("create user", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, storageErr("create user", err)
	}
	return models.User{ID: id, UserFields: f}, nil
}

func (r *Repository) GetUser(ctx context.Context, id int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)

	u, err := scanUser(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, notFound("user", id)
		}
		return models.User{}, storageErr("get user", err)
	}
	return u, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, storageErr("list users", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, storageErr("list users", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("list users", err)
	}
	return users, nil
}

// UpdateUser полностью заменяет изменяемые поля. Несуществующий id — NotFound.
func (r *Repository) UpdateUser(ctx context.Context, id int64, f models.UserFields) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `
        UPDATE users
        SET first_name = ?, last_name = ?, age = ?, email = ?, role = ?, phone = ?
        WHERE id = ?
    `, f.FirstName, f.LastName, f.Age, f.Email, f.Role, f.Phone, id)
	if err != nil {
		return models.User{}, storageErr("update user", err)
	}
	if err := checkAffected(res, "update user", "user", id); err != nil {
		return models.User{}, err
	}
	return models.User{ID: id, UserFields: f}, nil
}

// DeleteUser не трогает заказы и отклики, ссылающиеся на пользователя.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return storageErr("delete user", err)
	}
	return checkAffected(res, "delete user", "user", id)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(s scanner) (models.User, error) {
	var u models.User
	err := s.Scan(&u.ID, &u.FirstName, &u.LastName, &u.Age, &u.Email, &u.Role, &u.Phone)
	return u, err
}
