package sqlite

import (
	"context"
	"database/sql"

	"github.com/tasche-dev/tasche/internal/api/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, email, name, picture, timezone, created_at, updated_at`

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	return scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	timezone := u.Timezone
	if timezone == "" {
		timezone = domain.DefaultTimezone
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, email, name, picture, timezone)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, mapOptionalString(u.Picture), timezone)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, id, name string, picture *string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET name = ?, picture = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		name, mapOptionalString(picture), id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *usersRepo) UpdateTimezone(ctx context.Context, id, timezone string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users
		 SET timezone = ?, updated_at = CURRENT_TIMESTAMP
		 WHERE id = ?`,
		timezone, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanUser(row *sql.Row) (domain.User, error) {
	var u domain.User
	var picture sql.NullString

	err := row.Scan(&u.ID, &u.Email, &u.Name, &picture, &u.Timezone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	u.Picture = mapNullStringPtr(picture)
	return u, nil
}

// requireRow turns a zero-row UPDATE into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mapNotFound(sql.ErrNoRows)
	}
	return nil
}
