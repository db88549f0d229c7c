package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, role, profile_photo, password_changed_at, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (domain.User, error) {
	var (
		u       domain.User
		changed sql.NullTime
	)
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.ProfilePhoto, &changed, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	u.PasswordChangedAt = mapNullTimePtr(changed)
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	u.Tasks = []idx.ID{}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if u.Tasks, err = r.taskIDs(ctx, id); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
	u, err := scanUser(row)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if u.Tasks, err = r.taskIDs(ctx, u.ID); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []domain.User{}
	pos := map[idx.ID]int{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		pos[u.ID] = len(users)
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	owned, err := r.db.QueryContext(ctx, `SELECT owner_id, id FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer owned.Close()

	for owned.Next() {
		var owner, task idx.ID
		if err := owned.Scan(&owner, &task); err != nil {
			return nil, err
		}
		if i, ok := pos[owner]; ok {
			users[i].Tasks = append(users[i].Tasks, task)
		}
	}
	return users, owned.Err()
}

func (r *usersRepo) taskIDs(ctx context.Context, owner idx.ID) ([]idx.ID, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id FROM tasks WHERE owner_id = ? ORDER BY created_at, id`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := []idx.ID{}
	for rows.Next() {
		var id idx.ID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.ProfilePhoto,
		mapOptionalTime(u.PasswordChangedAt), u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, u domain.User) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users SET name = ?, email = ?, profile_photo = ?, updated_at = ? WHERE id = ?`,
		u.Name, u.Email, u.ProfilePhoto, time.Now().UTC(), u.ID,
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id idx.ID, hash string, changedAt *time.Time) error {
	return expectOne(r.db.ExecContext(ctx,
		`UPDATE users
		 SET password_hash = ?, password_changed_at = COALESCE(?, password_changed_at), updated_at = ?
		 WHERE id = ?`,
		hash, mapOptionalTime(changedAt), time.Now().UTC(), id,
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id idx.ID) error {
	return expectOne(r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}
