package postgres

import (
	"context"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/jackc/pgx/v5"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, name, email, password_hash, role, profile_photo, password_changed_at, created_at, updated_at`

func scanUser(row pgx.Row) (domain.User, error) {
	var (
		u            domain.User
		id, role     string
		changedAt    *time.Time
		created, upd time.Time
	)
	err := row.Scan(&id, &u.Name, &u.Email, &u.PasswordHash, &role, &u.ProfilePhoto, &changedAt, &created, &upd)
	if err != nil {
		return domain.User{}, err
	}
	u.ID = idx.ID(id)
	u.Role = domain.Role(role)
	u.PasswordChangedAt = utcPtr(changedAt)
	u.CreatedAt = created.UTC()
	u.UpdatedAt = upd.UTC()
	u.Tasks = []idx.ID{}
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id idx.ID) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id.String()))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if u.Tasks, err = r.taskIDs(ctx, u.ID); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	if u.Tasks, err = r.taskIDs(ctx, u.ID); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func (r *usersRepo) ListUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, err
	}

	pos := make(map[idx.ID]int, len(users))
	for i, u := range users {
		pos[u.ID] = i
	}

	rows, err = r.db.Query(ctx, `SELECT owner_id, id FROM tasks ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var owner, task string
		if err := rows.Scan(&owner, &task); err != nil {
			return nil, err
		}
		if i, ok := pos[idx.ID(owner)]; ok {
			users[i].Tasks = append(users[i].Tasks, idx.ID(task))
		}
	}
	return users, rows.Err()
}

func (r *usersRepo) taskIDs(ctx context.Context, owner idx.ID) ([]idx.ID, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM tasks WHERE owner_id = $1 ORDER BY created_at, id`, owner.String())
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, err
	}
	out := make([]idx.ID, len(ids))
	for i, id := range ids {
		out[i] = idx.ID(id)
	}
	return out, nil
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		u.ID.String(), u.Name, u.Email, u.PasswordHash, string(u.Role), u.ProfilePhoto,
		utcPtr(u.PasswordChangedAt), u.CreatedAt.UTC(), u.UpdatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *usersRepo) UpdateUserProfile(ctx context.Context, u domain.User) error {
	return expectOne(r.db.Exec(ctx,
		`UPDATE users SET name = $1, email = $2, profile_photo = $3, updated_at = $4 WHERE id = $5`,
		u.Name, u.Email, u.ProfilePhoto, time.Now().UTC(), u.ID.String(),
	))
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, id idx.ID, hash string, changedAt *time.Time) error {
	return expectOne(r.db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, password_changed_at = COALESCE($2, password_changed_at), updated_at = $3
		 WHERE id = $4`,
		hash, utcPtr(changedAt), time.Now().UTC(), id.String(),
	))
}

func (r *usersRepo) DeleteUser(ctx context.Context, id idx.ID) error {
	return expectOne(r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, id.String()))
}

func (r *usersRepo) IsEmpty(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users)`).Scan(&exists); err != nil {
		return false, err
	}
	return !exists, nil
}
