package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"appointment_manager/internal/model"

	"github.com/jackc/pgx/v5"
)

// UserRepository defines operations for user data
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByIDAndRole(ctx context.Context, id, role string) (*model.User, error)
	ListDoctors(ctx context.Context, specialization, search *string, p model.Pagination) ([]model.User, int, error)
	ListPatients(ctx context.Context, p model.Pagination) ([]model.User, int, error)
	Count(ctx context.Context) (int, error)
}

type userRepository struct {
	db DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB) UserRepository {
	return &userRepository{db: db}
}

const userColumns = `id, name, email, password_hash, role, specialization, photo_url, created_at`

func scanUser(row pgx.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Specialization, &user.PhotoURL, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Create inserts a new user. Returns ErrDuplicate when the email is taken.
func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	sql := `INSERT INTO users (id, name, email, password_hash, role, specialization, photo_url, created_at)
            VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING created_at`
	err := r.db.QueryRow(ctx, sql, user.ID, user.Name, user.Email, user.PasswordHash,
		user.Role, user.Specialization, user.PhotoURL, user.CreatedAt).Scan(&user.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email, nil if not found
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // Not found is not an error here, service layer handles it
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by id, nil if not found
func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindByIDAndRole retrieves a user only when their role matches, nil otherwise
func (r *userRepository) FindByIDAndRole(ctx context.Context, id, role string) (*model.User, error) {
	sql := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND role = $2`
	user, err := scanUser(r.db.QueryRow(ctx, sql, id, role))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID and role: %w", err)
	}
	return user, nil
}

// ListDoctors retrieves doctors with optional specialization and search
// filters, ordered by name, plus the total count for pagination meta.
func (r *userRepository) ListDoctors(ctx context.Context, specialization, search *string, p model.Pagination) ([]model.User, int, error) {
	var where strings.Builder
	where.WriteString(`WHERE role = 'DOCTOR'`)
	args := []interface{}{}
	argCount := 1

	if specialization != nil && *specialization != "" {
		where.WriteString(fmt.Sprintf(" AND specialization = $%d", argCount))
		args = append(args, *specialization)
		argCount++
	}
	if search != nil && *search != "" {
		where.WriteString(fmt.Sprintf(" AND (name ILIKE $%d OR specialization ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*search+"%")
		argCount++
	}

	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users `+where.String(), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count doctors: %w", err)
	}

	sql := fmt.Sprintf(`SELECT %s FROM users %s ORDER BY name ASC LIMIT $%d OFFSET $%d`,
		userColumns, where.String(), argCount, argCount+1)
	args = append(args, p.Limit, p.Offset())

	users, err := r.queryUsers(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query doctors: %w", err)
	}
	return users, total, nil
}

// ListPatients retrieves patients ordered by name, plus the total count
func (r *userRepository) ListPatients(ctx context.Context, p model.Pagination) ([]model.User, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE role = 'PATIENT'`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count patients: %w", err)
	}

	sql := `SELECT ` + userColumns + ` FROM users WHERE role = 'PATIENT' ORDER BY name ASC LIMIT $1 OFFSET $2`
	users, err := r.queryUsers(ctx, sql, p.Limit, p.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query patients: %w", err)
	}
	return users, total, nil
}

// Count returns the total number of users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return total, nil
}

func (r *userRepository) queryUsers(ctx context.Context, sql string, args ...interface{}) ([]model.User, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.Role, &u.Specialization, &u.PhotoURL, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
