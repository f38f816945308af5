package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/zstrangeway/ai-scaffold/internal/database"
	"github.com/zstrangeway/ai-scaffold/internal/model"
	"github.com/zstrangeway/ai-scaffold/internal/service"
)

var (
	// ErrNotFound 查無符合條件的使用者
	ErrNotFound = errors.New("user not found")
	// ErrEmailExists email 已被其他使用者使用
	ErrEmailExists = errors.New("email already exists")
)

var (
	hashPassword    = service.HashPassword
	comparePassword = service.ComparePassword
	newUserID       = uuid.NewString
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func GetUserByID(ctx context.Context, db database.DB, userID string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM users WHERE id = $1`,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`,
		email,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	return u, nil
}

func CreateUser(ctx context.Context, db database.DB, name, email string) (*model.User, error) {
	u := &model.User{ID: newUserID(), Name: name, Email: email}
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email)
		 VALUES ($1, $2, $3)
		 RETURNING created_at`,
		u.ID,
		u.Name,
		u.Email,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func CreateUserWithPassword(ctx context.Context, db database.DB, name, email, password string) (*model.User, error) {
	hash, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("CreateUserWithPassword: %w", err)
	}
	u := &model.User{ID: newUserID(), Name: name, Email: email, PasswordHash: &hash}
	row := db.QueryRow(ctx,
		`INSERT INTO users (id, name, email, password_hash)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		u.ID,
		u.Name,
		u.Email,
		u.PasswordHash,
	)
	if err := row.Scan(&u.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("CreateUserWithPassword: %w", err)
	}
	return u, nil
}

func UpdateUser(ctx context.Context, db database.DB, userID, name, email string) (*model.User, error) {
	row := db.QueryRow(ctx,
		`UPDATE users SET name = $1, email = $2, updated_at = now()
		 WHERE id = $3
		 RETURNING id, name, email, password_hash, created_at, updated_at`,
		name,
		email,
		userID,
	)
	u := &model.User{}
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		if isUniqueViolation(err) {
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("UpdateUser: %w", err)
	}
	return u, nil
}

// UpdateUserPassword 驗證舊密碼後改寫哈希。查無使用者或舊密碼不符都回傳 false 而非錯誤。
func UpdateUserPassword(ctx context.Context, db database.DB, userID, currentPassword, newPassword string) (bool, error) {
	u, err := GetUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if u.PasswordHash == nil || comparePassword(*u.PasswordHash, currentPassword) != nil {
		return false, nil
	}
	hash, err := hashPassword(newPassword)
	if err != nil {
		return false, fmt.Errorf("UpdateUserPassword: %w", err)
	}
	tag, err := db.Exec(ctx,
		`UPDATE users
		 SET password_hash = $1, updated_at = now()
		 WHERE id = $2`,
		hash,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("UpdateUserPassword: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// VerifyUserPassword 驗證帳密。帳號不存在、未設密碼或密碼不符時回傳 (nil, nil)。
func VerifyUserPassword(ctx context.Context, db database.DB, email, password string) (*model.User, error) {
	u, err := GetUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if u.PasswordHash == nil || comparePassword(*u.PasswordHash, password) != nil {
		return nil, nil
	}
	return u, nil
}

func DeleteUser(ctx context.Context, db database.DB, userID string) (bool, error) {
	tag, err := db.Exec(ctx,
		`DELETE FROM users WHERE id = $1`,
		userID,
	)
	if err != nil {
		return false, fmt.Errorf("DeleteUser: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func ListUsers(ctx context.Context, db database.DB, page, limit int) ([]model.User, int, error) {
	var total int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}

	offset := (page - 1) * limit
	rows, err := db.Query(ctx,
		`SELECT id, name, email, password_hash, created_at, updated_at
		 FROM users
		 ORDER BY created_at, id
		 LIMIT $1 OFFSET $2`,
		limit,
		offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	users := make([]model.User, 0, limit)
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, 0, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListUsers: %w", err)
	}
	return users, total, nil
}
