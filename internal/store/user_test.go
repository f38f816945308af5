package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/zstrangeway/ai-scaffold/internal/database"
	"github.com/zstrangeway/ai-scaffold/internal/model"
	"github.com/zstrangeway/ai-scaffold/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeRow 實作 pgx.Row，用於模擬單筆掃描行為。
type fakeRow struct {
	scanErr error
	user    *model.User
	total   int
}

func (r *fakeRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 6:
		// Get / Update: id, name, email, password_hash, created_at, updated_at
		u := r.user
		*dest[0].(*string) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(**string) = u.PasswordHash
		*dest[4].(*time.Time) = u.CreatedAt
		*dest[5].(**time.Time) = u.UpdatedAt
	case 1:
		// Create: created_at；ListUsers 的 count(*): total
		switch d := dest[0].(type) {
		case *time.Time:
			*d = r.user.CreatedAt
		case *int:
			*d = r.total
		default:
			panic("fakeRow.Scan: unexpected dest type")
		}
	default:
		panic("fakeRow.Scan: unexpected number of dest")
	}
	return nil
}

// fakeRows 實作 pgx.Rows，用於模擬多筆掃描行為。
type fakeRows struct {
	data    []model.User
	idx     int
	scanErr error
	err     error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.data[r.idx]
	r.idx++
	*dest[0].(*string) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*string) = u.Email
	*dest[3].(**string) = u.PasswordHash
	*dest[4].(*time.Time) = u.CreatedAt
	*dest[5].(**time.Time) = u.UpdatedAt
	return nil
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func restore() {
	hashPassword = service.HashPassword
	comparePassword = service.ComparePassword
	newUserID = uuid.NewString
}

/* ---------- 完整測試 ---------- */

func TestUserStore(t *testing.T) {
	t.Cleanup(restore)

	now := time.Now().UTC()
	hash := "$2a$10$fakefakefakefakefakefake"
	sample := model.User{
		ID:           "u-1",
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: &hash,
		CreatedAt:    now,
	}

	/* GetUserByID / GetUserByEmail */
	t.Run("GetByID ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "u-1", args[0])
				return &fakeRow{user: &sample}
			},
		}
		got, err := GetUserByID(context.Background(), p, "u-1")
		require.NoError(t, err)
		require.Equal(t, sample.Email, got.Email)
		require.Nil(t, got.UpdatedAt)
	})

	t.Run("GetByID not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByID(context.Background(), p, "missing")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetByID err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := GetUserByID(context.Background(), p, "u-1")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetByEmail ok", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, "alice@example.com", args[0])
				return &fakeRow{user: &sample}
			},
		}
		got, err := GetUserByEmail(context.Background(), p, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, sample.ID, got.ID)
	})

	t.Run("GetByEmail not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetUserByEmail(context.Background(), p, "nobody@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	/* CreateUser */
	t.Run("Create ok", func(t *testing.T) {
		t.Cleanup(restore)
		newUserID = func() string { return "uid-new" }
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 3)
				require.Equal(t, "uid-new", args[0])
				return &fakeRow{user: &sample}
			},
		}
		got, err := CreateUser(context.Background(), p, "Bob", "bob@example.com")
		require.NoError(t, err)
		require.Equal(t, "uid-new", got.ID)
		require.Equal(t, "Bob", got.Name)
		require.Nil(t, got.PasswordHash)
		require.Equal(t, sample.CreatedAt, got.CreatedAt)
	})

	t.Run("Create duplicate", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation}}
			},
		}
		_, err := CreateUser(context.Background(), p, "Bob", "alice@example.com")
		require.ErrorIs(t, err, ErrEmailExists)
	})

	t.Run("Create err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("insert fail")}
			},
		}
		_, err := CreateUser(context.Background(), p, "Bob", "bob@example.com")
		require.Error(t, err)
	})

	/* CreateUserWithPassword */
	t.Run("CreateWithPassword hash err", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		p := &database.FakeDB{}
		_, err := CreateUserWithPassword(context.Background(), p, "Bob", "bob@example.com", "pw")
		require.Error(t, err)
	})

	t.Run("CreateWithPassword ok", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(p string) (string, error) {
			require.Equal(t, "pw", p)
			return "hashed", nil
		}
		newUserID = func() string { return "uid-pw" }
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 4)
				require.Equal(t, "hashed", *args[3].(*string))
				return &fakeRow{user: &sample}
			},
		}
		got, err := CreateUserWithPassword(context.Background(), p, "Bob", "bob@example.com", "pw")
		require.NoError(t, err)
		require.Equal(t, "uid-pw", got.ID)
		require.NotNil(t, got.PasswordHash)
		require.Equal(t, "hashed", *got.PasswordHash)
	})

	t.Run("CreateWithPassword duplicate", func(t *testing.T) {
		t.Cleanup(restore)
		hashPassword = func(string) (string, error) { return "hashed", nil }
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation}}
			},
		}
		_, err := CreateUserWithPassword(context.Background(), p, "Bob", "alice@example.com", "pw")
		require.ErrorIs(t, err, ErrEmailExists)
	})

	/* UpdateUser */
	t.Run("Update ok", func(t *testing.T) {
		updated := sample
		at := now.Add(time.Minute)
		updated.UpdatedAt = &at
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{"New Name", "new@example.com", "u-1"}, args)
				return &fakeRow{user: &updated}
			},
		}
		got, err := UpdateUser(context.Background(), p, "u-1", "New Name", "new@example.com")
		require.NoError(t, err)
		require.NotNil(t, got.UpdatedAt)
		require.Equal(t, at, *got.UpdatedAt)
	})

	t.Run("Update not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateUser(context.Background(), p, "missing", "n", "e@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Update duplicate", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: &pgconn.PgError{Code: pgerrcode.UniqueViolation}}
			},
		}
		_, err := UpdateUser(context.Background(), p, "u-1", "n", "taken@example.com")
		require.ErrorIs(t, err, ErrEmailExists)
	})

	/* DeleteUser */
	t.Run("Delete ok", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, "u-1", args[0])
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		deleted, err := DeleteUser(context.Background(), p, "u-1")
		require.NoError(t, err)
		require.True(t, deleted)
	})

	t.Run("Delete miss", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		deleted, err := DeleteUser(context.Background(), p, "missing")
		require.NoError(t, err)
		require.False(t, deleted)
	})

	t.Run("Delete err", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("fail delete")
			},
		}
		_, err := DeleteUser(context.Background(), p, "u-1")
		require.Error(t, err)
	})
}

func TestUpdateUserPassword(t *testing.T) {
	t.Cleanup(restore)

	now := time.Now().UTC()
	hash := "stored-hash"
	sample := model.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", PasswordHash: &hash, CreatedAt: now}

	t.Run("not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		ok, err := UpdateUserPassword(context.Background(), p, "missing", "old", "new")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("lookup err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := UpdateUserPassword(context.Background(), p, "u-1", "old", "new")
		require.Error(t, err)
	})

	t.Run("no password set", func(t *testing.T) {
		passwordless := sample
		passwordless.PasswordHash = nil
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &passwordless}
			},
		}
		ok, err := UpdateUserPassword(context.Background(), p, "u-1", "old", "new")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("wrong current password", func(t *testing.T) {
		t.Cleanup(restore)
		comparePassword = func(h, p string) error {
			require.Equal(t, "stored-hash", h)
			return errors.New("mismatch")
		}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &sample}
			},
		}
		ok, err := UpdateUserPassword(context.Background(), p, "u-1", "wrong", "new")
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("hash err", func(t *testing.T) {
		t.Cleanup(restore)
		comparePassword = func(string, string) error { return nil }
		hashPassword = func(string) (string, error) { return "", errors.New("hash") }
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &sample}
			},
		}
		_, err := UpdateUserPassword(context.Background(), p, "u-1", "old", "new")
		require.Error(t, err)
	})

	t.Run("exec err", func(t *testing.T) {
		t.Cleanup(restore)
		comparePassword = func(string, string) error { return nil }
		hashPassword = func(string) (string, error) { return "new-hash", nil }
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &sample}
			},
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("update fail")
			},
		}
		_, err := UpdateUserPassword(context.Background(), p, "u-1", "old", "new")
		require.Error(t, err)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		comparePassword = func(string, string) error { return nil }
		hashPassword = func(p string) (string, error) {
			require.Equal(t, "new", p)
			return "new-hash", nil
		}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &sample}
			},
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, "new-hash", args[0])
				require.Equal(t, "u-1", args[1])
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		ok, err := UpdateUserPassword(context.Background(), p, "u-1", "old", "new")
		require.NoError(t, err)
		require.True(t, ok)
	})
}

func TestVerifyUserPassword(t *testing.T) {
	t.Cleanup(restore)

	hash := "stored-hash"
	sample := model.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", PasswordHash: &hash, CreatedAt: time.Now().UTC()}

	t.Run("not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		got, err := VerifyUserPassword(context.Background(), p, "nobody@example.com", "pw")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("lookup err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := VerifyUserPassword(context.Background(), p, "alice@example.com", "pw")
		require.Error(t, err)
	})

	t.Run("no password set", func(t *testing.T) {
		passwordless := sample
		passwordless.PasswordHash = nil
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &passwordless}
			},
		}
		got, err := VerifyUserPassword(context.Background(), p, "alice@example.com", "pw")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("mismatch", func(t *testing.T) {
		t.Cleanup(restore)
		comparePassword = func(string, string) error { return errors.New("mismatch") }
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &sample}
			},
		}
		got, err := VerifyUserPassword(context.Background(), p, "alice@example.com", "wrong")
		require.NoError(t, err)
		require.Nil(t, got)
	})

	t.Run("ok", func(t *testing.T) {
		t.Cleanup(restore)
		comparePassword = func(h, p string) error {
			require.Equal(t, "stored-hash", h)
			require.Equal(t, "pw", p)
			return nil
		}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{user: &sample}
			},
		}
		got, err := VerifyUserPassword(context.Background(), p, "alice@example.com", "pw")
		require.NoError(t, err)
		require.Equal(t, "u-1", got.ID)
	})
}

func TestListUsers(t *testing.T) {
	now := time.Now().UTC()
	sample := model.User{ID: "u-1", Name: "Alice", Email: "alice@example.com", CreatedAt: now}

	t.Run("ok", func(t *testing.T) {
		rows := &fakeRows{data: []model.User{sample, sample}}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{total: 5}
			},
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				// page 2, limit 2 → LIMIT 2 OFFSET 2
				require.Equal(t, []any{2, 2}, args)
				return rows, nil
			},
		}
		users, total, err := ListUsers(context.Background(), p, 2, 2)
		require.NoError(t, err)
		require.Len(t, users, 2)
		require.Equal(t, 5, total)
	})

	t.Run("count err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("count fail")}
			},
		}
		_, _, err := ListUsers(context.Background(), p, 1, 10)
		require.Error(t, err)
	})

	t.Run("query err", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{total: 1}
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, _, err := ListUsers(context.Background(), p, 1, 10)
		require.Error(t, err)
	})

	t.Run("scan err", func(t *testing.T) {
		rows := &fakeRows{data: []model.User{sample}, scanErr: errors.New("scan fail")}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{total: 1}
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		_, _, err := ListUsers(context.Background(), p, 1, 10)
		require.Error(t, err)
	})

	t.Run("rows err", func(t *testing.T) {
		rows := &fakeRows{err: errors.New("closed")}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{total: 0}
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return rows, nil
			},
		}
		_, _, err := ListUsers(context.Background(), p, 1, 10)
		require.Error(t, err)
	})
}
