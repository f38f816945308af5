// File: internal/client/fake.go
package client

import "context"

// Fake 提供測試用的 Client 實作，未設定的方法一律 panic
type Fake struct {
	GetUserByIDFn            func(ctx context.Context, id string) (*User, error)
	GetUserByEmailFn         func(ctx context.Context, email string) (*User, error)
	CreateUserFn             func(ctx context.Context, name, email string) (*User, error)
	CreateUserWithPasswordFn func(ctx context.Context, name, email, password string) (*User, error)
	UpdateUserFn             func(ctx context.Context, id, name, email string) (*User, error)
	UpdateUserPasswordFn     func(ctx context.Context, id, currentPassword, newPassword string) (bool, error)
	VerifyUserPasswordFn     func(ctx context.Context, email, password string) (*User, error)
	DeleteUserFn             func(ctx context.Context, id string) (bool, error)
	ListUsersFn              func(ctx context.Context, page, limit int) ([]User, int, error)
	CloseFn                  func() error
}

func (f *Fake) GetUserByID(ctx context.Context, id string) (*User, error) {
	if f.GetUserByIDFn != nil {
		return f.GetUserByIDFn(ctx, id)
	}
	panic("unexpected GetUserByID")
}

func (f *Fake) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	if f.GetUserByEmailFn != nil {
		return f.GetUserByEmailFn(ctx, email)
	}
	panic("unexpected GetUserByEmail")
}

func (f *Fake) CreateUser(ctx context.Context, name, email string) (*User, error) {
	if f.CreateUserFn != nil {
		return f.CreateUserFn(ctx, name, email)
	}
	panic("unexpected CreateUser")
}

func (f *Fake) CreateUserWithPassword(ctx context.Context, name, email, password string) (*User, error) {
	if f.CreateUserWithPasswordFn != nil {
		return f.CreateUserWithPasswordFn(ctx, name, email, password)
	}
	panic("unexpected CreateUserWithPassword")
}

func (f *Fake) UpdateUser(ctx context.Context, id, name, email string) (*User, error) {
	if f.UpdateUserFn != nil {
		return f.UpdateUserFn(ctx, id, name, email)
	}
	panic("unexpected UpdateUser")
}

func (f *Fake) UpdateUserPassword(ctx context.Context, id, currentPassword, newPassword string) (bool, error) {
	if f.UpdateUserPasswordFn != nil {
		return f.UpdateUserPasswordFn(ctx, id, currentPassword, newPassword)
	}
	panic("unexpected UpdateUserPassword")
}

func (f *Fake) VerifyUserPassword(ctx context.Context, email, password string) (*User, error) {
	if f.VerifyUserPasswordFn != nil {
		return f.VerifyUserPasswordFn(ctx, email, password)
	}
	panic("unexpected VerifyUserPassword")
}

func (f *Fake) DeleteUser(ctx context.Context, id string) (bool, error) {
	if f.DeleteUserFn != nil {
		return f.DeleteUserFn(ctx, id)
	}
	panic("unexpected DeleteUser")
}

func (f *Fake) ListUsers(ctx context.Context, page, limit int) ([]User, int, error) {
	if f.ListUsersFn != nil {
		return f.ListUsersFn(ctx, page, limit)
	}
	panic("unexpected ListUsers")
}

// Close 執行 Fake 設定或 no-op
func (f *Fake) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
