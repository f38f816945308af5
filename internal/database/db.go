package database

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB 是最小查詢介面，*pgxpool.Pool 與 *pgxpool.Conn 都滿足
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Session 是從連線池借出的單一連線，用完必須 Release
type Session interface {
	DB
	Release()
}

// Pool 供每個請求借出 Session，請求結束即歸還
type Pool interface {
	Acquire(ctx context.Context) (Session, error)
	Ping(ctx context.Context) error
	Close()
}

type FakeDB struct {
	ExecFn     func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryFn    func(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRowFn func(ctx context.Context, sql string, args ...any) pgx.Row
}

func (f *FakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if f.ExecFn != nil {
		return f.ExecFn(ctx, sql, args...)
	}
	panic("unexpected Exec")
}

func (f *FakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if f.QueryFn != nil {
		return f.QueryFn(ctx, sql, args...)
	}
	panic("unexpected Query")
}

func (f *FakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if f.QueryRowFn != nil {
		return f.QueryRowFn(ctx, sql, args...)
	}
	panic("unexpected QueryRow")
}

type FakeSession struct {
	FakeDB
	ReleaseFn func()
}

func (f *FakeSession) Release() {
	if f.ReleaseFn != nil {
		f.ReleaseFn()
	}
}

type FakePool struct {
	AcquireFn func(ctx context.Context) (Session, error)
	PingFn    func(ctx context.Context) error
	CloseFn   func()
}

func (f *FakePool) Acquire(ctx context.Context) (Session, error) {
	if f.AcquireFn != nil {
		return f.AcquireFn(ctx)
	}
	panic("unexpected Acquire")
}

func (f *FakePool) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakePool) Close() {
	if f.CloseFn != nil {
		f.CloseFn()
	}
}
