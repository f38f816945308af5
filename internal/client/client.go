// File: internal/client/client.go
package client

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"

	"github.com/zstrangeway/ai-scaffold/internal/pb"
)

// ErrEmailExists email 已被其他使用者使用
var ErrEmailExists = errors.New("email already exists")

// User 是 user service 回傳的資料，時間保持 RFC 3339 字串原樣轉發
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Client 封裝 user service 的 gRPC 呼叫
// 查無資料回傳 (nil, nil)，email 衝突回傳 ErrEmailExists
// 方便測試時替換 Fake 實作
type Client interface {
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, name, email string) (*User, error)
	CreateUserWithPassword(ctx context.Context, name, email, password string) (*User, error)
	UpdateUser(ctx context.Context, id, name, email string) (*User, error)
	UpdateUserPassword(ctx context.Context, id, currentPassword, newPassword string) (bool, error)
	VerifyUserPassword(ctx context.Context, email, password string) (*User, error)
	DeleteUser(ctx context.Context, id string) (bool, error)
	ListUsers(ctx context.Context, page, limit int) ([]User, int, error)
	Close() error
}

var grpcNewClient = grpc.NewClient

// GRPCClient 透過單一 gRPC 連線呼叫 user service
type GRPCClient struct {
	conn *grpc.ClientConn
	stub pb.UserServiceClient
}

// Dial 建立與 user service 的連線，不用時呼叫 Close 釋放
func Dial(target string) (*GRPCClient, error) {
	conn, err := grpcNewClient(target, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, stub: pb.NewUserServiceClient(conn)}, nil
}

func (c *GRPCClient) Close() error { return c.conn.Close() }

// fromProto 轉回 gateway 端型別，空 id 視為查無資料
func fromProto(u *pb.User) *User {
	if u == nil || u.Id == "" {
		return nil
	}
	return &User{
		ID:        u.Id,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (c *GRPCClient) GetUserByID(ctx context.Context, id string) (*User, error) {
	resp, err := c.stub.GetUserById(ctx, &pb.GetUserByIdRequest{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return fromProto(resp.GetUser()), nil
}

func (c *GRPCClient) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	resp, err := c.stub.GetUserByEmail(ctx, &pb.GetUserByEmailRequest{Email: email})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}
	return fromProto(resp.GetUser()), nil
}

func (c *GRPCClient) CreateUser(ctx context.Context, name, email string) (*User, error) {
	resp, err := c.stub.CreateUser(ctx, &pb.CreateUserRequest{Name: name, Email: email})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return fromProto(resp.GetUser()), nil
}

func (c *GRPCClient) CreateUserWithPassword(ctx context.Context, name, email, password string) (*User, error) {
	resp, err := c.stub.CreateUserWithPassword(ctx, &pb.CreateUserWithPasswordRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return fromProto(resp.GetUser()), nil
}

func (c *GRPCClient) UpdateUser(ctx context.Context, id, name, email string) (*User, error) {
	resp, err := c.stub.UpdateUser(ctx, &pb.UpdateUserRequest{Id: id, Name: name, Email: email})
	if err != nil {
		switch status.Code(err) {
		case codes.NotFound:
			return nil, nil
		case codes.AlreadyExists:
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return fromProto(resp.GetUser()), nil
}

// UpdateUserPassword 回傳是否完成改密。Unauthenticated（舊密碼錯）以 false 表示，不視為錯誤
func (c *GRPCClient) UpdateUserPassword(ctx context.Context, id, currentPassword, newPassword string) (bool, error) {
	resp, err := c.stub.UpdateUserPassword(ctx, &pb.UpdateUserPasswordRequest{
		Id:              id,
		CurrentPassword: currentPassword,
		NewPassword:     newPassword,
	})
	if err != nil {
		if status.Code(err) == codes.Unauthenticated {
			return false, nil
		}
		return false, err
	}
	return resp.GetSuccess(), nil
}

func (c *GRPCClient) VerifyUserPassword(ctx context.Context, email, password string) (*User, error) {
	resp, err := c.stub.VerifyUserPassword(ctx, &pb.VerifyUserPasswordRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	if !resp.GetValid() {
		return nil, nil
	}
	return fromProto(resp.GetUser()), nil
}

func (c *GRPCClient) DeleteUser(ctx context.Context, id string) (bool, error) {
	resp, err := c.stub.DeleteUser(ctx, &pb.DeleteUserRequest{Id: id})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, err
	}
	return resp.GetId() != "", nil
}

func (c *GRPCClient) ListUsers(ctx context.Context, page, limit int) ([]User, int, error) {
	resp, err := c.stub.ListUsers(ctx, &pb.ListUsersRequest{Page: int32(page), Limit: int32(limit)})
	if err != nil {
		return nil, 0, err
	}
	users := make([]User, 0, len(resp.GetUsers()))
	for _, u := range resp.GetUsers() {
		if mapped := fromProto(u); mapped != nil {
			users = append(users, *mapped)
		}
	}
	return users, int(resp.GetTotal()), nil
}
