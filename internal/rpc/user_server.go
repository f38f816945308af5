package rpc

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/zstrangeway/ai-scaffold/internal/database"
	"github.com/zstrangeway/ai-scaffold/internal/model"
	"github.com/zstrangeway/ai-scaffold/internal/pb"
	"github.com/zstrangeway/ai-scaffold/internal/store"
)

var (
	getUserByID            = store.GetUserByID
	getUserByEmail         = store.GetUserByEmail
	createUser             = store.CreateUser
	createUserWithPassword = store.CreateUserWithPassword
	updateUser             = store.UpdateUser
	updateUserPassword     = store.UpdateUserPassword
	verifyUserPassword     = store.VerifyUserPassword
	deleteUser             = store.DeleteUser
	listUsers              = store.ListUsers
)

// UserServer 實作 pb.UserServiceServer。
// 每個 RPC 各自向連線池借一條連線，回應前歸還。
type UserServer struct {
	pb.UnimplementedUserServiceServer
	pool database.Pool
}

func NewUserServer(pool database.Pool) *UserServer {
	return &UserServer{pool: pool}
}

// toProto 將 model.User 轉成 wire 格式，時間一律輸出 RFC 3339 字串。
func toProto(u *model.User) *pb.User {
	out := &pb.User{
		Id:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
	if !u.CreatedAt.IsZero() {
		out.CreatedAt = u.CreatedAt.Format(time.RFC3339Nano)
	}
	if u.UpdatedAt != nil {
		out.UpdatedAt = u.UpdatedAt.Format(time.RFC3339Nano)
	}
	return out
}

func internalError(method string, err error) error {
	log.Error().Err(err).Str("method", method).Msg("user service internal error")
	return status.Errorf(codes.Internal, "Internal error: %v", err)
}

func (s *UserServer) GetUserById(ctx context.Context, req *pb.GetUserByIdRequest) (*pb.GetUserByIdResponse, error) {
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "User ID is required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("GetUserById", err)
	}
	defer sess.Release()

	u, err := getUserByID(ctx, sess, req.GetId())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "User with ID %s not found", req.GetId())
		}
		return nil, internalError("GetUserById", err)
	}
	return &pb.GetUserByIdResponse{User: toProto(u)}, nil
}

func (s *UserServer) GetUserByEmail(ctx context.Context, req *pb.GetUserByEmailRequest) (*pb.GetUserByEmailResponse, error) {
	if req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "Email is required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("GetUserByEmail", err)
	}
	defer sess.Release()

	u, err := getUserByEmail(ctx, sess, req.GetEmail())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, status.Errorf(codes.NotFound, "User with email %s not found", req.GetEmail())
		}
		return nil, internalError("GetUserByEmail", err)
	}
	return &pb.GetUserByEmailResponse{User: toProto(u)}, nil
}

func (s *UserServer) CreateUser(ctx context.Context, req *pb.CreateUserRequest) (*pb.CreateUserResponse, error) {
	if req.GetName() == "" || req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "Name and email are required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("CreateUser", err)
	}
	defer sess.Release()

	u, err := createUser(ctx, sess, req.GetName(), req.GetEmail())
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, status.Errorf(codes.AlreadyExists, "User with email %s already exists", req.GetEmail())
		}
		return nil, internalError("CreateUser", err)
	}
	return &pb.CreateUserResponse{User: toProto(u)}, nil
}

func (s *UserServer) CreateUserWithPassword(ctx context.Context, req *pb.CreateUserWithPasswordRequest) (*pb.CreateUserWithPasswordResponse, error) {
	if req.GetName() == "" || req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "Name, email, and password are required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("CreateUserWithPassword", err)
	}
	defer sess.Release()

	u, err := createUserWithPassword(ctx, sess, req.GetName(), req.GetEmail(), req.GetPassword())
	if err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			return nil, status.Errorf(codes.AlreadyExists, "User with email %s already exists", req.GetEmail())
		}
		return nil, internalError("CreateUserWithPassword", err)
	}
	return &pb.CreateUserWithPasswordResponse{User: toProto(u)}, nil
}

func (s *UserServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {
	if req.GetId() == "" || req.GetName() == "" || req.GetEmail() == "" {
		return nil, status.Error(codes.InvalidArgument, "ID, name and email are required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("UpdateUser", err)
	}
	defer sess.Release()

	u, err := updateUser(ctx, sess, req.GetId(), req.GetName(), req.GetEmail())
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return nil, status.Errorf(codes.NotFound, "User with ID %s not found", req.GetId())
		case errors.Is(err, store.ErrEmailExists):
			return nil, status.Errorf(codes.AlreadyExists, "User with email %s already exists", req.GetEmail())
		}
		return nil, internalError("UpdateUser", err)
	}
	return &pb.UpdateUserResponse{User: toProto(u)}, nil
}

func (s *UserServer) UpdateUserPassword(ctx context.Context, req *pb.UpdateUserPasswordRequest) (*pb.UpdateUserPasswordResponse, error) {
	if req.GetId() == "" || req.GetCurrentPassword() == "" || req.GetNewPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "User ID, current password, and new password are required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("UpdateUserPassword", err)
	}
	defer sess.Release()

	ok, err := updateUserPassword(ctx, sess, req.GetId(), req.GetCurrentPassword(), req.GetNewPassword())
	if err != nil {
		return nil, internalError("UpdateUserPassword", err)
	}
	if !ok {
		// 不洩漏帳號是否存在
		return nil, status.Error(codes.Unauthenticated, "Current password is incorrect or user not found")
	}
	return &pb.UpdateUserPasswordResponse{Success: true}, nil
}

func (s *UserServer) VerifyUserPassword(ctx context.Context, req *pb.VerifyUserPasswordRequest) (*pb.VerifyUserPasswordResponse, error) {
	if req.GetEmail() == "" || req.GetPassword() == "" {
		return nil, status.Error(codes.InvalidArgument, "Email and password are required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("VerifyUserPassword", err)
	}
	defer sess.Release()

	u, err := verifyUserPassword(ctx, sess, req.GetEmail(), req.GetPassword())
	if err != nil {
		return nil, internalError("VerifyUserPassword", err)
	}
	if u == nil {
		// 驗證失敗不是錯誤，回 valid=false
		return &pb.VerifyUserPasswordResponse{Valid: false}, nil
	}
	return &pb.VerifyUserPasswordResponse{Valid: true, User: toProto(u)}, nil
}

func (s *UserServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "User ID is required")
	}
	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("DeleteUser", err)
	}
	defer sess.Release()

	deleted, err := deleteUser(ctx, sess, req.GetId())
	if err != nil {
		return nil, internalError("DeleteUser", err)
	}
	if !deleted {
		return nil, status.Errorf(codes.NotFound, "User with ID %s not found", req.GetId())
	}
	return &pb.DeleteUserResponse{Id: req.GetId()}, nil
}

func (s *UserServer) ListUsers(ctx context.Context, req *pb.ListUsersRequest) (*pb.ListUsersResponse, error) {
	page := int(req.GetPage())
	if page <= 0 {
		page = 1
	}
	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = 10
	} else if limit > 100 {
		limit = 100
	}

	sess, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, internalError("ListUsers", err)
	}
	defer sess.Release()

	users, total, err := listUsers(ctx, sess, page, limit)
	if err != nil {
		return nil, internalError("ListUsers", err)
	}

	out := make([]*pb.User, 0, len(users))
	for i := range users {
		out = append(out, toProto(&users[i]))
	}
	return &pb.ListUsersResponse{
		Users: out,
		Total: int32(total),
		Page:  int32(page),
		Limit: int32(limit),
	}, nil
}
