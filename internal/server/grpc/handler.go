package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdir/internal/common"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// statusFromError translates service errors into gRPC statuses. Internal
// details never leak to the client for unexpected failures.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, common.ErrorUnauthorized):
		return status.Error(codes.Unauthenticated, err.Error())
	case errors.Is(err, common.ErrorStoreUnavailable):
		return status.Error(codes.Unavailable, "storage is unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func toPBUser(u *models.User) *pb.User {
	return &pb.User{
		Id:        u.ID,
		UserName:  u.UserName,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

func (s *GRPCServer) SignUp(ctx context.Context, req *pb.SignUpRequest) (*pb.User, error) {

	s.logger.Info(ctx, "Sign-up request")

	user, err := s.users.SignUp(ctx, services.SignUpParams{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		UserName:  req.UserName,
		Password:  req.Password,
	})

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Signed up", "username", user.UserName, "id", user.ID)
	return toPBUser(user), nil
}

func (s *GRPCServer) SignIn(ctx context.Context, req *pb.SignInRequest) (*pb.SignInResponse, error) {

	user, token, err := s.users.Authenticate(ctx, req.UserName, req.Password)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Signed in", "username", user.UserName)
	return &pb.SignInResponse{User: toPBUser(user), AccessToken: token}, nil
}

// GetUser returns the requested account, or an empty User when no account
// with the given id exists.
func (s *GRPCServer) GetUser(ctx context.Context, req *pb.GetUserRequest) (*pb.User, error) {

	user, err := s.users.GetByID(ctx, req.Id)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	if user == nil {
		return &pb.User{}, nil
	}

	return toPBUser(user), nil
}

func (s *GRPCServer) ListUsers(req *pb.ListUsersRequest, stream grpc.ServerStreamingServer[pb.User]) error {

	ctx := stream.Context()

	users, err := s.users.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, err.Error())
		return statusFromError(err)
	}

	for _, user := range users {
		if err := stream.Send(toPBUser(user)); err != nil {
			return err
		}
	}

	return nil
}

func (s *GRPCServer) UpdateUser(ctx context.Context, req *pb.UpdateUserRequest) (*pb.UpdateUserResponse, error) {

	err := s.users.Update(ctx, services.UpdateParams{
		ID:          req.Id,
		UserName:    req.UserName,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	})

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Updated", "id", req.Id)
	return &pb.UpdateUserResponse{}, nil
}

func (s *GRPCServer) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {

	err := s.users.Delete(ctx, req.Id)

	if err != nil {
		s.logger.Error(ctx, err.Error())
		return nil, statusFromError(err)
	}

	s.logger.Info(ctx, "Deleted", "id", req.Id)
	return &pb.DeleteUserResponse{}, nil
}
