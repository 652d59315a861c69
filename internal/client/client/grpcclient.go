package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/userdir/internal/client/models"
	"github.com/dmitrijs2005/userdir/internal/common"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.UserDirectoryServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return invoker(ctx, method, req, reply, cc, opts...)
}

func (s *GRPCClient) accessTokenStreamInterceptor(
	ctx context.Context,
	desc *grpc.StreamDesc,
	cc *grpc.ClientConn,
	method string,
	streamer grpc.Streamer,
	opts ...grpc.CallOption,
) (grpc.ClientStream, error) {
	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}
	return streamer(ctx, desc, cc, method, opts...)
}

func NewUserDirectoryClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
		grpc.WithStreamInterceptor(s.accessTokenStreamInterceptor),
	)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewUserDirectoryServiceClient(conn)
	return nil
}

func toModelUser(u *pb.User) *models.User {
	return &models.User{
		ID:        u.GetId(),
		UserName:  u.GetUserName(),
		Email:     u.GetEmail(),
		FirstName: u.GetFirstName(),
		LastName:  u.GetLastName(),
	}
}

func (s *GRPCClient) SignUp(ctx context.Context, params SignUpParams) (*models.User, error) {

	req := &pb.SignUpRequest{
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Email:     params.Email,
		UserName:  params.UserName,
		Password:  params.Password,
	}

	resp, err := s.client.SignUp(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	return toModelUser(resp), nil
}

// SignIn authenticates and keeps the returned session token for
// subsequent calls on this client.
func (s *GRPCClient) SignIn(ctx context.Context, userName string, password string) (*models.User, error) {

	req := &pb.SignInRequest{UserName: userName, Password: password}

	resp, err := s.client.SignIn(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	s.accessToken = resp.GetAccessToken()

	return toModelUser(resp.GetUser()), nil
}

// GetUser returns the account with the given id, or nil when the server
// reports an empty result.
func (s *GRPCClient) GetUser(ctx context.Context, id int64) (*models.User, error) {

	req := &pb.GetUserRequest{Id: id}

	resp, err := s.client.GetUser(ctx, req)

	if err != nil {
		return nil, s.mapError(err)
	}

	if resp.GetId() == 0 {
		return nil, nil
	}

	return toModelUser(resp), nil
}

// ListUsers consumes the server stream into a slice.
func (s *GRPCClient) ListUsers(ctx context.Context) ([]*models.User, error) {

	stream, err := s.client.ListUsers(ctx, &pb.ListUsersRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}

	var users []*models.User
	for {
		u, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, s.mapError(err)
		}
		users = append(users, toModelUser(u))
	}

	return users, nil
}

func (s *GRPCClient) UpdateUser(ctx context.Context, params UpdateParams) error {

	req := &pb.UpdateUserRequest{
		Id:          params.ID,
		UserName:    params.UserName,
		Email:       params.Email,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		OldPassword: params.OldPassword,
		NewPassword: params.NewPassword,
	}

	_, err := s.client.UpdateUser(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) DeleteUser(ctx context.Context, id int64) error {

	req := &pb.DeleteUserRequest{Id: id}

	_, err := s.client.DeleteUser(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.AlreadyExists:
		return fmt.Errorf("%w: %s", ErrConflict, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
