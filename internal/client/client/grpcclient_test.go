package client

import (
	"context"
	"io"
	"testing"

	"github.com/dmitrijs2005/userdir/internal/common"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

/*************
 * Fake pb client
 *************/

type fakeListStream struct {
	grpc.ClientStream
	users []*pb.User
	err   error
	pos   int
}

func (f *fakeListStream) Recv() (*pb.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.pos >= len(f.users) {
		return nil, io.EOF
	}
	u := f.users[f.pos]
	f.pos++
	return u, nil
}

type fakePB struct {
	// inputs captured
	lastSignUpReq *pb.SignUpRequest
	lastSignInReq *pb.SignInRequest
	lastGetReq    *pb.GetUserRequest
	lastUpdateReq *pb.UpdateUserRequest
	lastDeleteReq *pb.DeleteUserRequest

	// outputs preset
	signUpResp *pb.User
	signUpErr  error

	signInResp *pb.SignInResponse
	signInErr  error

	getResp *pb.User
	getErr  error

	listStream *fakeListStream
	listErr    error

	updateErr error
	deleteErr error
}

func (f *fakePB) SignUp(ctx context.Context, in *pb.SignUpRequest, opts ...grpc.CallOption) (*pb.User, error) {
	f.lastSignUpReq = in
	return f.signUpResp, f.signUpErr
}
func (f *fakePB) SignIn(ctx context.Context, in *pb.SignInRequest, opts ...grpc.CallOption) (*pb.SignInResponse, error) {
	f.lastSignInReq = in
	return f.signInResp, f.signInErr
}
func (f *fakePB) GetUser(ctx context.Context, in *pb.GetUserRequest, opts ...grpc.CallOption) (*pb.User, error) {
	f.lastGetReq = in
	return f.getResp, f.getErr
}
func (f *fakePB) ListUsers(ctx context.Context, in *pb.ListUsersRequest, opts ...grpc.CallOption) (grpc.ServerStreamingClient[pb.User], error) {
	return f.listStream, f.listErr
}
func (f *fakePB) UpdateUser(ctx context.Context, in *pb.UpdateUserRequest, opts ...grpc.CallOption) (*pb.UpdateUserResponse, error) {
	f.lastUpdateReq = in
	return &pb.UpdateUserResponse{}, f.updateErr
}
func (f *fakePB) DeleteUser(ctx context.Context, in *pb.DeleteUserRequest, opts ...grpc.CallOption) (*pb.DeleteUserResponse, error) {
	f.lastDeleteReq = in
	return &pb.DeleteUserResponse{}, f.deleteErr
}

func pbUser(id int64, name string) *pb.User {
	return &pb.User{Id: id, UserName: name, Email: name + "@example.com"}
}

/*************
 * accessTokenInterceptor tests
 *************/

func TestInterceptor_AttachesTokenWhenPresent(t *testing.T) {
	c := &GRPCClient{accessToken: "T1"}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, _ := metadata.FromOutgoingContext(ctx)
		toks := md.Get(common.AccessTokenHeaderName)
		require.Len(t, toks, 1)
		require.Equal(t, "T1", toks[0])
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
}

func TestInterceptor_NoTokenNoMetadata(t *testing.T) {
	c := &GRPCClient{}

	invoker := func(ctx context.Context, method string, req, reply interface{}, cc *grpc.ClientConn, opts ...grpc.CallOption) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			require.Empty(t, md.Get(common.AccessTokenHeaderName))
		}
		return nil
	}

	err := c.accessTokenInterceptor(context.Background(), "/svc/Method", nil, nil, nil, invoker)
	require.NoError(t, err)
}

/*************
 * RPC wrappers
 *************/

func TestSignUp_SendsParamsAndMapsUser(t *testing.T) {
	f := &fakePB{signUpResp: pbUser(1, "alice")}
	c := &GRPCClient{client: f}

	u, err := c.SignUp(context.Background(), SignUpParams{
		FirstName: "Alice", LastName: "Liddell", Email: "alice@example.com",
		UserName: "alice", Password: "p@ss1234",
	})
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "alice", u.UserName)

	require.NotNil(t, f.lastSignUpReq)
	assert.Equal(t, "p@ss1234", f.lastSignUpReq.Password)
	assert.Equal(t, "alice@example.com", f.lastSignUpReq.Email)
}

func TestSignUp_MapsConflict(t *testing.T) {
	f := &fakePB{signUpErr: status.Error(codes.AlreadyExists, "username taken")}
	c := &GRPCClient{client: f}

	_, err := c.SignUp(context.Background(), SignUpParams{UserName: "alice"})
	require.ErrorIs(t, err, ErrConflict)
}

func TestSignIn_StoresAccessToken(t *testing.T) {
	f := &fakePB{signInResp: &pb.SignInResponse{
		User:        pbUser(5, "alice"),
		AccessToken: "tok",
	}}
	c := &GRPCClient{client: f}

	u, err := c.SignIn(context.Background(), "alice", "p@ss1234")
	require.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
	assert.Equal(t, "tok", c.accessToken)
}

func TestSignIn_MapsUnauthorized(t *testing.T) {
	f := &fakePB{signInErr: status.Error(codes.Unauthenticated, "username or password is incorrect")}
	c := &GRPCClient{client: f}

	_, err := c.SignIn(context.Background(), "alice", "nope")
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, c.accessToken)
}

func TestGetUser_Found(t *testing.T) {
	f := &fakePB{getResp: pbUser(9, "bob")}
	c := &GRPCClient{client: f}

	u, err := c.GetUser(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "bob", u.UserName)
}

func TestGetUser_EmptyResultIsNil(t *testing.T) {
	f := &fakePB{getResp: &pb.User{}}
	c := &GRPCClient{client: f}

	u, err := c.GetUser(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestListUsers_ConsumesStream(t *testing.T) {
	f := &fakePB{listStream: &fakeListStream{users: []*pb.User{
		pbUser(1, "alice"), pbUser(2, "bob"),
	}}}
	c := &GRPCClient{client: f}

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "bob", users[1].UserName)
}

func TestListUsers_MapsStreamError(t *testing.T) {
	f := &fakePB{listStream: &fakeListStream{err: status.Error(codes.Unavailable, "down")}}
	c := &GRPCClient{client: f}

	_, err := c.ListUsers(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestUpdateUser_MapsInvalidInput(t *testing.T) {
	f := &fakePB{updateErr: status.Error(codes.InvalidArgument, "password is wrong")}
	c := &GRPCClient{client: f}

	err := c.UpdateUser(context.Background(), UpdateParams{ID: 7, NewPassword: "x", OldPassword: "y"})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteUser_MapsNotFound(t *testing.T) {
	f := &fakePB{deleteErr: status.Error(codes.NotFound, "no such user")}
	c := &GRPCClient{client: f}

	err := c.DeleteUser(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
	require.NotNil(t, f.lastDeleteReq)
	assert.Equal(t, int64(404), f.lastDeleteReq.Id)
}
