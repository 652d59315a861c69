package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/userdir/internal/common"
	"github.com/dmitrijs2005/userdir/internal/logging"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/auth"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

// UserIDKey holds the authenticated account id in the request context.
const UserIDKey ctxKey = "userID"

// protectedMethods lists the RPCs that require a valid session token.
// SignUp and SignIn stay open so that new clients can get in.
var protectedMethods = map[string]bool{
	pb.UserDirectoryService_GetUser_FullMethodName:    true,
	pb.UserDirectoryService_ListUsers_FullMethodName:  true,
	pb.UserDirectoryService_UpdateUser_FullMethodName: true,
	pb.UserDirectoryService_DeleteUser_FullMethodName: true,
}

// authenticate extracts the access token from incoming metadata, validates
// it, and returns a context carrying the authenticated user id.
func (s *GRPCServer) authenticate(ctx context.Context) (context.Context, error) {

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret, s.tokenIssuer, s.tokenAudience)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return context.WithValue(ctx, UserIDKey, userID), nil
}

// requestIDInterceptor tags the request context with a correlation id so
// every record the handlers log carries a request_id attribute.
func (s *GRPCServer) requestIDInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	ctx = logging.WithRequestID(ctx, uuid.NewString())
	return handler(ctx, req)
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if protectedMethods[info.FullMethod] {
		authCtx, err := s.authenticate(ctx)
		if err != nil {
			return nil, err
		}
		ctx = authCtx
	}

	return handler(ctx, req)
}

// wrappedStream carries a replacement context through a server stream.
type wrappedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedStream) Context() context.Context { return w.ctx }

func (s *GRPCServer) accessTokenStreamInterceptor(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {

	ctx := logging.WithRequestID(ss.Context(), uuid.NewString())

	if protectedMethods[info.FullMethod] {
		authCtx, err := s.authenticate(ctx)
		if err != nil {
			return err
		}
		ctx = authCtx
	}

	return handler(srv, &wrappedStream{ServerStream: ss, ctx: ctx})
}
