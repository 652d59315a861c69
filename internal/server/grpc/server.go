package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/userdir/internal/logging"
	pb "github.com/dmitrijs2005/userdir/internal/proto"
	"github.com/dmitrijs2005/userdir/internal/server/config"
	"github.com/dmitrijs2005/userdir/internal/server/models"
	"github.com/dmitrijs2005/userdir/internal/server/services"
	"google.golang.org/grpc"
)

// userService is the part of services.UserService the transport needs.
type userService interface {
	SignUp(ctx context.Context, params services.SignUpParams) (*models.User, error)
	Authenticate(ctx context.Context, userName string, password string) (*models.User, string, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, params services.UpdateParams) error
	Delete(ctx context.Context, id int64) error
}

type GRPCServer struct {
	pb.UnimplementedUserDirectoryServiceServer
	address       string
	users         userService
	logger        logging.Logger
	jwtSecret     []byte
	tokenIssuer   string
	tokenAudience string
}

func NewGRPCServer(cfg *config.Config, l logging.Logger, us userService) (*GRPCServer, error) {
	return &GRPCServer{
		address:       cfg.EndpointAddrGRPC,
		logger:        l.With("module", "grpc_server"),
		users:         us,
		jwtSecret:     []byte(cfg.SecretKey),
		tokenIssuer:   cfg.TokenIssuer,
		tokenAudience: cfg.TokenAudience,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.requestIDInterceptor, s.accessTokenInterceptor),
		grpc.ChainStreamInterceptor(s.accessTokenStreamInterceptor),
	)

	// registers service
	pb.RegisterUserDirectoryServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
