package api

import (
	"context"
	"time"

	deskdv1 "github.com/pcarvalho/deskd/gen/deskd/v1"
	"github.com/pcarvalho/deskd/internal/rtc"
	"github.com/pcarvalho/deskd/internal/status"
	"github.com/pcarvalho/deskd/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// SessionService implements the SessionService gRPC service.
type SessionService struct {
	deskdv1.UnimplementedSessionServiceServer

	profile   string
	startedAt time.Time
	client    *rtc.Client
	db        *store.DB
}

// NewSessionService creates a new session service.
func NewSessionService(profile string, client *rtc.Client, db *store.DB) *SessionService {
	return &SessionService{
		profile:   profile,
		startedAt: time.Now(),
		client:    client,
		db:        db,
	}
}

func (s *SessionService) GetSessionStatus(_ context.Context, _ *deskdv1.GetSessionStatusRequest) (*deskdv1.GetSessionStatusResponse, error) {
	current := s.client.State()

	resp := &deskdv1.GetSessionStatusResponse{
		Profile:       s.profile,
		State:         stateToProto(current),
		StateMessage:  string(current),
		HasCredential: s.client.HasCredential(),
		UptimeMs:      time.Since(s.startedAt).Milliseconds(),
		Subscriptions: s.client.Subscriptions(),
	}

	if s.db != nil {
		if n, err := s.db.ConversationCount(); err == nil {
			resp.ConversationCount = int32(n)
		}
	}

	return resp, nil
}

func (s *SessionService) Connect(ctx context.Context, _ *deskdv1.ConnectRequest) (*deskdv1.ConnectResponse, error) {
	if !s.client.HasCredential() {
		return &deskdv1.ConnectResponse{
			Accepted: false,
			Message:  "no credential stored; run auth set-token first",
		}, nil
	}
	if err := s.client.Connect(ctx); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "connect: %v", err)
	}
	return &deskdv1.ConnectResponse{Accepted: true, Message: "connecting"}, nil
}

func (s *SessionService) Disconnect(_ context.Context, _ *deskdv1.DisconnectRequest) (*deskdv1.DisconnectResponse, error) {
	if err := s.client.Disconnect(); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "disconnect: %v", err)
	}
	return &deskdv1.DisconnectResponse{Accepted: true}, nil
}

func stateToProto(s status.State) deskdv1.ConnectionState {
	switch s {
	case status.Disconnected:
		return deskdv1.ConnectionState_CONNECTION_STATE_DISCONNECTED
	case status.Connecting:
		return deskdv1.ConnectionState_CONNECTION_STATE_CONNECTING
	case status.Open:
		return deskdv1.ConnectionState_CONNECTION_STATE_OPEN
	case status.Closing:
		return deskdv1.ConnectionState_CONNECTION_STATE_CLOSING
	default:
		return deskdv1.ConnectionState_CONNECTION_STATE_UNSPECIFIED
	}
}
