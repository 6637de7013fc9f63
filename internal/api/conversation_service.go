package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
	deskdv1 "github.com/pcarvalho/deskd/gen/deskd/v1"
	"github.com/pcarvalho/deskd/internal/bus"
	"github.com/pcarvalho/deskd/internal/rtc"
	"github.com/pcarvalho/deskd/internal/store"
	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"
)

// ConversationService implements the ConversationService gRPC service.
type ConversationService struct {
	deskdv1.UnimplementedConversationServiceServer

	db      *store.DB
	client  *rtc.Client
	bus     *bus.Bus
	profile string
}

// NewConversationService creates a conversation service backed by the
// local cache and the realtime client.
func NewConversationService(db *store.DB, client *rtc.Client, b *bus.Bus, profile string) *ConversationService {
	return &ConversationService{db: db, client: client, bus: b, profile: profile}
}

func (s *ConversationService) ListConversations(_ context.Context, req *deskdv1.ListConversationsRequest) (*deskdv1.ListConversationsResponse, error) {
	limit := 50
	offset := 0
	if req.Pagination != nil {
		if req.Pagination.Limit > 0 {
			limit = int(req.Pagination.Limit)
		}
		if req.Pagination.Offset > 0 {
			offset = int(req.Pagination.Offset)
		}
	}

	convs, err := s.db.ListConversations(limit, offset)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list conversations: %v", err)
	}

	var pbConvs []*deskdv1.Conversation
	for _, c := range convs {
		pbConvs = append(pbConvs, conversationToProto(&c))
	}

	return &deskdv1.ListConversationsResponse{
		Conversations: pbConvs,
		PageInfo: &deskdv1.PageInfo{
			HasMore: len(convs) == limit,
		},
	}, nil
}

func (s *ConversationService) GetConversation(_ context.Context, req *deskdv1.GetConversationRequest) (*deskdv1.GetConversationResponse, error) {
	c, err := s.db.GetConversation(req.ConversationId)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "get conversation: %v", err)
	}
	if c == nil {
		return nil, grpcstatus.Errorf(codes.NotFound, "conversation %d not found", req.ConversationId)
	}
	return &deskdv1.GetConversationResponse{Conversation: conversationToProto(c)}, nil
}

func (s *ConversationService) Subscribe(ctx context.Context, req *deskdv1.SubscribeRequest) (*deskdv1.SubscribeResponse, error) {
	if err := s.client.Subscribe(ctx, req.ConversationId); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "subscribe: %v", err)
	}
	return &deskdv1.SubscribeResponse{Subscriptions: s.client.Subscriptions()}, nil
}

func (s *ConversationService) Unsubscribe(ctx context.Context, req *deskdv1.UnsubscribeRequest) (*deskdv1.UnsubscribeResponse, error) {
	if err := s.client.Unsubscribe(ctx, req.ConversationId); err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "unsubscribe: %v", err)
	}
	return &deskdv1.UnsubscribeResponse{Subscriptions: s.client.Subscriptions()}, nil
}

func (s *ConversationService) GetTypingUsers(_ context.Context, req *deskdv1.GetTypingUsersRequest) (*deskdv1.GetTypingUsersResponse, error) {
	return &deskdv1.GetTypingUsersResponse{
		UserIds: s.client.TypingUsers(req.ConversationId),
	}, nil
}

func (s *ConversationService) SetTyping(ctx context.Context, req *deskdv1.SetTypingRequest) (*deskdv1.SetTypingResponse, error) {
	if err := s.client.SetTyping(ctx, req.ConversationId, req.IsTyping); err != nil {
		if errors.Is(err, rtc.ErrNotConnected) {
			return nil, grpcstatus.Errorf(codes.FailedPrecondition, "not connected")
		}
		return nil, grpcstatus.Errorf(codes.Internal, "set typing: %v", err)
	}
	return &deskdv1.SetTypingResponse{}, nil
}

func (s *ConversationService) WatchConversationUpdates(_ *deskdv1.WatchConversationUpdatesRequest, stream deskdv1.ConversationService_WatchConversationUpdatesServer) error {
	ch, unsub := s.bus.Subscribe("cache.", 256)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if err := stream.Send(&deskdv1.EventEnvelope{
				EventId:          uuid.New().String(),
				Profile:          s.profile,
				OccurredAtUnixMs: evt.Timestamp.UnixMilli(),
				Kind:             evt.Kind,
				PayloadVersion:   1,
			}); err != nil {
				return err
			}
		case <-stream.Context().Done():
			return nil
		}
	}
}

func conversationToProto(c *store.Conversation) *deskdv1.Conversation {
	return &deskdv1.Conversation{
		Id:                  c.ID,
		Subject:             c.Subject,
		Kind:                c.Kind,
		UnreadCount:         int32(c.UnreadCount),
		LastMessageAtUnixMs: c.LastMessageAt,
		LastMessagePreview:  c.LastMessagePreview,
	}
}
