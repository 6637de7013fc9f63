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

// MessageService implements the MessageService gRPC service.
type MessageService struct {
	deskdv1.UnimplementedMessageServiceServer

	db     *store.DB
	client *rtc.Client
	bus    *bus.Bus
}

// NewMessageService creates a message service backed by the local cache
// and the realtime client.
func NewMessageService(db *store.DB, client *rtc.Client, b *bus.Bus) *MessageService {
	return &MessageService{db: db, client: client, bus: b}
}

func (s *MessageService) ListMessages(_ context.Context, req *deskdv1.ListMessagesRequest) (*deskdv1.ListMessagesResponse, error) {
	limit := 50
	if req.Limit > 0 {
		limit = int(req.Limit)
	}

	msgs, err := s.db.ListMessages(req.ConversationId, req.BeforeTsUnixMs, limit)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list messages: %v", err)
	}

	var pbMsgs []*deskdv1.Message
	for _, m := range msgs {
		pbMsgs = append(pbMsgs, messageToProto(&m))
	}

	return &deskdv1.ListMessagesResponse{
		Messages: pbMsgs,
		PageInfo: &deskdv1.PageInfo{
			HasMore: len(msgs) == limit,
		},
	}, nil
}

// SendMessage transmits immediately on the open channel. While
// disconnected the send is rejected; there is no offline queue.
func (s *MessageService) SendMessage(ctx context.Context, req *deskdv1.SendMessageRequest) (*deskdv1.SendMessageResponse, error) {
	clientID, err := s.client.Send(ctx, req.ConversationId, req.Content, req.MessageType, req.ReplyToId)
	if err != nil {
		if errors.Is(err, rtc.ErrNotConnected) {
			return nil, grpcstatus.Errorf(codes.FailedPrecondition, "not connected; message rejected")
		}
		return nil, grpcstatus.Errorf(codes.Internal, "send message: %v", err)
	}
	return &deskdv1.SendMessageResponse{Accepted: true, ClientId: clientID}, nil
}

func (s *MessageService) MarkRead(ctx context.Context, req *deskdv1.MarkReadRequest) (*deskdv1.MarkReadResponse, error) {
	if err := s.client.MarkRead(ctx, req.ConversationId, req.MessageId); err != nil {
		if errors.Is(err, rtc.ErrNotConnected) {
			return nil, grpcstatus.Errorf(codes.FailedPrecondition, "not connected")
		}
		return nil, grpcstatus.Errorf(codes.Internal, "mark read: %v", err)
	}
	return &deskdv1.MarkReadResponse{}, nil
}

func (s *MessageService) React(ctx context.Context, req *deskdv1.ReactRequest) (*deskdv1.ReactResponse, error) {
	if req.Action != "add" && req.Action != "remove" {
		return nil, grpcstatus.Errorf(codes.InvalidArgument, "action must be add or remove")
	}
	if err := s.client.React(ctx, req.MessageId, req.Emoji, req.Action); err != nil {
		if errors.Is(err, rtc.ErrNotConnected) {
			return nil, grpcstatus.Errorf(codes.FailedPrecondition, "not connected")
		}
		return nil, grpcstatus.Errorf(codes.Internal, "react: %v", err)
	}
	return &deskdv1.ReactResponse{}, nil
}

func (s *MessageService) ListPendingSends(_ context.Context, req *deskdv1.ListPendingSendsRequest) (*deskdv1.ListPendingSendsResponse, error) {
	sends, err := s.db.PendingSends(req.ConversationId)
	if err != nil {
		return nil, grpcstatus.Errorf(codes.Internal, "list pending sends: %v", err)
	}

	var pbSends []*deskdv1.PendingSend
	for _, p := range sends {
		pbSends = append(pbSends, &deskdv1.PendingSend{
			ClientId:        p.ClientID,
			ConversationId:  p.ConversationID,
			Content:         p.Content,
			Status:          p.Status,
			ServerId:        p.ServerID,
			ErrorMessage:    p.ErrorMessage,
			CreatedAtUnixMs: p.CreatedAt,
		})
	}
	return &deskdv1.ListPendingSendsResponse{PendingSends: pbSends}, nil
}

func (s *MessageService) WatchMessageEvents(_ *deskdv1.WatchMessageEventsRequest, stream deskdv1.MessageService_WatchMessageEventsServer) error {
	ch, unsub := s.bus.Subscribe("message.", 64)
	defer unsub()

	for {
		select {
		case evt := <-ch:
			if err := stream.Send(&deskdv1.EventEnvelope{
				EventId:          uuid.New().String(),
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

func messageToProto(m *store.Message) *deskdv1.Message {
	return &deskdv1.Message{
		Id:              m.ID,
		ConversationId:  m.ConversationID,
		ServerId:        m.ServerID,
		ClientId:        m.ClientID,
		SenderId:        m.SenderID,
		SenderName:      m.SenderName,
		Content:         m.Content,
		MessageType:     m.MessageType,
		ReplyToId:       m.ReplyToID,
		Edited:          m.Edited,
		Deleted:         m.Deleted,
		FromMe:          m.FromMe,
		Status:          m.Status,
		CreatedAtUnixMs: m.CreatedAt,
	}
}
