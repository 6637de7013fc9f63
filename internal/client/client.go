// Package client wraps the daemon's gRPC surface for CLI use.
package client

import (
	"fmt"

	deskdv1 "github.com/pcarvalho/deskd/gen/deskd/v1"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client wraps gRPC connections to the daemon.
type Client struct {
	conn         *grpc.ClientConn
	Session      deskdv1.SessionServiceClient
	Conversation deskdv1.ConversationServiceClient
	Message      deskdv1.MessageServiceClient
}

// New dials the daemon's Unix domain socket and returns typed service clients.
func New(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient(
		"unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("dial daemon: %w", err)
	}

	return &Client{
		conn:         conn,
		Session:      deskdv1.NewSessionServiceClient(conn),
		Conversation: deskdv1.NewConversationServiceClient(conn),
		Message:      deskdv1.NewMessageServiceClient(conn),
	}, nil
}

// Close closes the gRPC connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
