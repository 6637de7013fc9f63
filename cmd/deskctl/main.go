package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	deskdv1 "github.com/pcarvalho/deskd/gen/deskd/v1"
	"github.com/pcarvalho/deskd/internal/client"
	"github.com/pcarvalho/deskd/internal/session"
)

func main() {
	profileFlag := flag.String("profile", "", "profile name (overrides config default)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Parse()

	profile := session.Resolve(*profileFlag)
	if err := session.ValidateName(profile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	// auth works directly on the profile directory; no daemon required.
	if args[0] == "auth" {
		cmdAuth(profile, args[1:])
		return
	}

	socketPath := session.SocketPath(profile)
	c, err := client.New(socketPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot connect to daemon for profile %q: %v\n", profile, err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	switch args[0] {
	case "status":
		cmdStatus(ctx, c, *jsonFlag)
	case "connect":
		cmdConnect(ctx, c)
	case "disconnect":
		cmdDisconnect(ctx, c)
	case "conversations":
		cmdConversations(ctx, c, *jsonFlag)
	case "messages":
		cmdMessages(ctx, c, args[1:], *jsonFlag)
	case "send":
		cmdSend(ctx, c, args[1:])
	case "subscribe":
		cmdSubscribe(ctx, c, args[1:], true)
	case "unsubscribe":
		cmdSubscribe(ctx, c, args[1:], false)
	case "typing":
		cmdTyping(ctx, c, args[1:])
	case "read":
		cmdRead(ctx, c, args[1:])
	case "react":
		cmdReact(ctx, c, args[1:])
	case "pending":
		cmdPending(ctx, c, args[1:], *jsonFlag)
	case "watch":
		cmdWatch(c)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: deskctl [--profile <name>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                       Show daemon and connection status")
	fmt.Fprintln(os.Stderr, "  connect                      Open the realtime channel")
	fmt.Fprintln(os.Stderr, "  disconnect                   Close the realtime channel")
	fmt.Fprintln(os.Stderr, "  auth set-token [token]       Store the bearer token (reads stdin if omitted)")
	fmt.Fprintln(os.Stderr, "  conversations                List cached conversations")
	fmt.Fprintln(os.Stderr, "  messages <conv-id>           List cached messages for a conversation")
	fmt.Fprintln(os.Stderr, "  send <conv-id> <text...>     Send a message")
	fmt.Fprintln(os.Stderr, "  subscribe <conv-id>          Subscribe to live updates")
	fmt.Fprintln(os.Stderr, "  unsubscribe <conv-id>        Unsubscribe from live updates")
	fmt.Fprintln(os.Stderr, "  typing <conv-id> on|off      Signal typing state")
	fmt.Fprintln(os.Stderr, "  read <conv-id> <msg-id>      Mark read up to a message")
	fmt.Fprintln(os.Stderr, "  react <msg-id> <emoji> add|remove  Add or remove a reaction")
	fmt.Fprintln(os.Stderr, "  pending [conv-id]            List pending sends")
	fmt.Fprintln(os.Stderr, "  watch                        Stream message and cache events")
}

func cmdAuth(profile string, args []string) {
	if len(args) == 0 || args[0] != "set-token" {
		fmt.Fprintln(os.Stderr, "usage: deskctl auth set-token [token]")
		os.Exit(1)
	}
	var token string
	if len(args) >= 2 {
		token = args[1]
	} else {
		fmt.Fprint(os.Stderr, "token: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: read token: %v\n", err)
			os.Exit(1)
		}
		token = strings.TrimSpace(line)
	}
	if token == "" {
		fmt.Fprintln(os.Stderr, "error: empty token")
		os.Exit(1)
	}
	if err := session.WriteToken(profile, token); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Token stored for profile %q. Run `deskctl connect` to go online.\n", profile)
}

func cmdStatus(ctx context.Context, c *client.Client, jsonOut bool) {
	resp, err := c.Session.GetSessionStatus(ctx, &deskdv1.GetSessionStatusRequest{})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("Profile:       %s\n", resp.Profile)
	fmt.Printf("State:         %s\n", resp.StateMessage)
	fmt.Printf("Credential:    %v\n", resp.HasCredential)
	fmt.Printf("Uptime:        %dms\n", resp.UptimeMs)
	fmt.Printf("Conversations: %d\n", resp.ConversationCount)
	fmt.Printf("Subscriptions: %v\n", resp.Subscriptions)
}

func cmdConnect(ctx context.Context, c *client.Client) {
	resp, err := c.Session.Connect(ctx, &deskdv1.ConnectRequest{})
	if err != nil {
		fail(err)
	}
	if !resp.Accepted {
		fmt.Fprintf(os.Stderr, "not connected: %s\n", resp.Message)
		os.Exit(1)
	}
	fmt.Println(resp.Message)
}

func cmdDisconnect(ctx context.Context, c *client.Client) {
	if _, err := c.Session.Disconnect(ctx, &deskdv1.DisconnectRequest{}); err != nil {
		fail(err)
	}
	fmt.Println("disconnected")
}

func cmdConversations(ctx context.Context, c *client.Client, jsonOut bool) {
	resp, err := c.Conversation.ListConversations(ctx, &deskdv1.ListConversationsRequest{})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.Conversations) == 0 {
		fmt.Println("No conversations cached.")
		return
	}
	for _, conv := range resp.Conversations {
		unread := ""
		if conv.UnreadCount > 0 {
			unread = fmt.Sprintf(" (%d unread)", conv.UnreadCount)
		}
		fmt.Printf("%-8d %-40s %s%s\n", conv.Id, conv.Subject, conv.LastMessagePreview, unread)
	}
}

func cmdMessages(ctx context.Context, c *client.Client, args []string, jsonOut bool) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: deskctl messages <conv-id>")
		os.Exit(1)
	}
	convID := parseID(args[0])
	resp, err := c.Message.ListMessages(ctx, &deskdv1.ListMessagesRequest{ConversationId: convID})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	for _, m := range resp.Messages {
		sender := m.SenderName
		if m.FromMe {
			sender = "me"
		}
		body := m.Content
		if m.Deleted {
			body = "<deleted>"
		}
		marker := ""
		if m.Status == "pending" {
			marker = " [sending]"
		} else if m.Status == "failed" {
			marker = " [failed]"
		}
		fmt.Printf("%-12s %s%s\n", sender+":", body, marker)
	}
}

func cmdSend(ctx context.Context, c *client.Client, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: deskctl send <conv-id> <text...>")
		os.Exit(1)
	}
	convID := parseID(args[0])
	resp, err := c.Message.SendMessage(ctx, &deskdv1.SendMessageRequest{
		ConversationId: convID,
		Content:        strings.Join(args[1:], " "),
		MessageType:    "text",
	})
	if err != nil {
		fail(err)
	}
	fmt.Printf("sent (client id %s)\n", resp.ClientId)
}

func cmdSubscribe(ctx context.Context, c *client.Client, args []string, subscribe bool) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: deskctl subscribe|unsubscribe <conv-id>")
		os.Exit(1)
	}
	convID := parseID(args[0])
	var subscriptions []int64
	if subscribe {
		resp, err := c.Conversation.Subscribe(ctx, &deskdv1.SubscribeRequest{ConversationId: convID})
		if err != nil {
			fail(err)
		}
		subscriptions = resp.Subscriptions
	} else {
		resp, err := c.Conversation.Unsubscribe(ctx, &deskdv1.UnsubscribeRequest{ConversationId: convID})
		if err != nil {
			fail(err)
		}
		subscriptions = resp.Subscriptions
	}
	fmt.Printf("subscriptions: %v\n", subscriptions)
}

func cmdTyping(ctx context.Context, c *client.Client, args []string) {
	if len(args) < 2 || (args[1] != "on" && args[1] != "off") {
		fmt.Fprintln(os.Stderr, "usage: deskctl typing <conv-id> on|off")
		os.Exit(1)
	}
	convID := parseID(args[0])
	_, err := c.Conversation.SetTyping(ctx, &deskdv1.SetTypingRequest{
		ConversationId: convID,
		IsTyping:       args[1] == "on",
	})
	if err != nil {
		fail(err)
	}
}

func cmdRead(ctx context.Context, c *client.Client, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: deskctl read <conv-id> <msg-id>")
		os.Exit(1)
	}
	_, err := c.Message.MarkRead(ctx, &deskdv1.MarkReadRequest{
		ConversationId: parseID(args[0]),
		MessageId:      parseID(args[1]),
	})
	if err != nil {
		fail(err)
	}
}

func cmdReact(ctx context.Context, c *client.Client, args []string) {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "usage: deskctl react <msg-id> <emoji> add|remove")
		os.Exit(1)
	}
	_, err := c.Message.React(ctx, &deskdv1.ReactRequest{
		MessageId: parseID(args[0]),
		Emoji:     args[1],
		Action:    args[2],
	})
	if err != nil {
		fail(err)
	}
}

func cmdPending(ctx context.Context, c *client.Client, args []string, jsonOut bool) {
	var convID int64
	if len(args) >= 1 {
		convID = parseID(args[0])
	}
	resp, err := c.Message.ListPendingSends(ctx, &deskdv1.ListPendingSendsRequest{ConversationId: convID})
	if err != nil {
		fail(err)
	}
	if jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.PendingSends) == 0 {
		fmt.Println("No pending sends.")
		return
	}
	for _, p := range resp.PendingSends {
		line := fmt.Sprintf("%-38s conv=%d %s", p.ClientId, p.ConversationId, p.Status)
		if p.ErrorMessage != "" {
			line += " (" + p.ErrorMessage + ")"
		}
		fmt.Println(line)
	}
}

func cmdWatch(c *client.Client) {
	// Streaming has no deadline; cancel with Ctrl-C.
	stream, err := c.Message.WatchMessageEvents(context.Background(), &deskdv1.WatchMessageEventsRequest{})
	if err != nil {
		fail(err)
	}
	fmt.Println("watching message events (Ctrl-C to stop)...")
	for {
		evt, err := stream.Recv()
		if err != nil {
			fail(err)
		}
		fmt.Printf("%s %s\n", time.UnixMilli(evt.OccurredAtUnixMs).Format(time.RFC3339), evt.Kind)
	}
}

func parseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: invalid id %q\n", s)
		os.Exit(1)
	}
	return id
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
