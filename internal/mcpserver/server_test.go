package mcpserver

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"sort"
	"testing"

	apppublic "bidding-coach/internal/app/public"
	appsession "bidding-coach/internal/app/session"
	"bidding-coach/internal/store"

	"github.com/mark3labs/mcp-go/client"
	"github.com/mark3labs/mcp-go/client/transport"
	"github.com/mark3labs/mcp-go/mcp"
)

func newTestServer(t *testing.T) *client.Client {
	t.Helper()
	srv := New(apppublic.NewService(), appsession.NewService(store.NewMemory()))
	httpSrv := httptest.NewServer(srv.Handler())
	t.Cleanup(httpSrv.Close)
	c, closeClient := newMCPClient(t, httpSrv.URL+"/mcp")
	t.Cleanup(closeClient)
	return c
}

func TestMCPServerPublicTools(t *testing.T) {
	mcpClient := newTestServer(t)

	assertToolNames(t, mustListTools(t, mcpClient),
		"parse_hand",
		"advise_call",
		"explain_call",
		"auction_status",
		"create_session",
		"record_call",
		"undo_call",
		"session_advice",
		"session_history",
		"list_sessions",
	)

	parsed := mapFromStructured(t, mustCallTool(t, mcpClient, "parse_hand", map[string]any{"hand": "AK2.KQ3.QJ4.J432"}))
	hand, _ := parsed["hand"].(map[string]any)
	if asFloat64(hand["points"]) != 16 || hand["balanced"] != true {
		t.Fatalf("parse_hand = %v", parsed)
	}

	advice := mapFromStructured(t, mustCallTool(t, mcpClient, "advise_call", map[string]any{
		"hand":   "AK2.KQ3.QJ4.J432",
		"dealer": "N",
	}))
	if got := firstSuggestion(t, advice); got != "1NT" {
		t.Fatalf("advise_call first = %q, want 1NT", got)
	}

	explained := mapFromStructured(t, mustCallTool(t, mcpClient, "explain_call", map[string]any{
		"dealer": "N",
		"calls":  "1NT P",
		"call":   "2C",
	}))
	ex, _ := explained["explanation"].(map[string]any)
	if asString(ex["convention"]) != "Stayman" || asString(ex["seat"]) != "S" {
		t.Fatalf("explain_call = %v", explained)
	}

	status := mapFromStructured(t, mustCallTool(t, mcpClient, "auction_status", map[string]any{
		"dealer": "N",
		"calls":  "1C P 1H P 4H P P P",
	}))
	auction, _ := status["auction"].(map[string]any)
	result, _ := auction["result"].(map[string]any)
	if asString(auction["state"]) != "finished" || asString(result["contract"]) != "4H" || asString(result["declarer"]) != "S" {
		t.Fatalf("auction_status = %v", status)
	}
}

func TestMCPServerSessionFlow(t *testing.T) {
	mcpClient := newTestServer(t)

	created := mapFromStructured(t, mustCallTool(t, mcpClient, "create_session", map[string]any{
		"seat":   "S",
		"dealer": "N",
		"hand":   "AK2.KQ3.QJ4.J432",
	}))
	sessionID := asString(created["session_id"])
	if sessionID == "" {
		t.Fatalf("create_session = %v", created)
	}

	early := mustCallTool(t, mcpClient, "session_advice", map[string]any{"session_id": sessionID})
	assertToolErrorCode(t, early, "not_your_turn")

	for _, c := range []string{"P", "P"} {
		res := mustCallTool(t, mcpClient, "record_call", map[string]any{"session_id": sessionID, "call": c})
		if res.IsError {
			t.Fatalf("record_call %s: %v", c, res.StructuredContent)
		}
	}
	advice := mapFromStructured(t, mustCallTool(t, mcpClient, "session_advice", map[string]any{"session_id": sessionID}))
	if got := firstSuggestion(t, advice); got != "1NT" {
		t.Fatalf("session_advice first = %q, want 1NT", got)
	}

	history := mapFromStructured(t, mustCallTool(t, mcpClient, "session_history", map[string]any{"session_id": sessionID}))
	if items, _ := history["items"].([]any); len(items) != 2 {
		t.Fatalf("session_history = %v", history)
	}

	undone := mapFromStructured(t, mustCallTool(t, mcpClient, "undo_call", map[string]any{"session_id": sessionID}))
	auction, _ := undone["auction"].(map[string]any)
	if calls, _ := auction["calls"].([]any); len(calls) != 1 {
		t.Fatalf("undo_call = %v", undone)
	}

	res, err := mcpClient.ReadResource(context.Background(), mcp.ReadResourceRequest{
		Params: mcp.ReadResourceParams{URI: "session://" + sessionID + "/auction"},
	})
	if err != nil {
		t.Fatalf("read resource: %v", err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("resource contents = %d, want 1", len(res.Contents))
	}
	var text string
	switch c := res.Contents[0].(type) {
	case mcp.TextResourceContents:
		text = c.Text
	case *mcp.TextResourceContents:
		text = c.Text
	default:
		t.Fatalf("unexpected resource content %T", c)
	}
	var resource map[string]any
	if err := json.Unmarshal([]byte(text), &resource); err != nil {
		t.Fatalf("decode resource: %v", err)
	}
	if asString(resource["session_id"]) != sessionID {
		t.Fatalf("resource = %v", resource)
	}

	listed := mapFromStructured(t, mustCallTool(t, mcpClient, "list_sessions", map[string]any{}))
	if items, _ := listed["items"].([]any); len(items) != 1 {
		t.Fatalf("list_sessions = %v", listed)
	}
}

func TestMCPServerToolErrors(t *testing.T) {
	mcpClient := newTestServer(t)

	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{name: "missing hand", tool: "parse_hand", args: map[string]any{}, want: "invalid_request"},
		{name: "short hand", tool: "parse_hand", args: map[string]any{"hand": "AK2.KQ3"}, want: "malformed_hand"},
		{name: "bad dealer", tool: "auction_status", args: map[string]any{"dealer": "Q"}, want: "invalid_request"},
		{name: "illegal history", tool: "auction_status", args: map[string]any{"dealer": "N", "calls": "2C 1S"}, want: "illegal_call"},
		{name: "finished", tool: "advise_call", args: map[string]any{"hand": "AK2.KQ3.QJ4.J432", "dealer": "N", "calls": "P P P P"}, want: "auction_finished"},
		{name: "unknown session", tool: "session_advice", args: map[string]any{"session_id": store.NewID()}, want: "session_not_found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertToolErrorCode(t, mustCallTool(t, mcpClient, tt.tool, tt.args), tt.want)
		})
	}
}

func firstSuggestion(t *testing.T, payload map[string]any) string {
	t.Helper()
	items, _ := payload["suggestions"].([]any)
	if len(items) == 0 {
		t.Fatalf("no suggestions in %v", payload)
	}
	first, _ := items[0].(map[string]any)
	return asString(first["call"])
}

func newMCPClient(t *testing.T, endpoint string) (*client.Client, func()) {
	t.Helper()
	ctx := context.Background()
	trans, err := transport.NewStreamableHTTP(endpoint)
	if err != nil {
		t.Fatalf("new transport: %v", err)
	}
	if err := trans.Start(ctx); err != nil {
		t.Fatalf("transport start: %v", err)
	}
	c := client.NewClient(trans)
	_, err = c.Initialize(ctx, mcp.InitializeRequest{Params: mcp.InitializeParams{ProtocolVersion: mcp.LATEST_PROTOCOL_VERSION}})
	if err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return c, func() { _ = trans.Close() }
}

func mustListTools(t *testing.T, c *client.Client) []mcp.Tool {
	t.Helper()
	res, err := c.ListTools(context.Background(), mcp.ListToolsRequest{})
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	return res.Tools
}

func assertToolNames(t *testing.T, tools []mcp.Tool, expected ...string) {
	t.Helper()
	got := make([]string, 0, len(tools))
	for _, tool := range tools {
		got = append(got, tool.Name)
	}
	sort.Strings(got)
	sort.Strings(expected)
	if len(got) != len(expected) {
		t.Fatalf("tool count mismatch got=%v expected=%v", got, expected)
	}
	for i := range got {
		if got[i] != expected[i] {
			t.Fatalf("tool list mismatch got=%v expected=%v", got, expected)
		}
	}
}

func mustCallTool(t *testing.T, c *client.Client, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := c.CallTool(context.Background(), mcp.CallToolRequest{Params: mcp.CallToolParams{Name: name, Arguments: args}})
	if err != nil {
		t.Fatalf("call tool %s: %v", name, err)
	}
	return res
}

func assertToolErrorCode(t *testing.T, res *mcp.CallToolResult, want string) {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected tool error %q, got success: %v", want, res.StructuredContent)
	}
	payload := mapFromStructured(t, res)
	errObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Fatalf("error payload missing 'error': %v", payload)
	}
	got := asString(errObj["code"])
	if got != want {
		t.Fatalf("error code=%q want=%q payload=%v", got, want, payload)
	}
}

func mapFromStructured(t *testing.T, res *mcp.CallToolResult) map[string]any {
	t.Helper()
	b, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out map[string]any
	if err := json.Unmarshal(b, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return out
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asFloat64(v any) float64 {
	f, _ := v.(float64)
	return f
}
