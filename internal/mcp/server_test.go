package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/otrixindiacloud/tradix-docingest/internal/config"
	"github.com/otrixindiacloud/tradix-docingest/internal/ingest"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Mode = config.ModeServe

	svc := ingest.NewService(cfg.MaxFileSize, cfg.MinTextLength, t.TempDir())

	server, err := NewServer(cfg, svc)
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return server
}

func TestNewServer(t *testing.T) {
	server := newTestServer(t)

	if server.config == nil {
		t.Error("server config should not be nil")
	}
	if server.ingestSvc == nil {
		t.Error("server ingest service should not be nil")
	}
	if server.mcpServer == nil {
		t.Error("server MCP server should not be nil")
	}
}

func TestNewServerNilService(t *testing.T) {
	_, err := NewServer(config.DefaultConfig(), nil)
	if err == nil {
		t.Fatal("expected error for nil ingest service")
	}
	if !strings.Contains(err.Error(), "cannot be nil") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func toolRequest(path string) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]interface{}{
				"path": path,
			},
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("tool result has no content")
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	if textContentPtr, ok := result.Content[0].(*mcp.TextContent); ok {
		return textContentPtr.Text
	}
	t.Fatalf("tool result content is not text: %T", result.Content[0])
	return ""
}

func TestHandleParseReceiptMissingFile(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleParseReceipt(context.Background(),
		toolRequest(filepath.Join(t.TempDir(), "missing.pdf")))
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error result for missing file")
	}
}

func TestHandleParseReceiptMissingArgument(t *testing.T) {
	server := newTestServer(t)

	result, err := server.handleParseReceipt(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if !result.IsError {
		t.Error("expected tool error result for missing path argument")
	}
}

func TestHandleParseReceiptScrapedContent(t *testing.T) {
	server := newTestServer(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "scan.pdf")
	data := []byte("(GOODS RECEIPT NOTE) (GR-20251008-N1A5M) (ACME Trading LLC)")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	result, err := server.handleParseReceipt(context.Background(), toolRequest(path))
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var doc struct {
		ReceiptNumber string `json:"receiptNumber"`
		Status        string `json:"status"`
	}
	if jsonErr := json.Unmarshal([]byte(resultText(t, result)), &doc); jsonErr != nil {
		t.Fatalf("result is not valid JSON: %v", jsonErr)
	}
	if doc.ReceiptNumber != "GR-20251008-N1A5M" {
		t.Errorf("receiptNumber = %q, want %q", doc.ReceiptNumber, "GR-20251008-N1A5M")
	}
	if doc.Status != "Pending" {
		t.Errorf("status = %q, want %q", doc.Status, "Pending")
	}
}

func TestHandleValidateDocument(t *testing.T) {
	server := newTestServer(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "junk.pdf")
	if err := os.WriteFile(path, []byte("not a pdf"), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	result, err := server.handleValidateDocument(context.Background(), toolRequest(path))
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if result.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, result))
	}

	var v struct {
		Valid   bool   `json:"valid"`
		Message string `json:"message"`
	}
	if jsonErr := json.Unmarshal([]byte(resultText(t, result)), &v); jsonErr != nil {
		t.Fatalf("result is not valid JSON: %v", jsonErr)
	}
	if v.Valid {
		t.Error("expected invalid verdict for junk bytes")
	}
	if !strings.Contains(v.Message, "invalid PDF") {
		t.Errorf("message = %q, want mention of invalid PDF", v.Message)
	}
}
