package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/otrixindiacloud/tradix-docingest/internal/config"
	"github.com/otrixindiacloud/tradix-docingest/internal/ingest"
)

// Server exposes the document-ingestion operations as MCP tools over stdio.
// Each tool reads the referenced file and hands bytes + filename to the
// ingestion service; results are returned as JSON for the consuming layer.
type Server struct {
	config    *config.Config
	ingestSvc *ingest.Service
	mcpServer *server.MCPServer
}

// NewServer creates a new tool server instance.
func NewServer(cfg *config.Config, ingestSvc *ingest.Service) (*Server, error) {
	if ingestSvc == nil {
		return nil, fmt.Errorf("ingest service cannot be nil")
	}

	mcpServer := server.NewMCPServer(
		cfg.ServerName,
		cfg.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		config:    cfg,
		ingestSvc: ingestSvc,
		mcpServer: mcpServer,
	}

	s.registerTools()

	return s, nil
}

// registerTools registers all available tools.
func (s *Server) registerTools() {
	parseReceiptTool := mcp.NewTool(
		"parse_receipt_document",
		mcp.WithDescription("Parse an uploaded goods receipt PDF into structured header and line-item data"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the receipt PDF file"),
		),
	)
	s.mcpServer.AddTool(parseReceiptTool, s.handleParseReceipt)

	parseDeliveryTool := mcp.NewTool(
		"parse_delivery_document",
		mcp.WithDescription("Parse an uploaded delivery note PDF into structured header and line-item data"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the delivery note PDF file"),
		),
	)
	s.mcpServer.AddTool(parseDeliveryTool, s.handleParseDelivery)

	validateTool := mcp.NewTool(
		"validate_document",
		mcp.WithDescription("Check whether a file is a well-formed PDF before parsing it"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Full path to the PDF file"),
		),
	)
	s.mcpServer.AddTool(validateTool, s.handleValidateDocument)
}

// loadRequest reads the referenced file into a parse request. The extraction
// contract is bytes + filename; the path never travels further than here.
func (s *Server) loadRequest(request mcp.CallToolRequest) (ingest.ParseDocumentRequest, error) {
	path, err := request.RequireString("path")
	if err != nil {
		return ingest.ParseDocumentRequest{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ingest.ParseDocumentRequest{}, fmt.Errorf("cannot read file: %w", err)
	}

	return ingest.ParseDocumentRequest{
		Filename: filepath.Base(path),
		Data:     data,
	}, nil
}

// Handler functions
func (s *Server) handleParseReceipt(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := s.loadRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.ingestSvc.ParseReceipt(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(doc)
}

func (s *Server) handleParseDelivery(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := s.loadRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	doc, err := s.ingestSvc.ParseDelivery(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(doc)
}

func (s *Server) handleValidateDocument(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	req, err := s.loadRequest(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return s.jsonResult(s.ingestSvc.ValidateDocument(req))
}

// jsonResult serializes a result value for the consuming layer.
func (s *Server) jsonResult(v any) (*mcp.CallToolResult, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

// Run starts the tool server on stdio. The parent process controls the
// lifecycle; ctx is accepted for symmetry with the parse mode entrypoint.
func (s *Server) Run(_ context.Context) error {
	if s.config.IsDebug() {
		log.Printf("Starting docingest tool server on stdio")
	}

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve stdio: %w", err)
	}
	return nil
}
