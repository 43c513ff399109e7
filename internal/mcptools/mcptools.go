// Package mcptools exposes the analyzer as Model Context Protocol tools.
package mcptools

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dgallion1/clausewise/internal/document"
	"github.com/dgallion1/clausewise/internal/pipeline"
)

// Register adds the clausewise tools to srv.
func Register(srv *mcp.Server, a *pipeline.Analyzer) {
	addTool(srv, &mcp.Tool{
		Name:        "clausewise_analyze",
		Description: "Analyze a legal document (pdf, docx or txt): clauses, plain-language rewrites, entities, document type and risk.",
		InputSchema: inputSchema(map[string]any{
			"filename":       map[string]any{"type": "string", "description": "File name; the extension selects the parser"},
			"text":           map[string]any{"type": "string", "description": "Document text, for .txt files"},
			"content_base64": map[string]any{"type": "string", "description": "Raw file bytes, base64-encoded, for pdf or docx"},
		}, []string{"filename"}),
	}, func(ctx context.Context, r *analyzeReq) (any, error) {
		content, err := r.content()
		if err != nil {
			return nil, err
		}
		return a.Analyze(ctx, document.RawDocument{Content: content, Filename: r.Filename})
	})

	addTool(srv, &mcp.Tool{
		Name:        "clausewise_simplify",
		Description: "Rewrite one contract clause in plain language.",
		InputSchema: inputSchema(map[string]any{
			"clause": map[string]any{"type": "string", "description": "Clause text"},
		}, []string{"clause"}),
	}, func(_ context.Context, r *clauseReq) (any, error) {
		if strings.TrimSpace(r.Clause) == "" {
			return nil, errors.New("clause is required")
		}
		return map[string]string{"original": r.Clause, "simplified": a.Simplify(r.Clause)}, nil
	})

	addTool(srv, &mcp.Tool{
		Name:        "clausewise_classify",
		Description: "Guess the contract type (NDA, lease, employment, service, general) of a text.",
		InputSchema: inputSchema(map[string]any{
			"text": map[string]any{"type": "string", "description": "Document text"},
		}, []string{"text"}),
	}, func(_ context.Context, r *textReq) (any, error) {
		if strings.TrimSpace(r.Text) == "" {
			return nil, errors.New("text is required")
		}
		return a.Classify(r.Text), nil
	})

	addTool(srv, &mcp.Tool{
		Name:        "clausewise_entities",
		Description: "Find organizations, persons, dates and monetary amounts in a text.",
		InputSchema: inputSchema(map[string]any{
			"text": map[string]any{"type": "string", "description": "Document text"},
		}, []string{"text"}),
	}, func(_ context.Context, r *textReq) (any, error) {
		if strings.TrimSpace(r.Text) == "" {
			return nil, errors.New("text is required")
		}
		return map[string]any{"entities": a.ExtractEntities(r.Text)}, nil
	})
}

type analyzeReq struct {
	Filename      string `json:"filename"`
	Text          string `json:"text"`
	ContentBase64 string `json:"content_base64"`
}

func (r *analyzeReq) content() ([]byte, error) {
	if r.ContentBase64 == "" {
		return []byte(r.Text), nil
	}
	data, err := base64.StdEncoding.DecodeString(r.ContentBase64)
	if err != nil {
		return nil, fmt.Errorf("decode content_base64: %w", err)
	}
	return data, nil
}

type clauseReq struct {
	Clause string `json:"clause"`
}

type textReq struct {
	Text string `json:"text"`
}

// addTool decodes the arguments into Req, runs fn and returns its result as
// JSON text. Failures become tool errors rather than protocol errors.
func addTool[Req any](srv *mcp.Server, tool *mcp.Tool, fn func(context.Context, *Req) (any, error)) {
	srv.AddTool(tool, func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var r Req
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
				return toolError(fmt.Errorf("invalid arguments: %w", err)), nil
			}
		}

		resp, err := fn(ctx, &r)
		if err != nil {
			return toolError(err), nil
		}

		data, err := json.Marshal(resp)
		if err != nil {
			return toolError(fmt.Errorf("marshal: %w", err)), nil
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	})
}

func toolError(err error) *mcp.CallToolResult {
	var res mcp.CallToolResult
	res.SetError(err)
	return &res
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// NewServer returns an MCP server with the clausewise tools registered.
func NewServer(a *pipeline.Analyzer, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "clausewise", Version: version}, nil)
	Register(srv, a)
	return srv
}
