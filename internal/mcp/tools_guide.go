// tools_guide.go implements the MCP tool and resource for help content.

package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/jpl-au/docsite/guide"
	"github.com/jpl-au/docsite/internal/log"
	"github.com/mark3labs/mcp-go/mcp"
)

// guideURIPrefix addresses guides as docsite://guide/{topic}.
const guideURIPrefix = "docsite://guide/"

// getGuide handles docsite_guide tool calls.
func (h *handlers) getGuide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")

	content, err := guide.Get(topic)

	log.Event("mcp:docsite_guide", "read").Author("mcp").Detail("topic", topic).Write(err)

	if err != nil {
		topics, listErr := guide.List()
		if listErr != nil {
			return nil, fmt.Errorf("listing guides: %w", listErr)
		}
		return jsonResult(map[string]any{
			"error":            err.Error(),
			"available_topics": topics,
		})
	}

	return mcp.NewToolResultText(content), nil
}

// readGuide handles docsite://guide/{topic} resource requests.
func (h *handlers) readGuide(_ context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	topic, ok := strings.CutPrefix(uri, guideURIPrefix)
	if !ok {
		return nil, fmt.Errorf("invalid guide URI: %s", uri)
	}

	content, err := guide.Get(topic)
	if err != nil {
		return nil, fmt.Errorf("guide %q: %w", topic, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/markdown",
			Text:     content,
		},
	}, nil
}
