package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/codexhq/congress-mcp-server/internal/protocol"
)

// RunStdio serves MCP JSON-RPC over a bidirectional stream, one JSON
// value per request, until the input closes. The invocation host owns
// the framing; nothing but protocol responses is ever written to out.
func RunStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer, log *logrus.Entry) error {
	dec := json.NewDecoder(in)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	log.Info("stdio MCP server started")

	for {
		var req protocol.Request
		if err := dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Info("stdio input closed, shutting down")
				return nil
			}
			log.WithError(err).Error("failed to decode request")
			// A malformed frame leaves the decoder stuck; report and stop.
			if encErr := enc.Encode(WriteError(nil, -32700, "invalid JSON", nil)); encErr != nil {
				return encErr
			}
			return err
		}

		// Notifications carry no ID and expect no response.
		if strings.HasPrefix(req.Method, "notifications/") {
			log.WithField("method", req.Method).Debug("notification received")
			continue
		}

		resp, err := server.Handle(ctx, req)
		if err != nil {
			resp = WriteError(req.ID, -32603, "internal error", err)
		}
		if err := enc.Encode(resp); err != nil {
			log.WithError(err).Error("failed to encode response")
			return err
		}
	}
}
