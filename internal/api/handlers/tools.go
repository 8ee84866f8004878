package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"weather-agent-service/internal/api/dto"
	"weather-agent-service/internal/tools"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/go-chi/chi/v5"
)

const maxToolBody = 1 << 20

// ToolHandler lets agent frameworks discover and invoke the weather functions over HTTP.
type ToolHandler struct {
	Registry *tools.Registry
}

func (h *ToolHandler) List(w http.ResponseWriter, r *http.Request) {
	list := h.Registry.Tools()
	res := dto.ListToolsResponse{Tools: make([]dto.FunctionDeclaration, 0, len(list))}
	for _, t := range list {
		res.Tools = append(res.Tools, dto.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  t.Parameters,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// Call invokes one tool with the JSON object in the request body.
// Lookup failures are reported in the 200 envelope, as the agent expects.
func (h *ToolHandler) Call(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxToolBody))
	defer r.Body.Close()
	if err != nil {
		writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large")
		return
	}

	resp, err := h.Registry.Call(r.Context(), name, json.RawMessage(body))
	switch {
	case errors.Is(err, tools.ErrUnknownTool):
		writeError(w, r, http.StatusNotFound, "unknown tool")
		return
	case errors.Is(err, tools.ErrInvalidArguments):
		writeError(w, r, http.StatusBadRequest, "arguments must be a single JSON object matching the tool parameters")
		return
	case err != nil:
		logger.KV(xlog.ERROR, "op", "tools.Call", "tool", name, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if !resp.OK() {
		logger.KV(xlog.INFO, "op", "tools.Call", "tool", name, "status", resp.Status, "kind", resp.ErrorKind)
	}
	writeJSON(w, r, http.StatusOK, resp)
}
