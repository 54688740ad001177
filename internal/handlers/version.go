package handlers

import (
	"net/http"

	"github.com/xingmcp/toolservers/internal/common"
)

// VersionHandler handles version information requests.
type VersionHandler struct {
	logger *common.Logger
	name   string
}

// NewVersionHandler creates a new version handler for the named server.
func NewVersionHandler(logger *common.Logger, name string) *VersionHandler {
	return &VersionHandler{logger: logger, name: name}
}

// ServeHTTP handles GET /api/version.
func (h *VersionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{
		"name":       h.name,
		"version":    common.GetVersion(),
		"build":      common.GetBuild(),
		"git_commit": common.GetGitCommit(),
	})
}
