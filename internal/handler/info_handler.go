package handler

import (
	"github.com/gin-gonic/gin"
)

// InfoHandler serves the API root.
type InfoHandler struct {
	name    string
	version string
}

// NewInfoHandler creates a new InfoHandler.
func NewInfoHandler(name, version string) *InfoHandler {
	return &InfoHandler{name: name, version: version}
}

// Root handles GET /
// @Summary API information
// @Tags info
// @Produce json
// @Success 200 {object} Response{data=InfoResponse}
// @Router / [get]
func (h *InfoHandler) Root(c *gin.Context) {
	RespondOK(c, InfoResponse{
		Name:    h.name,
		Version: h.version,
		Docs:    "/swagger/index.html",
	})
}
