package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"emcee.events/emcee/internal/http/dto"
	"emcee.events/emcee/internal/service"
	"github.com/gin-gonic/gin"
)

// SearchHandler handles workspace content search.
type SearchHandler struct {
	searchService service.SearchService
}

func NewSearchHandler(searchService service.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// Search queries the workspace's content index. An empty query returns an
// empty result set.
func (h *SearchHandler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	query := strings.TrimSpace(c.Query("q"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	hits, err := h.searchService.Search(ctx, workspaceID, query, limit)
	if err != nil {
		slog.ErrorContext(ctx, "search failed", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{Query: query, Results: dto.ToSearchHits(hits)})
}

// Reindex rebuilds the workspace's search index from the stores.
func (h *SearchHandler) Reindex(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := parseIDParam(c, "workspaceID")
	if !ok {
		return
	}

	indexed, err := h.searchService.Reindex(ctx, workspaceID)
	if err != nil {
		slog.ErrorContext(ctx, "reindex failed", "error", err, "workspace_id", workspaceID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reindex failed"})
		return
	}

	slog.InfoContext(ctx, "workspace reindexed", "workspace_id", workspaceID, "documents", indexed)

	c.JSON(http.StatusOK, dto.ReindexResponse{Indexed: indexed})
}
