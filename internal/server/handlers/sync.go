package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dukapos/duka/internal/models"
	"github.com/dukapos/duka/internal/server/storage"
	"github.com/dukapos/duka/internal/validation"
	"github.com/dukapos/duka/pkg/api"
)

// DefaultPullLimit is used when the client does not ask for a batch size
const DefaultPullLimit = 100

// SyncHandler serves incremental pull and batch push for one user's
// collections.
type SyncHandler struct {
	logger   *slog.Logger
	docs     storage.DocumentStorage
	maxBatch int
}

// NewSyncHandler creates a new sync handler. maxBatch caps the pull batch
// size a client may request.
func NewSyncHandler(logger *slog.Logger, docs storage.DocumentStorage, maxBatch int) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		docs:     docs,
		maxBatch: maxBatch,
	}
}

// Pull handles GET /api/v1/sync/{collection}
// Query parameters: since (RFC3339 timestamp), since_id, limit.
// Returns documents strictly after the cursor, soft-deleted included,
// ordered by (_modified, id) ascending.
func (h *SyncHandler) Pull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(r)
	if !ok {
		writeError(h.logger, w, http.StatusUnauthorized, "not authenticated")
		return
	}

	collection := chi.URLParam(r, "collection")
	if err := validation.ValidateCollection(collection); err != nil {
		writeError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	q := r.URL.Query()
	since := q.Get("since")
	if since != "" {
		if _, err := models.ParseTime(since); err != nil {
			writeError(h.logger, w, http.StatusBadRequest, "invalid since timestamp")
			return
		}
	}

	limit := DefaultPullLimit
	if raw := q.Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(h.logger, w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	if limit > h.maxBatch {
		limit = h.maxBatch
	}

	docs, err := h.docs.Since(ctx, userID, collection, since, q.Get("since_id"), limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to read documents",
			slog.String("collection", collection), slog.Any("error", err))
		writeError(h.logger, w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := api.PullResponse{Documents: make([]api.RawDocument, 0, len(docs))}
	for _, doc := range docs {
		resp.Documents = append(resp.Documents, doc.ToRemote())
	}

	writeJSON(h.logger, w, http.StatusOK, resp)
}

// Push handles POST /api/v1/sync/{collection}
// Merges the batch with last-writer-wins and echoes the stored copies,
// server-assigned _modified included, in request order.
func (h *SyncHandler) Push(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := UserIDFromContext(r)
	if !ok {
		writeError(h.logger, w, http.StatusUnauthorized, "not authenticated")
		return
	}

	collection := chi.URLParam(r, "collection")
	if err := validation.ValidateCollection(collection); err != nil {
		writeError(h.logger, w, http.StatusBadRequest, err.Error())
		return
	}

	var req api.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode push request", slog.Any("error", err))
		writeError(h.logger, w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp := api.PushResponse{Documents: make([]api.RawDocument, 0, len(req.Documents))}

	for _, raw := range req.Documents {
		doc := models.FromRemote(raw)
		if err := validation.ValidateKey(doc.ID()); err != nil {
			writeError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		stored, saved, err := h.docs.Upsert(ctx, userID, collection, doc)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to save document",
				slog.String("collection", collection),
				slog.String("id", doc.ID()),
				slog.Any("error", err))
			writeError(h.logger, w, http.StatusInternalServerError, "internal server error")
			return
		}

		if !saved {
			h.logger.DebugContext(ctx, "push lost merge, returning stored copy",
				slog.String("collection", collection),
				slog.String("id", doc.ID()))
		}

		resp.Documents = append(resp.Documents, stored.ToRemote())
	}

	h.logger.InfoContext(ctx, "push merged",
		slog.String("collection", collection),
		slog.Int("documents", len(req.Documents)))

	writeJSON(h.logger, w, http.StatusOK, resp)
}
