package family

import (
	"net/http"
	"time"

	familydomain "family-site-go/internal/domain/family"
	commonhandler "family-site-go/internal/transport/httpserver/handler/common"
	"family-site-go/pkg/logger"
	"family-site-go/pkg/optional"
)

type Handlers struct {
	Family *familydomain.Service
	log    logger.Logger
}

func New(family *familydomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Family: family,
		log:    log,
	}
}

type itemResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Content     *string   `json:"content"`
	MediaType   string    `json:"mediaType"`
	MediaURL    *string   `json:"mediaUrl"`
	IsPublished bool      `json:"isPublished"`
	CreatedAt   time.Time `json:"createdAt"`
}

type publishRequest struct {
	Title     string  `json:"title"`
	Summary   string  `json:"summary"`
	Content   *string `json:"content"`
	MediaType *string `json:"mediaType"`
	MediaURL  *string `json:"mediaUrl"`
}

type publishResponse struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

type updateRequest struct {
	Title       optional.Value[string]                  `json:"title"`
	Summary     optional.Value[string]                  `json:"summary"`
	Content     optional.Value[*string]                 `json:"content"`
	MediaType   optional.Value[string]                  `json:"mediaType"`
	MediaURL    optional.Value[*string]                 `json:"mediaUrl"`
	IsPublished optional.Value[commonhandler.LooseBool] `json:"isPublished"`
}

type updateResponse struct {
	Message string       `json:"message"`
	Item    itemResponse `json:"item"`
}

func (h *Handlers) ListPublished(w http.ResponseWriter, r *http.Request) {
	items, err := h.Family.ListPublished(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "family.list", err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toItemResponses(items))
}

func (h *Handlers) ListAll(w http.ResponseWriter, r *http.Request) {
	items, err := h.Family.ListAll(r.Context())
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "admin.family.list", err)
		return
	}
	commonhandler.WriteJSON(w, http.StatusOK, toItemResponses(items))
}

func (h *Handlers) Publish(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := commonhandler.DecodeJSON(w, r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	item, err := h.Family.Publish(r.Context(), familydomain.PublishInput{
		Title:     req.Title,
		Summary:   req.Summary,
		Content:   derefString(req.Content),
		MediaType: derefString(req.MediaType),
		MediaURL:  derefString(req.MediaURL),
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "admin.family.publish", err)
		return
	}

	h.log.Info("admin.family.publish: entry published", "item_id", item.ID, "media_type", item.MediaType)
	commonhandler.WriteJSON(w, http.StatusCreated, publishResponse{ID: item.ID, Message: "Entry published"})
}

func (h *Handlers) Update(w http.ResponseWriter, r *http.Request) {
	id, err := commonhandler.ParseIDParam(r, "id")
	if err != nil {
		commonhandler.WriteError(w, http.StatusBadRequest, "invalid_request", "Invalid entry id")
		return
	}

	var req updateRequest
	if err := commonhandler.DecodeJSON(w, r, &req); err != nil {
		commonhandler.WriteInvalidJSON(w, err)
		return
	}

	item, err := h.Family.Update(r.Context(), familydomain.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Summary:     req.Summary,
		Content:     optional.Map(req.Content, derefString),
		MediaType:   req.MediaType,
		MediaURL:    optional.Map(req.MediaURL, derefString),
		IsPublished: optional.Map(req.IsPublished, func(v commonhandler.LooseBool) bool { return bool(v) }),
	})
	if err != nil {
		commonhandler.WriteServiceError(w, h.log, "admin.family.update", err, "item_id", id)
		return
	}

	h.log.Info("admin.family.update: entry updated", "item_id", id, "published", item.IsPublished)
	commonhandler.WriteJSON(w, http.StatusOK, updateResponse{Message: "Entry updated", Item: toItemResponse(*item)})
}

func toItemResponse(item familydomain.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		Title:       item.Title,
		Summary:     item.Summary,
		Content:     item.Content,
		MediaType:   string(item.MediaType),
		MediaURL:    item.MediaURL,
		IsPublished: item.IsPublished,
		CreatedAt:   item.CreatedAt,
	}
}

func toItemResponses(items []familydomain.Item) []itemResponse {
	result := make([]itemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, toItemResponse(item))
	}
	return result
}

func derefString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
