package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solace/internal/models/request_models"
	"solace/internal/services"
	"solace/pkg/utils"
)

type EntryController struct {
	entryService      services.EntryServiceInterface
	reflectionService services.ReflectionServiceInterface
}

func NewEntryController(
	entryService services.EntryServiceInterface,
	reflectionService services.ReflectionServiceInterface,
) *EntryController {
	return &EntryController{
		entryService:      entryService,
		reflectionService: reflectionService,
	}
}

func currentUserID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user identity")
		return uuid.Nil, false
	}
	return id, true
}

// CreateEntry godoc
// @Summary Create a journal entry
// @Description Write a new entry; streaks and badge progress are recomputed before the response returns
// @Tags Entries
// @Accept json
// @Produce json
// @Param request body request_models.CreateEntryRequest true "Entry content, mood and optional tags"
// @Success 200 {object} response_models.EntryResponse
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /entries [post]
func (e *EntryController) CreateEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Content and mood are required")
		return
	}

	entry, err := e.entryService.CreateEntry(c.Request.Context(), userID, req.Content, req.Mood, req.Tags)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Entry created successfully")
}

// ListEntries godoc
// @Summary List journal entries
// @Description Fetch a paginated list of the authenticated user's entries, newest first
// @Tags Entries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.EntryResponse
// @Security BearerAuth
// @Router /entries [get]
func (e *EntryController) ListEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	entries, err := e.entryService.ListEntries(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entries, "Entries fetched successfully")
}

// GetEntry godoc
// @Summary Get one journal entry
// @Tags Entries
// @Produce json
// @Param entryId path string true "Entry ID"
// @Success 200 {object} response_models.EntryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /entries/{entryId} [get]
func (e *EntryController) GetEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID := c.Param("entryId")
	if entryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	entry, err := e.entryService.GetEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, entry, "Entry fetched successfully")
}

// DeleteEntry godoc
// @Summary Delete a journal entry
// @Description Soft-deletes the entry and fully recomputes streaks and badges from the remaining history
// @Tags Entries
// @Produce json
// @Param entryId path string true "Entry ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /entries/{entryId} [delete]
func (e *EntryController) DeleteEntry(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID := c.Param("entryId")
	if entryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}

	if err := e.entryService.DeleteEntry(c.Request.Context(), userID, entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Entry deleted successfully")
}

// GetSimilarEntries godoc
// @Summary Find entries similar to one entry
// @Description Embedding-based lookup of the user's most similar past entries
// @Tags Entries
// @Produce json
// @Param entryId path string true "Entry ID"
// @Param limit query int false "Max results" default(5)
// @Success 200 {array} response_models.SimilarEntryResponse
// @Security BearerAuth
// @Router /entries/{entryId}/similar [get]
func (e *EntryController) GetSimilarEntries(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	entryID := c.Param("entryId")
	if entryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Entry ID is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	similar, err := e.reflectionService.FindSimilar(c.Request.Context(), userID, entryID, limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, similar, "Similar entries fetched successfully")
}
