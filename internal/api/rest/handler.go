package rest

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rives-io/rives-aggregator/internal/api/shared/constants"
	"github.com/rives-io/rives-aggregator/internal/api/shared/dto"
	"github.com/rives-io/rives-aggregator/internal/api/shared/executor"
	"github.com/rives-io/rives-aggregator/internal/asset"
	"github.com/rives-io/rives-aggregator/internal/store"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
type Handler interface {
	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)

	// ListProfiles lists profiles by rives points
	// GET /agg/profile?limit=<limit>&offset=<offset>
	ListProfiles(c *gin.Context)
	// GetProfileSummary retrieves a profile with its statistics
	// GET /agg/profile/:address
	GetProfileSummary(c *gin.Context)
	// ListProfileAchievements lists the awards of a profile, newest first
	// GET /agg/profile/:address/console_achievements
	ListProfileAchievements(c *gin.Context)
	// ListProfileAchievementSummary lists the awards of a profile per slug
	// GET /agg/profile/:address/console_achievements_summary
	ListProfileAchievementSummary(c *gin.Context)

	// GetCartridge retrieves a cartridge
	// GET /agg/cartridge/:id
	GetCartridge(c *gin.Context)
	// GetTape retrieves a tape
	// GET /agg/tape/:id
	GetTape(c *gin.Context)
	// GetRule retrieves a rule
	// GET /agg/rule/:id
	GetRule(c *gin.Context)
	// ListRuleLeaderboard ranks the tapes of a rule by score
	// GET /agg/rule/:id/leaderboard
	ListRuleLeaderboard(c *gin.Context)
	// ListRuleAchievements lists the achievements linked to a rule
	// GET /agg/rule/:id/console_achievements
	ListRuleAchievements(c *gin.Context)

	// ListConsoleAchievements lists the achievement catalogue
	// GET /agg/console_achievement
	ListConsoleAchievements(c *gin.Context)
	// GetConsoleAchievement retrieves an achievement
	// GET /agg/console_achievement/:slug
	GetConsoleAchievement(c *gin.Context)
	// ListAchievementPlayers lists the awards of an achievement
	// GET /agg/console_achievement/:slug/players
	ListAchievementPlayers(c *gin.Context)
	// GetConsoleAchievementImage serves the image bytes of an achievement
	// GET /agg/console_achievement/:slug/image
	GetConsoleAchievementImage(c *gin.Context)

	// ListNotifications lists the notifications of a profile
	// GET /agg/notifications/:address?unread=<bool>
	ListNotifications(c *gin.Context)
	// FollowNotification marks a notification read and redirects to its url
	// GET /agg/notifications/:address/:id
	FollowNotification(c *gin.Context)

	// PUT /agg_rw/profile
	UpsertProfile(c *gin.Context)
	// PUT /agg_rw/cartridge
	UpsertCartridge(c *gin.Context)
	// PUT /agg_rw/collected_cartridge
	UpsertCollectedCartridge(c *gin.Context)
	// PUT /agg_rw/tape
	UpsertTape(c *gin.Context)
	// PUT /agg_rw/collected_tape
	UpsertCollectedTape(c *gin.Context)
	// PUT /agg_rw/rule
	UpsertRule(c *gin.Context)
	// PUT /agg_rw/console_achievement
	UpsertConsoleAchievement(c *gin.Context)
	// AssignConsoleAchievementToRule links an existing achievement to a rule
	// PUT /agg_rw/rule/:id/console_achievement/:slug
	AssignConsoleAchievementToRule(c *gin.Context)
	// SetConsoleAchievementImage replaces an achievement image from a multipart upload
	// PUT /agg_rw/console_achievement/:slug/image
	SetConsoleAchievementImage(c *gin.Context)
	// AwardConsoleAchievement records an award
	// POST /agg_rw/awarded_console_achievement
	AwardConsoleAchievement(c *gin.Context)
	// CreateNotification records a notification
	// PUT /agg_rw/notifications
	CreateNotification(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor      executor.Executor
	maxUploadSize int64
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor, maxUploadSize int64) Handler {
	if maxUploadSize <= 0 {
		maxUploadSize = constants.MAX_UPLOAD_SIZE
	}
	return &handler{
		executor:      exec,
		maxUploadSize: maxUploadSize,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	response := dto.HealthResponse{
		Status:    "healthy",
		Database:  "ok",
		Timestamp: time.Now().UTC(),
	}

	if err := h.executor.Ping(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// =============================================================================
// Profiles
// =============================================================================

func (h *handler) ListProfiles(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}

	response, err := h.executor.ListProfiles(c.Request.Context(), page)
	respond(c, response, err)
}

func (h *handler) GetProfileSummary(c *gin.Context) {
	response, err := h.executor.GetProfileSummary(c.Request.Context(), c.Param("address"))
	respond(c, response, err)
}

func (h *handler) ListProfileAchievements(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}

	response, err := h.executor.ListProfileAchievements(c.Request.Context(), c.Param("address"), page)
	respond(c, response, err)
}

func (h *handler) ListProfileAchievementSummary(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}

	response, err := h.executor.ListProfileAchievementSummary(c.Request.Context(), c.Param("address"), page)
	respond(c, response, err)
}

// =============================================================================
// Cartridges, tapes and rules
// =============================================================================

func (h *handler) GetCartridge(c *gin.Context) {
	response, err := h.executor.GetCartridge(c.Request.Context(), c.Param("id"))
	respond(c, response, err)
}

func (h *handler) GetTape(c *gin.Context) {
	response, err := h.executor.GetTape(c.Request.Context(), c.Param("id"))
	respond(c, response, err)
}

func (h *handler) GetRule(c *gin.Context) {
	response, err := h.executor.GetRule(c.Request.Context(), c.Param("id"))
	respond(c, response, err)
}

func (h *handler) ListRuleLeaderboard(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}

	response, err := h.executor.ListRuleLeaderboard(c.Request.Context(), c.Param("id"), page)
	respond(c, response, err)
}

func (h *handler) ListRuleAchievements(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}

	response, err := h.executor.ListRuleAchievements(c.Request.Context(), c.Param("id"), page)
	respond(c, response, err)
}

// =============================================================================
// Console achievements
// =============================================================================

func (h *handler) ListConsoleAchievements(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}

	response, err := h.executor.ListConsoleAchievements(c.Request.Context(), page)
	respond(c, response, err)
}

func (h *handler) GetConsoleAchievement(c *gin.Context) {
	response, err := h.executor.GetConsoleAchievement(c.Request.Context(), c.Param("slug"))
	respond(c, response, err)
}

func (h *handler) ListAchievementPlayers(c *gin.Context) {
	page, ok := h.parsePage(c)
	if !ok {
		return
	}

	response, err := h.executor.ListAchievementPlayers(c.Request.Context(), c.Param("slug"), page)
	respond(c, response, err)
}

// GetConsoleAchievementImage serves the stored image bytes with their stored
// type, classifying them when no type was recorded
func (h *handler) GetConsoleAchievementImage(c *gin.Context) {
	achievement, err := h.executor.GetConsoleAchievement(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}

	if len(achievement.ImageData) == 0 {
		respondNotFound(c, "Console achievement has no image")
		return
	}

	contentType := asset.Classify(achievement.ImageData)
	if achievement.ImageType != nil && *achievement.ImageType != "" {
		contentType = *achievement.ImageType
	}

	c.Data(http.StatusOK, contentType, achievement.ImageData)
}

// SetConsoleAchievementImage reads the multipart "file" field and stores it as
// the achievement image
func (h *handler) SetConsoleAchievementImage(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadSize)

	fileHeader, err := c.FormFile(constants.IMAGE_FORM_FIELD)
	if err != nil {
		respondBadRequest(c, "Image file is required", err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondBadRequest(c, "Failed to open uploaded image", err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadSize+1))
	if err != nil {
		respondBadRequest(c, "Failed to read uploaded image", err.Error())
		return
	}
	if int64(len(data)) > h.maxUploadSize {
		respondValidationError(c, fmt.Sprintf("image exceeds %d bytes", h.maxUploadSize))
		return
	}
	if len(data) == 0 {
		respondValidationError(c, "image is empty")
		return
	}
	if !asset.IsImage(data) {
		respondValidationError(c, "uploaded file is not an image")
		return
	}

	response, err := h.executor.SetConsoleAchievementImage(c.Request.Context(), c.Param("slug"), data)
	respond(c, response, err)
}

// =============================================================================
// Notifications
// =============================================================================

func (h *handler) ListNotifications(c *gin.Context) {
	params, err := ParseListNotificationsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListNotifications(c.Request.Context(), c.Param("address"), params.Unread, params.PageRequest())
	respond(c, response, err)
}

// FollowNotification marks the notification read and redirects to its url.
// A notification without a url is returned as is.
func (h *handler) FollowNotification(c *gin.Context) {
	id, err := parseNotificationID(c)
	if err != nil {
		respondBadRequest(c, "Invalid notification id", err.Error())
		return
	}

	notification, err := h.executor.FollowNotification(c.Request.Context(), c.Param("address"), id)
	if err != nil {
		respondError(c, err)
		return
	}

	if notification.URL == nil || *notification.URL == "" {
		c.JSON(http.StatusOK, notification)
		return
	}

	c.Redirect(http.StatusTemporaryRedirect, *notification.URL)
}

// =============================================================================
// Writes
// =============================================================================

func (h *handler) UpsertProfile(c *gin.Context) {
	var input store.UpsertProfileInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.UpsertProfile(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) UpsertCartridge(c *gin.Context) {
	var input store.UpsertCartridgeInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.UpsertCartridge(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) UpsertCollectedCartridge(c *gin.Context) {
	var input store.UpsertCollectedCartridgeInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.UpsertCollectedCartridge(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) UpsertTape(c *gin.Context) {
	var input store.UpsertTapeInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.UpsertTape(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) UpsertCollectedTape(c *gin.Context) {
	var input store.UpsertCollectedTapeInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.UpsertCollectedTape(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) UpsertRule(c *gin.Context) {
	var input store.UpsertRuleInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.UpsertRule(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) UpsertConsoleAchievement(c *gin.Context) {
	var input store.UpsertConsoleAchievementInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.UpsertConsoleAchievement(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) AssignConsoleAchievementToRule(c *gin.Context) {
	response, err := h.executor.AssignConsoleAchievementToRule(c.Request.Context(), c.Param("id"), c.Param("slug"))
	respond(c, response, err)
}

func (h *handler) AwardConsoleAchievement(c *gin.Context) {
	var input store.AwardConsoleAchievementInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.AwardConsoleAchievement(c.Request.Context(), input)
	respond(c, response, err)
}

func (h *handler) CreateNotification(c *gin.Context) {
	var input store.CreateNotificationInput
	if !bindBody(c, &input) {
		return
	}

	response, err := h.executor.CreateNotification(c.Request.Context(), input)
	respond(c, response, err)
}

// parsePage binds the pagination parameters, responding with a validation
// error when they are malformed
func (h *handler) parsePage(c *gin.Context) (store.PageRequest, bool) {
	params, err := ParsePageQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return store.PageRequest{}, false
	}
	return params.PageRequest(), true
}

// bindBody decodes a JSON request body
func bindBody(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return false
	}
	return true
}

// respond writes response as JSON, or the executor error
func respond[T any](c *gin.Context, response *T, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response)
}
