package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a post
// @Tags Social
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param post body CreatePostRequest true "Post"
// @Success 201 {object} models.SocialPost
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /social/posts [post]
func (h *Handler) createPost(c *gin.Context) {
	var input CreatePostRequest
	log := h.log(c, "createPost")
	if !h.bindJSON(c, log, &input) {
		return
	}

	post, err := h.services.Social.CreatePost(c.Request.Context(), currentUser(c), input.Content, input.GroupID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// @Summary Community feed
// @Tags Social
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Param group_id query string false "Only posts of this group"
// @Success 200 {array} models.SocialPost
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /social/posts [get]
func (h *Handler) feed(c *gin.Context) {
	log := h.log(c, "feed")

	var groupID *uuid.UUID
	if raw := c.Query("group_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			badRequest(c, log, err, "invalid group ID")
			return
		}
		groupID = &id
	}

	posts, err := h.services.Social.Feed(c.Request.Context(), queryInt(c, "page", 1), queryInt(c, "pageSize", 20), groupID)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

// @Summary Create a group
// @Description Pro plan and above.
// @Tags Social
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param group body CreateGroupRequest true "Group"
// @Success 201 {object} models.Group
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Upgrade required"
// @Router /social/groups [post]
func (h *Handler) createGroup(c *gin.Context) {
	var input CreateGroupRequest
	log := h.log(c, "createGroup")
	if !h.bindJSON(c, log, &input) {
		return
	}

	group, err := h.services.Social.CreateGroup(c.Request.Context(), currentUser(c), input.Name, input.Description)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// @Summary List groups
// @Tags Social
// @Produce json
// @Security ApiKeyAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} models.Group
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /social/groups [get]
func (h *Handler) listGroups(c *gin.Context) {
	log := h.log(c, "listGroups")
	groups, err := h.services.Social.ListGroups(c.Request.Context(), queryInt(c, "page", 1), queryInt(c, "pageSize", 20))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// @Summary Schedule a post
// @Description Premium plan only. publish_at must be in the future.
// @Tags Social
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Param post body SchedulePostRequest true "Scheduled post"
// @Success 201 {object} models.ScheduledPost
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 402 {object} ErrorResponse "Upgrade required"
// @Router /social/scheduled [post]
func (h *Handler) schedulePost(c *gin.Context) {
	var input SchedulePostRequest
	log := h.log(c, "schedulePost")
	if !h.bindJSON(c, log, &input) {
		return
	}

	post, err := h.services.Social.SchedulePost(c.Request.Context(), currentUser(c), input.Content, input.GroupID, input.PublishAt)
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// @Summary Scheduled posts of the driver
// @Tags Social
// @Produce json
// @Security ApiKeyAuth
// @Param X-User-ID header string true "Driver ID"
// @Success 200 {array} models.ScheduledPost
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /social/scheduled [get]
func (h *Handler) listScheduled(c *gin.Context) {
	log := h.log(c, "listScheduled")
	posts, err := h.services.Social.ListScheduled(c.Request.Context(), currentUser(c))
	if err != nil {
		respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
