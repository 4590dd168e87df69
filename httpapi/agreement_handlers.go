package httpapi

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mithaq/agreement"
)

func (s *Server) startAgreement(c *gin.Context) {
	var req struct {
		Kind string `json:"kind"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Kind == "" {
		respondError(c, http.StatusBadRequest, "bad_request", "kind is required", nil)
		return
	}

	a, first, err := s.drafts.Start(c.Request.Context(), ActorID(c), req.Kind)
	if err != nil {
		domainError(c, err)
		return
	}

	resp := gin.H{"agreement": viewAgreement(a)}
	if first != nil {
		resp["next_field"] = viewField(*first, s.labels)
	}
	c.JSON(http.StatusCreated, resp)
}

func (s *Server) listAgreements(c *gin.Context) {
	filters := agreement.ListFilters{
		UserID: ActorID(c),
		Status: agreement.Status(c.Query("status")),
		Kind:   c.Query("kind"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filters.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filters.PageSize = size
	}

	records, total, err := s.agreements.List(c.Request.Context(), filters)
	if err != nil {
		domainError(c, err)
		return
	}

	views := make([]agreementView, 0, len(records))
	for _, a := range records {
		views = append(views, viewAgreement(a))
	}
	c.JSON(http.StatusOK, gin.H{"agreements": views, "total": total})
}

func (s *Server) getAgreement(c *gin.Context) {
	a, err := s.agreements.Get(c.Request.Context(), ActorID(c), c.Param("id"))
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewAgreement(a))
}

func (s *Server) agreementEvents(c *gin.Context) {
	// Visibility check first; Events itself has no actor filter.
	if _, err := s.agreements.Get(c.Request.Context(), ActorID(c), c.Param("id")); err != nil {
		domainError(c, err)
		return
	}

	events, err := s.agreements.Events(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": viewAgreementEvents(events)})
}

func (s *Server) deleteAgreement(c *gin.Context) {
	if err := s.lifecycle.Remove(c.Request.Context(), ActorID(c), c.Param("id")); err != nil {
		domainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) submitAnswer(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	result, err := s.drafts.Submit(c.Request.Context(), ActorID(c), c.Param("id"), req.Value)
	if err != nil {
		domainError(c, err)
		return
	}
	s.stepResponse(c, result)
}

func (s *Server) skipField(c *gin.Context) {
	result, err := s.drafts.Skip(c.Request.Context(), ActorID(c), c.Param("id"))
	if err != nil {
		domainError(c, err)
		return
	}
	s.stepResponse(c, result)
}

// stepResponse renders one wizard step outcome. A refused answer is a 422
// carrying the rejection reason so the client can re-prompt.
func (s *Server) stepResponse(c *gin.Context, result agreement.StepResult) {
	if result.Rejection != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"rejection": gin.H{
				"field":   result.Rejection.Field,
				"reason":  result.Rejection.Reason,
				"message": s.labels.Label(result.Rejection.MessageKey),
			},
		})
		return
	}

	resp := gin.H{"complete": result.Complete}
	if result.NextField != nil {
		resp["next_field"] = viewField(*result.NextField, s.labels)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) sendToParty(c *gin.Context) {
	result, err := s.lifecycle.SendToParty(c.Request.Context(), ActorID(c), c.Param("id"))
	if err != nil {
		domainError(c, err)
		return
	}

	resp := gin.H{"delivered": result.Delivered}
	if result.InviteCode != "" {
		resp["invite_code"] = result.InviteCode
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) requestChanges(c *gin.Context) {
	var req struct {
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "invalid request body", nil)
		return
	}

	if err := s.lifecycle.PartyRequestChanges(c.Request.Context(), ActorID(c), c.Param("id"), req.Comment); err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// lifecycleAction adapts the one-shot transition methods that share the
// (actor, id) -> error signature.
func (s *Server) lifecycleAction(op func(ctx context.Context, actorID, id string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := op(c.Request.Context(), ActorID(c), c.Param("id")); err != nil {
			domainError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true})
	}
}
