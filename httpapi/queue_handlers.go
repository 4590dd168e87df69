package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mithaq/dispute"
	"mithaq/ticket"
)

func (s *Server) listTickets(c *gin.Context) {
	filters := ticket.ListFilters{
		Status:     ticket.Status(c.Query("status")),
		EntityKind: c.Query("entity_kind"),
	}
	if page, err := strconv.Atoi(c.Query("page")); err == nil {
		filters.Page = page
	}
	if size, err := strconv.Atoi(c.Query("page_size")); err == nil {
		filters.PageSize = size
	}

	records, total, err := s.tickets.List(c.Request.Context(), filters)
	if err != nil {
		domainError(c, err)
		return
	}

	views := make([]ticketView, 0, len(records))
	for _, t := range records {
		views = append(views, viewTicket(t))
	}
	c.JSON(http.StatusOK, gin.H{"tickets": views, "total": total})
}

func (s *Server) ticketEvents(c *gin.Context) {
	events, err := s.tickets.Events(c.Request.Context(), c.Param("id"))
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": viewTicketEvents(events)})
}

func (s *Server) syncTickets(c *gin.Context) {
	var req struct {
		EntityKind string `json:"entity_kind"`
		EntityID   string `json:"entity_id"`
		Status     string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.EntityKind == "" || req.EntityID == "" || req.Status == "" {
		respondError(c, http.StatusBadRequest, "bad_request", "entity_kind, entity_id and status are required", nil)
		return
	}

	if err := s.syncer.Sync(c.Request.Context(), req.EntityKind, req.EntityID, req.Status); err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (s *Server) listCases(c *gin.Context) {
	records, err := s.cases.List(c.Request.Context(), ActorID(c), c.Query("agreement_id"))
	if err != nil {
		domainError(c, err)
		return
	}

	views := make([]caseView, 0, len(records))
	for _, rec := range records {
		views = append(views, viewCase(rec))
	}
	c.JSON(http.StatusOK, gin.H{"cases": views})
}

func (s *Server) getCase(c *gin.Context) {
	rec, err := s.cases.Get(c.Request.Context(), ActorID(c), c.Param("id"))
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewCase(rec))
}

func (s *Server) setCaseStatus(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		respondError(c, http.StatusBadRequest, "bad_request", "status is required", nil)
		return
	}

	rec, err := s.cases.SetStatus(c.Request.Context(), ActorID(c), c.Param("id"), dispute.Status(req.Status))
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewCase(rec))
}
