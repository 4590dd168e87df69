package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) resolveInvite(c *gin.Context) {
	a, err := s.invites.Resolve(c.Request.Context(), c.Param("code"))
	if err != nil {
		domainError(c, err)
		return
	}

	// A preview only: the caller is not a party yet, so expose the shape of
	// the deal without the answers.
	c.JSON(http.StatusOK, gin.H{
		"id":     a.ID,
		"kind":   a.Kind,
		"status": a.Status,
	})
}

func (s *Server) redeemInvite(c *gin.Context) {
	a, err := s.invites.Redeem(c.Request.Context(), ActorID(c), c.Param("code"))
	if err != nil {
		domainError(c, err)
		return
	}
	c.JSON(http.StatusOK, viewAgreement(a))
}
