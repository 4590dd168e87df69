package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mithaq/catalog"
)

func (s *Server) listKinds(c *gin.Context) {
	category := c.Query("category")

	kinds := []kindView{}
	for _, k := range catalog.All() {
		if category != "" && k.Category != category {
			continue
		}
		kinds = append(kinds, viewKind(k, s.labels))
	}
	c.JSON(http.StatusOK, gin.H{"kinds": kinds, "categories": catalog.Categories()})
}

func (s *Server) getKind(c *gin.Context) {
	k, err := catalog.KindOf(c.Param("kind"))
	if err != nil {
		domainError(c, err)
		return
	}

	fields := make([]fieldView, 0, len(k.Fields))
	for _, def := range k.Fields {
		fields = append(fields, viewField(def, s.labels))
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       k.ID,
		"title":    s.labels.Label(k.TitleKey),
		"category": k.Category,
		"fields":   fields,
	})
}
