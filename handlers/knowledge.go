package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-suraksha/datasets"
	"go-suraksha/filter"
)

// GetKnowledgeCards lists preparedness cards, optionally by category.
func (e *Env) GetKnowledgeCards(c *gin.Context) {
	data, ok := e.loadList(c, datasets.KnowledgeCards, "knowledge cards")
	if !ok {
		return
	}
	data = filter.ByField(data, "category", c.Query("category"))
	c.JSON(http.StatusOK, data)
}

func (e *Env) GetKnowledgeCardByID(c *gin.Context) {
	data, ok := e.loadList(c, datasets.KnowledgeCards, "knowledge cards")
	if !ok {
		return
	}
	card, found := filter.FindByID(data, c.Param("id"))
	if !found {
		notFound(c, "Knowledge card not found")
		return
	}
	c.JSON(http.StatusOK, card)
}
