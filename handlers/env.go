// Package handlers contains the Gin handlers for the API surface. All
// collaborators come in through Env so tests can run against the memory
// store, a fake clock, and no network.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"

	"go-suraksha/assistant"
	"go-suraksha/datasets"
	"go-suraksha/db"
	"go-suraksha/geocode"
)

// Env carries the process-lifetime dependencies into every handler.
type Env struct {
	Store     db.Store
	Loader    *datasets.Loader
	Assistant *assistant.Assistant
	Geocoder  geocode.Geocoder
	Clock     clockwork.Clock
}

// loadObject fetches an object dataset or answers 500 with a generic
// message. The root cause stays in the server log via the wrapped error.
func (e *Env) loadObject(c *gin.Context, name, label string) (map[string]any, bool) {
	data, err := e.Loader.LoadObject(name)
	if err != nil {
		datasetError(c, label, err)
		return nil, false
	}
	return data, true
}

func (e *Env) loadList(c *gin.Context, name, label string) ([]map[string]any, bool) {
	data, err := e.Loader.LoadList(name)
	if err != nil {
		datasetError(c, label, err)
		return nil, false
	}
	return data, true
}

func datasetError(c *gin.Context, label string, err error) {
	logError(err)
	c.JSON(http.StatusInternalServerError, gin.H{"detail": "Unable to load " + label + " data"})
}

func notFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"detail": message})
}
