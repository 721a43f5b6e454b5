package main

import (
	"net/http"
	"time"
)

type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version"`
	Timestamp time.Time         `json:"timestamp"`
	MenuItems int               `json:"menu_items"`
	Services  map[string]string `json:"services"`
}

// healthcheckHandler godoc
//
//	@Summary		Healthcheck
//	@Description	Healthcheck endpoint
//	@Tags			ops
//	@Produce		json
//	@Success		200	{object}	HealthResponse
//	@Failure		503	{object}	HealthResponse
//	@Router			/health [get]
func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	// user seed store is optional
	dbStatus := "disabled"
	if app.storage != nil {
		dbStatus = "ok"
		if err := app.storage.Ping(r.Context()); err != nil {
			dbStatus = "error"
		}
	}

	// broker: assume ok if app is running
	queueStatus := "disabled"
	if app.broker != nil {
		queueStatus = "ok"
	}

	response := HealthResponse{
		Status:    "healthy",
		Version:   version,
		Timestamp: app.now(),
		MenuItems: app.catalog.Len(),
		Services: map[string]string{
			"database": dbStatus,
			"queue":    queueStatus,
		},
	}

	if dbStatus == "error" {
		response.Status = "unhealthy"
		if err := writeJson(w, http.StatusServiceUnavailable, response); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	if err := writeJson(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
