package main

import (
	"errors"
	"net/http"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNoRecommendation = errors.New("no recommendation available")
	ErrHallNotFound     = errors.New("dining hall not found")
	ErrMealNotFound     = errors.New("meal not found")
)

func (app *application) internalServerError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Errorw("internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusInternalServerError, "the server encountered a problem")
}

func (app *application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("bad request", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusBadRequest, err.Error())
}

func (app *application) notFoundError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.Warnw("not found error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	writeJsonError(w, http.StatusNotFound, err.Error())
}
