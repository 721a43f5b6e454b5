package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/service"
	"github.com/go-chi/chi"
)

type LogMealPayload struct {
	Hall  string `json:"hall" validate:"required"`
	Meal  string `json:"meal" validate:"required"`
	Index *int   `json:"index" validate:"required,gte=0"`
	Date  string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type LogMealResponse struct {
	Date   string                `json:"date"`
	Item   domain.MenuItem       `json:"item"`
	Totals domain.NutritionFacts `json:"totals"`
}

// logMealHandler godoc
//
//	@Summary		Log a meal
//	@Description	Log the index-th item served at a hall for a meal. Date defaults to today.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			user_id	path		string			true	"Student ID"
//	@Param			payload	body		LogMealPayload	true	"Menu selection"
//	@Success		201		{object}	LogMealResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/users/{user_id}/meals [post]
func (app *application) logMealHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := app.userFromPath(w, r)
	if !ok {
		return
	}

	var payload LogMealPayload
	if err := readJson(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	date := payload.Date
	if date == "" {
		date = domain.DateKey(app.now())
	}

	item, err := app.mealLog.LogItem(user, date, payload.Hall, payload.Meal, *payload.Index)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSelection) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	resp := LogMealResponse{
		Date:   date,
		Item:   item,
		Totals: user.DailyTotal(date),
	}

	if err := app.jsonResponse(w, http.StatusCreated, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getSummaryHandler godoc
//
//	@Summary		Daily nutrition summary
//	@Description	Totals logged on a date against the user's goals
//	@Tags			users
//	@Produce		json
//	@Param			user_id	path		string	true	"Student ID"
//	@Param			date	query		string	false	"YYYY-MM-DD, defaults to today"
//	@Success		200		{object}	service.DailySummary
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/users/{user_id}/summary [get]
func (app *application) getSummaryHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := app.userFromPath(w, r)
	if !ok {
		return
	}

	date, err := app.dateFromQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.mealLog.Summary(user, date)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getRecommendationHandler godoc
//
//	@Summary		Recommend a menu item
//	@Description	The menu item whose calories are closest to what the user has left for the day
//	@Tags			users
//	@Produce		json
//	@Param			user_id	path		string	true	"Student ID"
//	@Param			date	query		string	false	"YYYY-MM-DD, defaults to today"
//	@Success		200		{object}	service.Recommendation
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Router			/users/{user_id}/recommendation [get]
func (app *application) getRecommendationHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := app.userFromPath(w, r)
	if !ok {
		return
	}

	date, err := app.dateFromQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	rec, found := app.recommender.RecommendFor(user, date)
	if !found {
		app.notFoundError(w, r, ErrNoRecommendation)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, rec); err != nil {
		app.internalServerError(w, r, err)
	}
}

// shareHandler godoc
//
//	@Summary		Share daily summary
//	@Description	Send the day's summary to every friend that still exists
//	@Tags			users
//	@Produce		json
//	@Param			user_id	path		string	true	"Student ID"
//	@Param			date	query		string	false	"YYYY-MM-DD, defaults to today"
//	@Success		200		{array}		domain.SharedSummary
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/users/{user_id}/share [post]
func (app *application) shareHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := app.userFromPath(w, r)
	if !ok {
		return
	}

	date, err := app.dateFromQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	shared, err := app.sharing.ShareDaily(r.Context(), user, date)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, shared); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getInboxHandler godoc
//
//	@Summary		Shared summaries inbox
//	@Description	Summaries friends have shared with the user, oldest first
//	@Tags			users
//	@Produce		json
//	@Param			user_id	path		string	true	"Student ID"
//	@Success		200		{array}		domain.SummarySharedEvent
//	@Failure		404		{object}	map[string]string
//	@Router			/users/{user_id}/inbox [get]
func (app *application) getInboxHandler(w http.ResponseWriter, r *http.Request) {
	user, ok := app.userFromPath(w, r)
	if !ok {
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, app.inbox.ListByUserID(user.ID)); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) userFromPath(w http.ResponseWriter, r *http.Request) (*domain.UserProfile, bool) {
	user, ok := app.registry.GetByID(chi.URLParam(r, "user_id"))
	if !ok {
		app.notFoundError(w, r, ErrUserNotFound)
		return nil, false
	}
	return user, true
}

func (app *application) dateFromQuery(r *http.Request) (string, error) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return domain.DateKey(app.now()), nil
	}

	if _, err := time.Parse(domain.DateLayout, date); err != nil {
		return "", ErrInvalidDate
	}
	return date, nil
}
