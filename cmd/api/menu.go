package main

import (
	"net/http"
	"sort"

	"github.com/IShachouI/Claremont-Student-Nutrition-Tracker/internal/domain"
	"github.com/go-chi/chi"
)

// listHallsHandler godoc
//
//	@Summary		List dining halls
//	@Description	Dining hall names, sorted
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}	string
//	@Router			/halls [get]
func (app *application) listHallsHandler(w http.ResponseWriter, r *http.Request) {
	halls := app.catalog.DiningHalls()
	sort.Strings(halls)

	if err := app.jsonResponse(w, http.StatusOK, halls); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listMealsHandler godoc
//
//	@Summary		List meals
//	@Description	Meals served at a dining hall, sorted
//	@Tags			menu
//	@Produce		json
//	@Param			hall	path		string	true	"Dining hall"
//	@Success		200		{array}		string
//	@Failure		404		{object}	map[string]string
//	@Router			/halls/{hall}/meals [get]
func (app *application) listMealsHandler(w http.ResponseWriter, r *http.Request) {
	hall := chi.URLParam(r, "hall")

	meals := app.catalog.Meals(hall)
	if len(meals) == 0 {
		app.notFoundError(w, r, ErrHallNotFound)
		return
	}
	sort.Strings(meals)

	if err := app.jsonResponse(w, http.StatusOK, meals); err != nil {
		app.internalServerError(w, r, err)
	}
}

type menuItemResponse struct {
	Index int `json:"index"`
	domain.MenuItem
}

// listItemsHandler godoc
//
//	@Summary		List menu items
//	@Description	Items served at a dining hall for a meal, in menu order. Index is what POST /users/{user_id}/meals expects.
//	@Tags			menu
//	@Produce		json
//	@Param			hall	path		string	true	"Dining hall"
//	@Param			meal	path		string	true	"Meal"
//	@Success		200		{array}		menuItemResponse
//	@Failure		404		{object}	map[string]string
//	@Router			/halls/{hall}/meals/{meal}/items [get]
func (app *application) listItemsHandler(w http.ResponseWriter, r *http.Request) {
	hall := chi.URLParam(r, "hall")
	meal := chi.URLParam(r, "meal")

	items := app.catalog.Items(hall, meal)
	if len(items) == 0 {
		app.notFoundError(w, r, ErrMealNotFound)
		return
	}

	resp := make([]menuItemResponse, 0, len(items))
	for i, item := range items {
		resp = append(resp, menuItemResponse{Index: i, MenuItem: item})
	}

	if err := app.jsonResponse(w, http.StatusOK, resp); err != nil {
		app.internalServerError(w, r, err)
	}
}
