package main

import (
	"net/http"
)

func (app *application) listFavoritesHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.ListMyFavorites(r.Context(), app.contextGetPrincipal(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) addFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.blogService.AddFavorite(r.Context(), app.contextGetPrincipal(r), blogID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Blog added to favorites"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) removeFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.blogService.RemoveFavorite(r.Context(), app.contextGetPrincipal(r), blogID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"message": "Blog removed from favorites"}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// checkFavoriteHandler answers with a bare JSON boolean.
func (app *application) checkFavoriteHandler(w http.ResponseWriter, r *http.Request) {
	blogID, err := app.readIDParam(r, "blogId")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	ok, err := app.blogService.IsFavorited(r.Context(), app.contextGetPrincipal(r), blogID)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, ok, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
