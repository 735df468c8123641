package main

import "net/http"

func (app *application) adminListUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.adminService.ListUsers(r.Context(), app.contextGetPrincipal(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, users, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) adminListBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.adminService.ListAllBlogs(r.Context(), app.contextGetPrincipal(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blogs, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) adminDeleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.adminService.DeleteAnyBlog(r.Context(), app.contextGetPrincipal(r), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) adminDeleteUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.adminService.DeleteAnyUser(r.Context(), app.contextGetPrincipal(r), id)
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (app *application) adminStatsHandler(w http.ResponseWriter, r *http.Request) {
	stats, err := app.adminService.GetStats(r.Context(), app.contextGetPrincipal(r))
	if err != nil {
		app.serviceErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, stats, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
