package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/api/healthcheck", app.healthCheckHandler)

	router.HandlerFunc(http.MethodPost, "/api/auth/register", app.registerUserHandler)
	router.HandlerFunc(http.MethodPost, "/api/auth/login", app.loginUserHandler)

	// GET /api/blogs/my and /api/blogs/user/:userId are dispatched from the :id routes
	router.HandlerFunc(http.MethodGet, "/api/blogs", app.listBlogsHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/:id", app.getBlogHandler)
	router.HandlerFunc(http.MethodGet, "/api/blogs/:id/:userId", app.listUserBlogsHandler)
	router.HandlerFunc(http.MethodPost, "/api/blogs", app.requireAuthUser(app.createBlogHandler))
	router.HandlerFunc(http.MethodPut, "/api/blogs/:id", app.requireAuthUser(app.updateBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/blogs/:id", app.requireAuthUser(app.deleteBlogHandler))

	router.HandlerFunc(http.MethodGet, "/api/favorites", app.requireAuthUser(app.listFavoritesHandler))
	router.HandlerFunc(http.MethodGet, "/api/favorites/check/:blogId", app.checkFavoriteHandler)
	router.HandlerFunc(http.MethodPost, "/api/favorites/:blogId", app.requireAuthUser(app.addFavoriteHandler))
	router.HandlerFunc(http.MethodDelete, "/api/favorites/:blogId", app.requireAuthUser(app.removeFavoriteHandler))

	router.HandlerFunc(http.MethodGet, "/api/admin/users", app.requireAdmin(app.adminListUsersHandler))
	router.HandlerFunc(http.MethodGet, "/api/admin/blogs", app.requireAdmin(app.adminListBlogsHandler))
	router.HandlerFunc(http.MethodGet, "/api/admin/stats", app.requireAdmin(app.adminStatsHandler))
	router.HandlerFunc(http.MethodDelete, "/api/admin/blogs/:id", app.requireAdmin(app.adminDeleteBlogHandler))
	router.HandlerFunc(http.MethodDelete, "/api/admin/users/:id", app.requireAdmin(app.adminDeleteUserHandler))

	return app.recoverPanic(app.logRequest(app.enableCORS(app.authenticate(router))))
}
