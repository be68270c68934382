package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rpupo63/blogly-backend/database"
	"github.com/rpupo63/blogly-backend/errs"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		userHandler: newUserHandler(database.UserRepo()),
		postHandler: newPostHandler(database.PostRepo(), database.TagRepo()),
		tagHandler:  newTagHandler(database.TagRepo(), database.PostRepo()),
	}
}

// parseIDParam reads an integer id from a chi URL parameter
func parseIDParam(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}
