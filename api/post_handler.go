package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rpupo63/blogly-backend/database"
	"github.com/rpupo63/blogly-backend/errs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
	tagRepo   *database.TagRepo
}

func newPostHandler(postRepo *database.PostRepo, tagRepo *database.TagRepo) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
		tagRepo:   tagRepo,
	}
}

// getRecentPosts serves the home feed: newest posts first, truncated to
// ?limit= (default 5).
func (h postHandler) getRecentPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError("invalid limit"))
				return
			}
			limit = parsed
		}

		posts, err := h.postRepo.FindRecent(limit)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"posts": posts,
			"total": len(posts),
		})
	}
}

// getPost returns one post with its owner and tags
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post, err := h.postRepo.FindByID(postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createPost creates a post under the user in the URL, with an optional
// initial tag set
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := parseIDParam(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		post, err := h.postRepo.Create(req.Title, req.Content, userID, req.TagIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, post)
	}
}

// updatePost overwrites title and content; the edit bumps the post's
// created_at timestamp
func (h postHandler) updatePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req PostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode post request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		post, err := h.postRepo.Update(postID, req.Title, req.Content)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// deletePost removes a post and reports the owner's id so the client can
// return to the owner's page
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		ownerID, err := h.postRepo.Delete(postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"status": "success",
			"userId": ownerID,
		})
	}
}

// getPostTags lists the tags associated with a post
func (h postHandler) getPostTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		tags, err := h.tagRepo.FindByPost(postID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"tags":  tags,
			"total": len(tags),
		})
	}
}

// setPostTags reconciles a post's tag associations against the submitted
// target set
func (h postHandler) setPostTags() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID, err := parseIDParam(r, "postID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req SetTagsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode set-tags request body")
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		post, err := h.postRepo.SetTags(postID, req.TagIDs)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, post)
	}
}
