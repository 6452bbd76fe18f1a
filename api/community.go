package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository"
)

type CommunityHandler struct {
	communityRepo repository.CommunityRepo
}

func NewCommunityHandler(cr repository.CommunityRepo) *CommunityHandler {
	return &CommunityHandler{communityRepo: cr}
}

func (h *CommunityHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.communityRepo.ListPosts(r.Context(), 20)
	if err != nil {
		http.Error(w, "failed to list posts", http.StatusInternalServerError)
		return
	}
	if posts == nil {
		posts = []models.PostWithAuthor{}
	}

	writeJSON(w, posts, http.StatusOK)
}

type createPostRequest struct {
	Content string `json:"content"`
}

type createPostResponse struct {
	ID string `json:"id"`
}

func (h *CommunityHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		http.Error(w, "content is required", http.StatusBadRequest)
		return
	}

	p := &models.CommunityPost{
		AuthorID: profileIDFromContext(r.Context()),
		Content:  req.Content,
	}

	id, err := h.communityRepo.CreatePost(r.Context(), p)
	if err != nil {
		http.Error(w, "failed to store post", http.StatusInternalServerError)
		return
	}

	writeJSON(w, createPostResponse{ID: id}, http.StatusCreated)
}

type toggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

// ToggleLike removes the caller's like when one exists, otherwise creates
// it. The unique constraint on (post, user) keeps concurrent toggles from
// producing duplicate rows.
func (h *CommunityHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]
	ctx := r.Context()
	userID := profileIDFromContext(ctx)

	existing, err := h.communityRepo.GetLike(ctx, postID, userID)
	if err != nil {
		http.Error(w, "failed to load like", http.StatusInternalServerError)
		return
	}

	liked := false
	if existing != nil {
		if err := h.communityRepo.DeleteLike(ctx, existing.ID); err != nil {
			http.Error(w, "failed to remove like", http.StatusInternalServerError)
			return
		}
	} else {
		_, err := h.communityRepo.CreateLike(ctx, &models.PostLike{PostID: postID, UserID: userID})
		if err != nil && err != repository.ErrDuplicate {
			http.Error(w, "failed to store like", http.StatusInternalServerError)
			return
		}
		liked = true
	}

	count, err := h.communityRepo.CountLikes(ctx, postID)
	if err != nil {
		http.Error(w, "failed to count likes", http.StatusInternalServerError)
		return
	}

	writeJSON(w, toggleLikeResponse{Liked: liked, LikesCount: count}, http.StatusOK)
}
