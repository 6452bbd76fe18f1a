package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/projexi/projexi/api"
	"github.com/projexi/projexi/pkg/models"
	"github.com/projexi/projexi/pkg/repository/mock"
)

func TestCreatePost(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
	}{
		{name: "InvalidJSON", body: "nope", wantStatus: http.StatusBadRequest},
		{name: "EmptyContent", body: map[string]string{"content": "  "}, wantStatus: http.StatusBadRequest},
		{name: "Success", body: map[string]string{"content": "hello community"}, wantStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			community := &mock.CommunityRepo{}
			h := api.NewCommunityHandler(community)

			req := authedRequest(t, http.MethodPost, "/v1/community/posts", tt.body, "p1", models.RoleDealer)
			w := httptest.NewRecorder()
			h.CreatePost(w, req)

			if w.Result().StatusCode != tt.wantStatus {
				t.Fatalf("want %d got %d", tt.wantStatus, w.Result().StatusCode)
			}
			if tt.wantStatus == http.StatusCreated {
				if len(community.Posts) != 1 || community.Posts[0].AuthorID != "p1" {
					t.Fatalf("post not stored for author: %+v", community.Posts)
				}
			}
		})
	}
}

func TestToggleLike(t *testing.T) {
	community := &mock.CommunityRepo{}
	h := api.NewCommunityHandler(community)

	toggle := func() (bool, int64) {
		req := authedRequest(t, http.MethodPost, "/v1/community/posts/post-1/like", nil, "p1", models.RoleInvestor)
		req = mux.SetURLVars(req, map[string]string{"id": "post-1"})
		w := httptest.NewRecorder()
		h.ToggleLike(w, req)

		res := w.Result()
		defer res.Body.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200 got %d", res.StatusCode)
		}
		var resp struct {
			Liked      bool  `json:"liked"`
			LikesCount int64 `json:"likes_count"`
		}
		decodeBody(t, res, &resp)
		return resp.Liked, resp.LikesCount
	}

	// first toggle creates the like
	liked, count := toggle()
	if !liked || count != 1 {
		t.Fatalf("first toggle: want liked=true count=1, got liked=%v count=%d", liked, count)
	}

	// second toggle removes it
	liked, count = toggle()
	if liked || count != 0 {
		t.Fatalf("second toggle: want liked=false count=0, got liked=%v count=%d", liked, count)
	}

	// third toggle likes again
	liked, count = toggle()
	if !liked || count != 1 {
		t.Fatalf("third toggle: want liked=true count=1, got liked=%v count=%d", liked, count)
	}
}

func TestToggleLikeDoesNotTouchOtherUsers(t *testing.T) {
	community := &mock.CommunityRepo{Likes: []models.PostLike{
		{ID: "l1", PostID: "post-1", UserID: "other"},
	}}
	h := api.NewCommunityHandler(community)

	req := authedRequest(t, http.MethodPost, "/v1/community/posts/post-1/like", nil, "p1", models.RoleInvestor)
	req = mux.SetURLVars(req, map[string]string{"id": "post-1"})
	w := httptest.NewRecorder()
	h.ToggleLike(w, req)

	res := w.Result()
	defer res.Body.Close()
	var resp struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}
	decodeBody(t, res, &resp)
	if !resp.Liked || resp.LikesCount != 2 {
		t.Fatalf("want liked=true count=2, got %+v", resp)
	}
}
