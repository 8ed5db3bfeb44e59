package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Musabek03/Instagram-clone/internal/models"
	"github.com/labstack/echo/v4"
)

func (env *testEnv) postIDContext(t *testing.T, actorID, postID uint, method, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := env.newContext(method, "/", body, actorID)
	c.SetPath("/posts/:id")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(postID))
	return c, rec
}

func TestCreatePostAuthorForcedToCaller(t *testing.T) {
	env := newTestEnv(t)
	h := NewPostHandler(env.posts, env.users, env.likes, env.comments)
	alice := env.seedUser(t, "alice")

	c, rec := env.newContext(http.MethodPost, "/posts",
		`{"image":"https://cdn.example.com/x.jpg","caption":"mine"}`, alice.ID)
	if err := h.CreatePost(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var post models.Post
	env.db.First(&post)
	if post.AuthorID != alice.ID {
		t.Fatalf("expected author %d, got %d", alice.ID, post.AuthorID)
	}
}

func TestCreatePostRequiresImage(t *testing.T) {
	env := newTestEnv(t)
	h := NewPostHandler(env.posts, env.users, env.likes, env.comments)
	alice := env.seedUser(t, "alice")

	c, _ := env.newContext(http.MethodPost, "/posts", `{"caption":"no image"}`, alice.ID)
	err := h.CreatePost(c)
	if err == nil {
		t.Fatalf("expected missing image to fail")
	}
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
}

func TestUpdateAndDeletePostAuthorOnly(t *testing.T) {
	env := newTestEnv(t)
	h := NewPostHandler(env.posts, env.users, env.likes, env.comments)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	post := env.seedPost(t, bob.ID, "hello")

	c, _ := env.postIDContext(t, alice.ID, post.ID, http.MethodPut, `{"caption":"hijacked"}`)
	err := h.UpdatePost(c)
	if err == nil || httpErrorCode(t, err) != http.StatusForbidden {
		t.Fatalf("expected 403 on foreign update, got %v", err)
	}

	c, _ = env.postIDContext(t, alice.ID, post.ID, http.MethodDelete, "")
	err = h.DeletePost(c)
	if err == nil || httpErrorCode(t, err) != http.StatusForbidden {
		t.Fatalf("expected 403 on foreign delete, got %v", err)
	}

	c, rec := env.postIDContext(t, bob.ID, post.ID, http.MethodDelete, "")
	if err := h.DeletePost(c); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	var count int64
	env.db.Model(&models.Post{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected post removed, got %d", count)
	}
}

func TestDeletePostCascadesThroughHandler(t *testing.T) {
	env := newTestEnv(t)
	h := NewPostHandler(env.posts, env.users, env.likes, env.comments)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	post := env.seedPost(t, bob.ID, "hello")

	env.likes.ToggleLike(alice.ID, post.ID)
	env.comments.CreateComment(&models.Comment{PostID: post.ID, UserID: alice.ID, Text: "nice"})

	c, _ := env.postIDContext(t, bob.ID, post.ID, http.MethodDelete, "")
	if err := h.DeletePost(c); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var likes, comments int64
	env.db.Model(&models.PostLike{}).Count(&likes)
	env.db.Model(&models.Comment{}).Count(&comments)
	if likes != 0 || comments != 0 {
		t.Fatalf("expected cascade, got likes=%d comments=%d", likes, comments)
	}
}

func TestGetPostsNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	h := NewPostHandler(env.posts, env.users, env.likes, env.comments)
	bob := env.seedUser(t, "bob")
	env.seedPost(t, bob.ID, "first")
	env.seedPost(t, bob.ID, "second")

	c, rec := env.newContext(http.MethodGet, "/posts", "", bob.ID)
	if err := h.GetPosts(c); err != nil {
		t.Fatalf("list: %v", err)
	}

	body := decodeBody(t, rec)
	posts := body["data"].(map[string]interface{})["posts"].([]interface{})
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
}
