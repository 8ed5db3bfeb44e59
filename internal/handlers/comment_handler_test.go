package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Musabek03/Instagram-clone/internal/models"
	"github.com/labstack/echo/v4"
)

func (env *testEnv) commentContext(t *testing.T, actorID, postID uint, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	c, rec := env.newContext(http.MethodPost, "/", body, actorID)
	c.SetPath("/posts/:post_id/comments")
	c.SetParamNames("post_id")
	c.SetParamValues(fmt.Sprint(postID))
	return c, rec
}

func TestCreateCommentNotifiesAuthor(t *testing.T) {
	env := newTestEnv(t)
	h := NewCommentHandler(env.comments, env.posts, env.notifier)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	post := env.seedPost(t, bob.ID, "hello")

	c, rec := env.commentContext(t, alice.ID, post.ID, `{"text":"great shot"}`)
	if err := h.CreateComment(c); err != nil {
		t.Fatalf("comment: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var notifications []models.Notification
	env.db.Find(&notifications)
	if len(notifications) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifications))
	}
	n := notifications[0]
	if n.Type != models.NotificationTypeComment || n.SenderID != alice.ID || n.ReceiverID != bob.ID {
		t.Fatalf("unexpected notification: %+v", n)
	}

	// A second comment by the same user is a second notification
	c, _ = env.commentContext(t, alice.ID, post.ID, `{"text":"and another thing"}`)
	if err := h.CreateComment(c); err != nil {
		t.Fatalf("second comment: %v", err)
	}
	var count int64
	env.db.Model(&models.Notification{}).Count(&count)
	if count != 2 {
		t.Fatalf("expected two notifications, got %d", count)
	}
}

func TestSelfCommentEmitsNoNotification(t *testing.T) {
	env := newTestEnv(t)
	h := NewCommentHandler(env.comments, env.posts, env.notifier)
	bob := env.seedUser(t, "bob")
	post := env.seedPost(t, bob.ID, "hello")

	c, _ := env.commentContext(t, bob.ID, post.ID, `{"text":"my own post"}`)
	if err := h.CreateComment(c); err != nil {
		t.Fatalf("self comment: %v", err)
	}

	var count int64
	env.db.Model(&models.Notification{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no notification for self-comment, got %d", count)
	}
}

func TestCreateCommentEmptyTextRejected(t *testing.T) {
	env := newTestEnv(t)
	h := NewCommentHandler(env.comments, env.posts, env.notifier)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	post := env.seedPost(t, bob.ID, "hello")

	c, _ := env.commentContext(t, alice.ID, post.ID, `{"text":""}`)
	err := h.CreateComment(c)
	if err == nil {
		t.Fatalf("expected empty comment to fail")
	}
	if code := httpErrorCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}

	var count int64
	env.db.Model(&models.Comment{}).Count(&count)
	if count != 0 {
		t.Fatalf("expected no comments, got %d", count)
	}
}

func TestUpdateCommentOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	h := NewCommentHandler(env.comments, env.posts, env.notifier)
	alice := env.seedUser(t, "alice")
	bob := env.seedUser(t, "bob")
	post := env.seedPost(t, bob.ID, "hello")

	comment := &models.Comment{PostID: post.ID, UserID: alice.ID, Text: "original"}
	if err := env.comments.CreateComment(comment); err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	// Bob cannot edit alice's comment
	c, _ := env.newContext(http.MethodPut, "/", `{"text":"hijacked"}`, bob.ID)
	c.SetPath("/comments/:id")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(comment.ID))
	err := h.UpdateComment(c)
	if err == nil {
		t.Fatalf("expected foreign update to fail")
	}
	if code := httpErrorCode(t, err); code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}

	// Alice can
	c, _ = env.newContext(http.MethodPut, "/", `{"text":"edited"}`, alice.ID)
	c.SetPath("/comments/:id")
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(comment.ID))
	if err := h.UpdateComment(c); err != nil {
		t.Fatalf("owner update: %v", err)
	}

	var stored models.Comment
	env.db.First(&stored, comment.ID)
	if stored.Text != "edited" {
		t.Fatalf("expected edited text, got %q", stored.Text)
	}
}
