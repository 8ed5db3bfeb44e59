package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Musabek03/Instagram-clone/internal/models"
	"github.com/Musabek03/Instagram-clone/internal/notify"
	"github.com/Musabek03/Instagram-clone/internal/repositories"
	"github.com/labstack/echo/v4"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires repositories and handlers against an in-memory database.
type testEnv struct {
	db            *gorm.DB
	e             *echo.Echo
	users         repositories.UserRepository
	posts         repositories.PostRepository
	likes         repositories.LikeRepository
	comments      repositories.CommentRepository
	follows       repositories.FollowRepository
	notifications repositories.NotificationRepository
	notifier      *notify.Notifier
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.PostLike{},
		&models.Follow{},
		&models.Notification{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	return &testEnv{
		db:            db,
		e:             echo.New(),
		users:         repositories.NewPostgresUserRepository(db),
		posts:         repositories.NewPostgresPostRepository(db),
		likes:         repositories.NewPostgresLikeRepository(db),
		comments:      repositories.NewPostgresCommentRepository(db),
		follows:       repositories.NewPostgresFollowRepository(db),
		notifications: notificationRepo,
		notifier:      notify.New(notificationRepo),
	}
}

// newContext builds an echo context carrying an optional JSON body and the
// claims of an authenticated user (userID 0 means anonymous).
func (env *testEnv) newContext(method, target, body string, userID uint) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := env.e.NewContext(req, rec)
	if userID != 0 {
		c.Set("user", &models.JwtCustomClaims{UserID: userID})
	}
	return c, rec
}

func (env *testEnv) seedUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Email: username + "@example.com"}
	if err := env.db.Create(user).Error; err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

func (env *testEnv) seedPost(t *testing.T, authorID uint, caption string) *models.Post {
	t.Helper()
	post := &models.Post{AuthorID: authorID, Image: "https://cdn.example.com/p.jpg", Caption: caption}
	if err := env.db.Create(post).Error; err != nil {
		t.Fatalf("seed post: %v", err)
	}
	return post
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
	return body
}

func httpErrorCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected *echo.HTTPError, got %T (%v)", err, err)
	}
	return he.Code
}
