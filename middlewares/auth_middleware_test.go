package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"diettracker/config"
	"diettracker/middlewares"
	"diettracker/models"
	"diettracker/services"
)

type guardFixture struct {
	router *gin.Engine
	auth   *services.AuthService
	tokens *services.TokenService
	db     *gorm.DB
}

// newGuardFixture wires the guard in front of a probe handler that
// echoes the resolved user's email.
func newGuardFixture(t *testing.T) *guardFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, config.Migrate(db))

	auth := services.NewAuthService(db)
	tokens, err := services.NewTokenService("test-secret", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/probe", middlewares.Auth(tokens, auth), func(c *gin.Context) {
		user := middlewares.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})

	return &guardFixture{router: router, auth: auth, tokens: tokens, db: db}
}

func (f *guardFixture) probe(authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func TestGuardRejectsMissingHeader(t *testing.T) {
	f := newGuardFixture(t)
	w := f.probe("")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsGarbageToken(t *testing.T) {
	f := newGuardFixture(t)
	w := f.probe("Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardAcceptsValidToken(t *testing.T) {
	f := newGuardFixture(t)
	user, err := f.auth.Register("ann@example.com", "pw", "Ann")
	require.NoError(t, err)
	token, err := f.tokens.Issue(user.ID)
	require.NoError(t, err)

	w := f.probe("Bearer " + token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ann@example.com")
}

func TestGuardAcceptsBareTokenWithoutScheme(t *testing.T) {
	f := newGuardFixture(t)
	user, err := f.auth.Register("ann@example.com", "pw", "Ann")
	require.NoError(t, err)
	token, err := f.tokens.Issue(user.ID)
	require.NoError(t, err)

	w := f.probe(token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGuardRejectsTokenForDeletedUser(t *testing.T) {
	f := newGuardFixture(t)
	user, err := f.auth.Register("ann@example.com", "pw", "Ann")
	require.NoError(t, err)
	token, err := f.tokens.Issue(user.ID)
	require.NoError(t, err)

	require.NoError(t, f.db.Delete(&models.User{}, user.ID).Error)

	w := f.probe("Bearer " + token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGuardRejectsExpiredToken(t *testing.T) {
	f := newGuardFixture(t)
	user, err := f.auth.Register("ann@example.com", "pw", "Ann")
	require.NoError(t, err)

	shortLived, err := services.NewTokenService("test-secret", time.Millisecond)
	require.NoError(t, err)
	token, err := shortLived.Issue(user.ID)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	w := f.probe("Bearer " + token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
