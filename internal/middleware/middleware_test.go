package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/remittance_advisor/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testSecret = "test-secret-key-that-is-long-enough"

type MiddlewareTestSuite struct {
	suite.Suite
	router *gin.Engine
	logBuf *bytes.Buffer
}

func (suite *MiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.logBuf = new(bytes.Buffer)
	logger := slog.New(slog.NewJSONHandler(suite.logBuf, nil))

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(logger))
	suite.router.GET("/open", func(c *gin.Context) {
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	protected := suite.router.Group("/secure", middleware.AuthMiddleware(testSecret))
	protected.GET("/whoami", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": userID})
	})
}

func (suite *MiddlewareTestSuite) token(subject, secret string, expiresIn time.Duration) string {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	suite.Require().NoError(err)
	return signed
}

func (suite *MiddlewareTestSuite) TestLogging_SetsRequestIDAndLogs() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/open", nil))

	suite.Equal(http.StatusNoContent, w.Code)
	requestID := w.Header().Get(middleware.RequestIDHeader)
	suite.NotEmpty(requestID)

	// both the handler line and the completion line carry the request id
	lines := bytes.Split(bytes.TrimSpace(suite.logBuf.Bytes()), []byte("\n"))
	suite.Require().Len(lines, 2)
	for _, line := range lines {
		var entry map[string]any
		suite.Require().NoError(json.Unmarshal(line, &entry))
		suite.Equal(requestID, entry["request_id"])
		suite.Equal("/open", entry["path"])
	}
}

func (suite *MiddlewareTestSuite) TestAuth_MissingHeader() {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/secure/whoami", nil))
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Authorization header required")
}

func (suite *MiddlewareTestSuite) TestAuth_BadFormat() {
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Bearer {token}")
}

func (suite *MiddlewareTestSuite) TestAuth_WrongSecret() {
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+suite.token("user-1", "another-secret", time.Hour))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Invalid token")
}

func (suite *MiddlewareTestSuite) TestAuth_Expired() {
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+suite.token("user-1", testSecret, -time.Minute))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
}

func (suite *MiddlewareTestSuite) TestAuth_Valid() {
	req := httptest.NewRequest(http.MethodGet, "/secure/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+suite.token("user-1", testSecret, time.Hour))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"user":"user-1"}`, w.Body.String())
	suite.Contains(suite.logBuf.String(), `"user_id":"user-1"`)
}

func TestMiddleware(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}

func TestGetLoggerFromCtx_FallsBackToDefault(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	logger := middleware.GetLoggerFromCtx(req.Context())
	require.NotNil(t, logger)
	assert.Same(t, slog.Default(), logger)
}
