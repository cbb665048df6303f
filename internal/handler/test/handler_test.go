package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"

	"realtyshopee/internal/config"
	handlers "realtyshopee/internal/handler"
)

type testMocks struct {
	auth     *MockAuthService
	property *MockPropertyService
	blog     *MockBlogService
	query    *MockQueryService
}

func createTestHandler() (*handlers.Handlers, *testMocks) {
	mocks := &testMocks{
		auth:     new(MockAuthService),
		property: new(MockPropertyService),
		blog:     new(MockBlogService),
		query:    new(MockQueryService),
	}

	cfg := &config.Config{
		ServerPort:  3009,
		DBName:      "RealtyShopee",
		MaxBodySize: 50 * 1024 * 1024,
	}

	handler := &handlers.Handlers{
		AuthService:     mocks.auth,
		PropertyService: mocks.property,
		BlogService:     mocks.blog,
		QueryService:    mocks.query,
		Cfg:             cfg,
		Validate:        validator.New(),
	}

	return handler, mocks
}

// assertJSONMessage checks a JSON {message} body and status code
func assertJSONMessage(t *testing.T, rr *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	t.Helper()

	assert.Equal(t, expectedStatus, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var response map[string]string
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, expectedMessage, response["message"])
}
