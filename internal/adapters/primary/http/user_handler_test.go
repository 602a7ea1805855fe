package http

import (
	"bytes"
	"encoding/json"
	"fmt"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type userResponse struct {
	Data    UserDTO `json:"data"`
	Message string  `json:"message"`
}

type userListResponse struct {
	Data       []UserDTO          `json:"data"`
	Pagination PaginationMetadata `json:"pagination"`
}

func postUser(t *testing.T, router stdhttp.Handler, payload UserRequest) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(stdhttp.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestUserCreate(t *testing.T) {
	router, _, svc := newTestRouter()
	defer svc.Shutdown()

	payload := UserRequest{Name: "Bob", Email: uuid.NewString() + "@example.com"}
	recorder := postUser(t, router, payload)

	require.Equal(t, stdhttp.StatusCreated, recorder.Code)

	var response userResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "User created successfully!", response.Message)
	assert.NotZero(t, response.Data.ID)
	assert.Equal(t, payload.Email, response.Data.Email)
}

func TestUserCreate_ValidationFailed(t *testing.T) {
	router, _, svc := newTestRouter()
	defer svc.Shutdown()

	recorder := postUser(t, router, UserRequest{})

	require.Equal(t, stdhttp.StatusUnprocessableEntity, recorder.Code)

	var response ValidationErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Contains(t, response.Fields["name"], "The name field is required.")
	assert.Contains(t, response.Fields["email"], "The email field is required.")
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	router, _, svc := newTestRouter()
	defer svc.Shutdown()

	payload := UserRequest{Name: "Bob", Email: uuid.NewString() + "@example.com"}
	require.Equal(t, stdhttp.StatusCreated, postUser(t, router, payload).Code)

	recorder := postUser(t, router, payload)

	require.Equal(t, stdhttp.StatusUnprocessableEntity, recorder.Code)

	var response ValidationErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Contains(t, response.Fields["email"], "The email has already been taken.")
}

func TestUserUpdateAndDelete(t *testing.T) {
	router, _, svc := newTestRouter()
	defer svc.Shutdown()

	payload := UserRequest{Name: "Bob", Email: uuid.NewString() + "@example.com"}
	recorder := postUser(t, router, payload)
	require.Equal(t, stdhttp.StatusCreated, recorder.Code)

	var created userResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&created))

	payload.Name = "Bob Renamed"
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(stdhttp.MethodPut, fmt.Sprintf("/users/%d", created.Data.ID), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	var updated userResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&updated))
	assert.Equal(t, "User updated successfully!", updated.Message)
	assert.Equal(t, "Bob Renamed", updated.Data.Name)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(stdhttp.MethodDelete, fmt.Sprintf("/users/%d", created.Data.ID), nil))
	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(stdhttp.MethodGet, fmt.Sprintf("/users/%d", created.Data.ID), nil))
	require.Equal(t, stdhttp.StatusNotFound, recorder.Code)

	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.Equal(t, "USER_NOT_FOUND", response.Code)
}

func TestUserList(t *testing.T) {
	router, _, svc := newTestRouter()
	defer svc.Shutdown()

	recorder := postUser(t, router, UserRequest{Name: "Bob", Email: uuid.NewString() + "@example.com"})
	require.Equal(t, stdhttp.StatusCreated, recorder.Code)

	req := httptest.NewRequest(stdhttp.MethodGet, "/users?limit=100", nil)
	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, stdhttp.StatusOK, recorder.Code)

	var response userListResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	assert.NotEmpty(t, response.Data)
	assert.GreaterOrEqual(t, response.Pagination.TotalCount, int64(1))
}
