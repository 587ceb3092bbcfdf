package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/713zhao/aireminder/internal/reminder/repository"
	"github.com/713zhao/aireminder/internal/reminder/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	// test identity middleware: trust the X-User-ID header
	r.Use(func(c *gin.Context) {
		if uid := c.GetHeader("X-User-ID"); uid != "" {
			c.Set("userId", uid)
		}
		c.Next()
	})
	h := New(service.New(repository.NewMemoryRepo()))
	h.Register(r.Group("/api"))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, user string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-User-ID", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createReminder(t *testing.T, r *gin.Engine, user string, body map[string]interface{}) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/reminders", user, body)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	id, _ := resp["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func TestCreateAndGetReminder(t *testing.T) {
	r := setupRouter()
	id := createReminder(t, r, "alice", map[string]interface{}{
		"title": "water plants",
		"dueAt": "2026-02-25T09:00:00Z",
	})

	w := doJSON(t, r, http.MethodGet, "/api/reminders/"+id, "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "water plants", resp["title"])
	assert.Equal(t, "alice", resp["ownerId"])
	assert.Equal(t, float64(1), resp["version"])
}

func TestCreateRejectsMissingTitle(t *testing.T) {
	r := setupRouter()
	w := doJSON(t, r, http.MethodPost, "/api/reminders", "alice", map[string]interface{}{"title": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateRejectsBadDueDate(t *testing.T) {
	r := setupRouter()
	w := doJSON(t, r, http.MethodPost, "/api/reminders", "alice", map[string]interface{}{
		"title": "t",
		"dueAt": "not a date",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListReminders(t *testing.T) {
	r := setupRouter()
	createReminder(t, r, "alice", map[string]interface{}{"title": "one"})
	createReminder(t, r, "alice", map[string]interface{}{"title": "two"})
	createReminder(t, r, "bob", map[string]interface{}{"title": "other"})

	w := doJSON(t, r, http.MethodGet, "/api/reminders", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count     int                      `json:"count"`
		Reminders []map[string]interface{} `json:"reminders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Reminders, 2)
	assert.Equal(t, "one", resp.Reminders[0]["title"])
}

func TestGetForDateBadDateIs400(t *testing.T) {
	r := setupRouter()
	w := doJSON(t, r, http.MethodGet, "/api/reminders/date/garbage", "alice", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetForDateMatchesRecurrence(t *testing.T) {
	r := setupRouter()
	createReminder(t, r, "alice", map[string]interface{}{
		"title":      "standup",
		"dueAt":      "2026-02-16T09:30:00Z",
		"recurrence": "weekly",
		"weeklyDays": []int{1, 3, 5},
	})

	w := doJSON(t, r, http.MethodGet, "/api/reminders/date/2026-02-25", "alice", nil) // a Wednesday
	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)

	w = doJSON(t, r, http.MethodGet, "/api/reminders/date/2026-02-24", "alice", nil) // a Tuesday
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Count)
}

func TestGetReminderAccess(t *testing.T) {
	r := setupRouter()
	id := createReminder(t, r, "alice", map[string]interface{}{
		"title":      "shared task",
		"sharedWith": []string{"bob"},
	})

	w := doJSON(t, r, http.MethodGet, "/api/reminders/"+id, "bob", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reminders/"+id, "carol", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reminders/does-not-exist", "alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateReminder(t *testing.T) {
	r := setupRouter()
	id := createReminder(t, r, "alice", map[string]interface{}{
		"title": "old",
		"dueAt": "2026-02-25T09:00:00Z",
	})

	w := doJSON(t, r, http.MethodPatch, "/api/reminders/"+id, "alice", map[string]interface{}{
		"title": "new",
		"dueAt": "", // clears the due date
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "new", resp["title"])
	assert.Equal(t, float64(2), resp["version"])
	assert.Nil(t, resp["dueDate"])
}

func TestUpdateNullInstantReadsAsOmitted(t *testing.T) {
	r := setupRouter()
	id := createReminder(t, r, "alice", map[string]interface{}{
		"title": "dated",
		"dueAt": "2026-02-25T09:00:00Z",
	})

	// JSON null is indistinguishable from an absent field; only "" clears.
	w := doJSON(t, r, http.MethodPatch, "/api/reminders/"+id, "alice", map[string]interface{}{
		"dueAt": nil,
		"notes": "touched",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Feb 25, 2026", resp["dueDate"])
}

func TestUpdateByNonOwnerIs403(t *testing.T) {
	r := setupRouter()
	id := createReminder(t, r, "alice", map[string]interface{}{
		"title":      "mine",
		"sharedWith": []string{"bob"},
	})
	w := doJSON(t, r, http.MethodPatch, "/api/reminders/"+id, "bob", map[string]interface{}{"title": "taken"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestCompleteBySharedUser(t *testing.T) {
	r := setupRouter()
	id := createReminder(t, r, "alice", map[string]interface{}{
		"title":      "joint",
		"sharedWith": []string{"bob"},
	})
	w := doJSON(t, r, http.MethodPost, "/api/reminders/"+id+"/complete", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["isCompleted"])
}

func TestDeleteReminder(t *testing.T) {
	r := setupRouter()
	id := createReminder(t, r, "alice", map[string]interface{}{"title": "temp"})

	w := doJSON(t, r, http.MethodDelete, "/api/reminders/"+id, "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, id, resp["reminderId"])

	w = doJSON(t, r, http.MethodGet, "/api/reminders/"+id, "alice", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSharedListing(t *testing.T) {
	r := setupRouter()
	createReminder(t, r, "alice", map[string]interface{}{
		"title":      "for bob",
		"sharedWith": []string{"bob"},
	})
	createReminder(t, r, "alice", map[string]interface{}{"title": "private"})

	w := doJSON(t, r, http.MethodGet, "/api/reminders/shared", "bob", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count     int                      `json:"count"`
		Reminders []map[string]interface{} `json:"reminders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, "for bob", resp.Reminders[0]["title"])
}

func TestSummaryEndpoint(t *testing.T) {
	r := setupRouter()
	createReminder(t, r, "alice", map[string]interface{}{"title": "a"})
	id := createReminder(t, r, "alice", map[string]interface{}{"title": "b"})
	w := doJSON(t, r, http.MethodPost, "/api/reminders/"+id+"/complete", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/reminders/summary", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum struct {
		Total          int     `json:"total"`
		Completed      int     `json:"completed"`
		Pending        int     `json:"pending"`
		CompletionRate float64 `json:"completionRate"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, 2, sum.Total)
	assert.Equal(t, 1, sum.Completed)
	assert.Equal(t, 1, sum.Pending)
	assert.Equal(t, 50.0, sum.CompletionRate)
}

func TestSearchEndpoint(t *testing.T) {
	r := setupRouter()
	createReminder(t, r, "alice", map[string]interface{}{"title": "Buy milk"})
	createReminder(t, r, "alice", map[string]interface{}{"title": "call mom"})

	w := doJSON(t, r, http.MethodGet, "/api/reminders/search?q=milk", "alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}
