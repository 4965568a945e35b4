package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-notes-hub/internal/bootstrap"
	"ai-notes-hub/internal/config"
	"ai-notes-hub/internal/testutil"
	"ai-notes-hub/pkg/llm"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	reply string
	err   error
}

func (p *stubProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	return p.reply, p.err
}

func (p *stubProvider) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return p.reply, p.err
}

type apiResponse struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    struct {
		Id        uint   `json:"id"`
		Title     string `json:"title"`
		Summary   string `json:"summary"`
		Content   string `json:"content"`
		CreatedAt string `json:"createdAt"`
	} `json:"data"`
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			CorsAllowedOrigins: "http://localhost:5173",
			ErrorTopic:         "captured_exceptions",
		},
		Ai: config.AIConfig{
			LLMProvider: "openai",
			LLMModel:    "gpt-4o-mini",
			Temperature: 0.7,
			MaxTokens:   2000,
		},
	}
}

func newTestServer(t *testing.T, provider llm.LLMProvider) (*Server, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := testutil.NewMockGormDB(t)
	cfg := testConfig()
	container := bootstrap.NewContainerWithOptions(db, cfg, bootstrap.Options{Provider: provider})
	t.Cleanup(container.Close)

	return New(cfg, container), mock
}

func postGenerate(t *testing.T, srv *Server, body string) (*http.Response, apiResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.GetApp().Test(req, -1)
	require.NoError(t, err)

	var out apiResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp, out
}

func TestGenerateNote(t *testing.T) {
	srv, mock := newTestServer(t, &stubProvider{
		reply: `{"title":"Test Note","summary":"Test summary","content":"Test content"}`,
	})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notes"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectCommit()

	resp, out := postGenerate(t, srv, `{"topic":"artificial intelligence"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.True(t, out.Success)
	assert.Equal(t, uint(1), out.Data.Id)
	assert.Equal(t, "Test Note", out.Data.Title)
	assert.Equal(t, "Test summary", out.Data.Summary)
	assert.Equal(t, "Test content", out.Data.Content)
	assert.NotEmpty(t, out.Data.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateNoteValidation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantMsg string
	}{
		{"EmptyTopic", `{"topic":""}`, "Validation error: Topic is required"},
		{"TooLong", `{"topic":"` + strings.Repeat("a", 201) + `"}`, "Validation error: Topic must be less than 200 characters"},
		{"NotAString", `{"topic":7}`, "Validation error: Topic must be a string"},
		{"NotAnObject", `[]`, "Validation error: Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, mock := newTestServer(t, &stubProvider{reply: "unused"})

			resp, out := postGenerate(t, srv, tt.body)

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.False(t, out.Success)
			assert.Equal(t, 400, out.Code)
			assert.Equal(t, tt.wantMsg, out.Error)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGenerateNoteProviderFailure(t *testing.T) {
	srv, mock := newTestServer(t, &stubProvider{err: errors.New("API Error")})

	resp, out := postGenerate(t, srv, `{"topic":"test topic"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.False(t, out.Success)
	assert.Contains(t, out.Error, "Failed to generate note")
	assert.NotContains(t, out.Error, "API Error")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerateNotePersistenceFailure(t *testing.T) {
	srv, mock := newTestServer(t, &stubProvider{
		reply: `{"title":"T","summary":"S","content":"C"}`,
	})

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "notes"`).WillReturnError(errors.New("connection reset"))
	mock.ExpectRollback()

	resp, out := postGenerate(t, srv, `{"topic":"x"}`)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "Failed to generate note. Please try again.", out.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingPage(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		srv, mock := newTestServer(t, &stubProvider{})
		mock.ExpectQuery(`SELECT \* FROM "notes"`).WillReturnRows(testutil.NoteRows())

		resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
		assert.Contains(t, string(body), "AI Notes Hub")
		assert.Contains(t, string(body), "No notes yet.")
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("WithNotes", func(t *testing.T) {
		srv, mock := newTestServer(t, &stubProvider{})
		created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
		mock.ExpectQuery(`SELECT \* FROM "notes"`).WillReturnRows(testutil.NoteRows().
			AddRow(1, "Go Channels", strings.Repeat("s", 350), "body", created, created, nil))

		resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		html := string(body)

		assert.Contains(t, html, `id="note-1"`)
		assert.Contains(t, html, "Go Channels")
		assert.Contains(t, html, "March 5, 2024 at 02:30 PM")
		assert.Contains(t, html, strings.Repeat("s", 300)+"...")
		assert.NotContains(t, html, strings.Repeat("s", 301))
		assert.NotContains(t, html, "No notes yet.")
	})
}

func TestNotesAPI(t *testing.T) {
	srv, mock := newTestServer(t, &stubProvider{})
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "notes"`).WillReturnRows(testutil.NoteRows().
		AddRow(2, "Café Notes", "S", "C", created, created, nil))

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/notes", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var list struct {
		Data []struct {
			Id   uint   `json:"id"`
			Slug string `json:"slug"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	require.Len(t, list.Data, 1)
	assert.Equal(t, "cafe-notes", list.Data[0].Slug)

	t.Run("ShowMissing", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "notes"`).WillReturnRows(testutil.NoteRows())

		resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/notes/99", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("ShowInvalidID", func(t *testing.T) {
		resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/notes/abc", nil), -1)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNotesAPIEmptyListHasDataArray(t *testing.T) {
	srv, mock := newTestServer(t, &stubProvider{})
	mock.ExpectQuery(`SELECT \* FROM "notes"`).WillReturnRows(testutil.NoteRows())

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/api/notes", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Contains(t, body, "data")
	assert.JSONEq(t, `[]`, string(body["data"]))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListingPageElementIDsAreUnique(t *testing.T) {
	srv, mock := newTestServer(t, &stubProvider{})
	created := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "notes"`).WillReturnRows(testutil.NoteRows().
		AddRow(3, "日本語", "S", "C", created, created, nil).
		AddRow(2, "Same Title", "S", "C", created, created, nil).
		AddRow(1, "Same Title", "S", "C", created, created, nil))

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	html := string(body)

	for _, id := range []string{`id="note-1"`, `id="note-2"`, `id="note-3"`} {
		assert.Equal(t, 1, strings.Count(html, id), id)
	}
	assert.NotContains(t, html, `id=""`)
}

func TestHealthAndMetrics(t *testing.T) {
	srv, _ := newTestServer(t, &stubProvider{})

	resp, err := srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = srv.GetApp().Test(httptest.NewRequest(http.MethodGet, "/metrics", nil), -1)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "go_goroutines")
}
