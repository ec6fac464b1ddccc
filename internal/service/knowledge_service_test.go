package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kbsync/minio-listener/internal/service"
	"github.com/stretchr/testify/assert"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

type FakeObjectStore struct {
	content string
	err     error

	bucket string
	key    string
}

func (f *FakeObjectStore) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}

	f.bucket = *params.Bucket
	f.key = *params.Key

	return &s3.GetObjectOutput{
		Body: io.NopCloser(strings.NewReader(f.content)),
	}, nil
}

type CapturedRequest struct {
	method string
	path   string
	query  map[string]string
	body   []byte
}

func knowledgeServer(t *testing.T, status int, captured *CapturedRequest) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.method = r.Method
		captured.path = r.URL.Path
		captured.query = make(map[string]string)
		for key := range r.URL.Query() {
			captured.query[key] = r.URL.Query().Get(key)
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			t.Errorf("Unable to read request body: %v", err)
		}
		captured.body = body

		w.WriteHeader(status)
	}))

	t.Cleanup(server.Close)

	return server
}

func TestAddFile(t *testing.T) {
	var captured CapturedRequest
	server := knowledgeServer(t, http.StatusOK, &captured)

	store := &FakeObjectStore{content: "# notes"}
	cfg := TestConfig{endpoint: server.URL, knowledgeId: "kb-1"}

	s := service.NewKnowledgeService(cfg, store)

	err := s.AddFile(context.Background(), "notes/test.md", "vault")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assert.Equal(t, "vault", store.bucket)
	assert.Equal(t, "notes/test.md", store.key)
	assert.Equal(t, http.MethodPost, captured.method)
	assert.Equal(t, "/documents", captured.path)

	var doc map[string]interface{}
	err = json.Unmarshal(captured.body, &doc)
	if err != nil {
		t.Fatalf("Unable to unmarshall request body: %v", err)
	}

	assert.Equal(t, "kb-1", doc["knowledgeId"])
	assert.Equal(t, "vault", doc["bucket"])
	assert.Equal(t, "notes/test.md", doc["name"])
}

func TestAddFileStorageError(t *testing.T) {
	var captured CapturedRequest
	server := knowledgeServer(t, http.StatusOK, &captured)

	store := &FakeObjectStore{err: errors.New("no such key")}
	cfg := TestConfig{endpoint: server.URL, knowledgeId: "kb-1"}

	s := service.NewKnowledgeService(cfg, store)

	err := s.AddFile(context.Background(), "missing.md", "vault")
	assert.Error(t, err)
	assert.Empty(t, captured.method)
}

func TestAddFileApiError(t *testing.T) {
	var captured CapturedRequest
	server := knowledgeServer(t, http.StatusInternalServerError, &captured)

	store := &FakeObjectStore{content: "# notes"}
	cfg := TestConfig{endpoint: server.URL, knowledgeId: "kb-1"}

	s := service.NewKnowledgeService(cfg, store)

	err := s.AddFile(context.Background(), "notes/test.md", "vault")

	var apiErr service.KnowledgeApiError
	assert.ErrorAs(t, err, &apiErr)
}

func TestRemoveFile(t *testing.T) {
	var captured CapturedRequest
	server := knowledgeServer(t, http.StatusOK, &captured)

	cfg := TestConfig{endpoint: server.URL, knowledgeId: "kb-1"}

	s := service.NewKnowledgeService(cfg, &FakeObjectStore{})

	err := s.RemoveFile(context.Background(), "notes/test.md", "vault")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	assert.Equal(t, http.MethodDelete, captured.method)
	assert.Equal(t, "/documents", captured.path)
	assert.Equal(t, "kb-1", captured.query["knowledgeId"])
	assert.Equal(t, "vault", captured.query["bucket"])
	assert.Equal(t, "notes/test.md", captured.query["name"])
}
