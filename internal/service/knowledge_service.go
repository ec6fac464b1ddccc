package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"io"
	"net/http"
	"net/url"
	"time"
)

type Config interface {
	KnowledgeEndpoint() string
	KnowledgeId() string
	FilterPath() string
}

// ObjectStore is the part of the s3 client needed to fetch object content.
type ObjectStore interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type document struct {
	KnowledgeId string `json:"knowledgeId"`
	Bucket      string `json:"bucket"`
	Name        string `json:"name"`
	Content     []byte `json:"content,omitempty"`
}

// KnowledgeService synchronizes bucket objects into a knowledge store: added
// objects are fetched from storage and posted to the store's document API,
// removed objects are deleted from it.
type KnowledgeService struct {
	cfg    Config
	store  ObjectStore
	client *http.Client
}

func NewKnowledgeService(cfg Config, store ObjectStore) *KnowledgeService {
	return &KnowledgeService{
		cfg:   cfg,
		store: store,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

func (service *KnowledgeService) AddFile(ctx context.Context, key string, bucket string) error {
	output, err := service.store.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("unable to fetch %s/%s from storage: %w", bucket, key, err)
	}
	defer output.Body.Close()

	content, err := io.ReadAll(output.Body)
	if err != nil {
		return fmt.Errorf("unable to read %s/%s from storage: %w", bucket, key, err)
	}

	doc := document{
		KnowledgeId: service.cfg.KnowledgeId(),
		Bucket:      bucket,
		Name:        key,
		Content:     content,
	}

	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, service.documentsUrl(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	request.Header.Set("Content-Type", "application/json")

	return service.send(request, "add")
}

func (service *KnowledgeService) RemoveFile(ctx context.Context, key string, bucket string) error {
	query := url.Values{}
	query.Set("knowledgeId", service.cfg.KnowledgeId())
	query.Set("bucket", bucket)
	query.Set("name", key)

	request, err := http.NewRequestWithContext(ctx, http.MethodDelete, service.documentsUrl()+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}

	return service.send(request, "remove")
}

func (service *KnowledgeService) documentsUrl() string {
	return service.cfg.KnowledgeEndpoint() + "/documents"
}

func (service *KnowledgeService) send(request *http.Request, operation string) error {
	response, err := service.client.Do(request)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return KnowledgeApiError{operation: operation, status: response.StatusCode}
	}

	return nil
}
