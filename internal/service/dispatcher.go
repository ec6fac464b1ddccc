package service

import (
	"context"
	"encoding/json"
	"errors"
	"github.com/kbsync/minio-listener/internal/domain"
)

// Knowledge is implemented by the collaborator that keeps the knowledge store
// in sync with the bucket.
type Knowledge interface {
	AddFile(ctx context.Context, key string, bucket string) error
	RemoveFile(ctx context.Context, key string, bucket string) error
}

type DispatchResult struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Dispatcher routes notification records to the knowledge collaborator. It is
// stateless and safe for concurrent use; records within one payload are
// handled strictly in array order.
type Dispatcher struct {
	knowledge Knowledge
	filters   *FilterStore
}

func NewDispatcher(knowledge Knowledge, filters *FilterStore) *Dispatcher {
	return &Dispatcher{
		knowledge: knowledge,
		filters:   filters,
	}
}

// HandleNotification parses one webhook body and dispatches every record. A
// non-nil error is returned only when the payload itself cannot be used, and
// in that case no collaborator is invoked. Per-record failures are logged,
// counted, and never abort the rest of the batch.
func (d *Dispatcher) HandleNotification(ctx context.Context, body []byte) (DispatchResult, error) {
	var envelope domain.NotificationEnvelope
	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return DispatchResult{}, MalformedPayloadError{base: err}
	}

	if len(envelope.Records) == 0 {
		return DispatchResult{}, MalformedPayloadError{base: errors.New("payload contains no records")}
	}

	var result DispatchResult
	for _, record := range envelope.Records {
		result.Processed++

		event := domain.Classify(record.EventName)
		bucket := record.S3.Bucket.Name

		if event == domain.EventUnknown {
			logger.Infof("Skipping record with unhandled event %s for bucket %s", record.EventName, bucket)
			result.Skipped++
			continue
		}

		key, err := record.S3.Object.DecodedKey()
		if err != nil {
			recordErr := RecordError{bucket: bucket, key: record.S3.Object.Key, event: event.String(), base: err}
			logger.Error(recordErr)
			result.Failed++
			continue
		}

		if !d.filters.Matches(bucket, key) {
			logger.Debugf("Skipping %s/%s: filtered out", bucket, key)
			result.Skipped++
			continue
		}

		switch event {
		case domain.EventCreated:
			logger.Infof("Adding %s/%s to knowledge store", bucket, key)
			err = d.knowledge.AddFile(ctx, key, bucket)
		case domain.EventRemoved:
			logger.Infof("Removing %s/%s from knowledge store", bucket, key)
			err = d.knowledge.RemoveFile(ctx, key, bucket)
		}

		if err != nil {
			recordErr := RecordError{bucket: bucket, key: key, event: event.String(), base: err}
			logger.Error(recordErr)
			result.Failed++
			continue
		}

		result.Succeeded++
	}

	return result, nil
}
