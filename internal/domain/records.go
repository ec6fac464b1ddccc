package domain

import (
	"errors"
	"net/url"
	"time"
)

type S3Object struct {
	Key       string `json:"key"`
	Size      int    `json:"size"`
	ETag      string `json:"eTag"`
	Sequencer string `json:"sequencer"`
}

// DecodedKey returns the object key with percent-escapes resolved. Storage
// systems percent-encode keys in notifications, notably spaces as '+'.
func (o S3Object) DecodedKey() (string, error) {
	key, err := url.QueryUnescape(o.Key)
	if err != nil {
		return "", err
	}

	if key == "" {
		return "", errors.New("object key is empty after decoding")
	}

	return key, nil
}

type S3BucketOwnerIdentity struct {
	PrincipalId string `json:"principalId"`
}

type S3Bucket struct {
	Name          string                `json:"name"`
	OwnerIdentity S3BucketOwnerIdentity `json:"ownerIdentity"`
	Arn           string                `json:"arn"`
}

type S3Record struct {
	S3SchemaVersion string   `json:"s3SchemaVersion"`
	ConfigurationId string   `json:"configurationId"`
	Bucket          S3Bucket `json:"bucket"`
	Object          S3Object `json:"object"`
}

type ResponseElements struct {
	RequestId string `json:"x-amz-request-id"`
	Id2       string `json:"x-amz-id-2"`
}

type RequestParameters struct {
	SourceIPAddress string `json:"sourceIPAddress"`
}

type UserIdentity struct {
	PrincipalId string `json:"principalId"`
}

type JsonTime time.Time

const timeFormat = "2006-01-02T15:04:05.999Z"

func (t JsonTime) MarshalJSON() ([]byte, error) {
	return []byte("\"" + time.Time(t).Format(timeFormat) + "\""), nil
}

func (t *JsonTime) UnmarshalJSON(bytes []byte) error {
	newTime, err := time.Parse(`"`+time.RFC3339Nano+`"`, string(bytes))
	if err != nil {
		return err
	}

	*t = JsonTime(newTime)
	return nil
}

// NotificationRecord is one object-level event inside a notification callback,
// following the AWS S3 notification content structure that MinIO emits.
type NotificationRecord struct {
	EventVersion      string            `json:"eventVersion"`
	EventSource       string            `json:"eventSource"`
	AwsRegion         string            `json:"awsRegion"`
	EventTime         JsonTime          `json:"eventTime"`
	EventName         string            `json:"eventName"`
	UserIdentity      UserIdentity      `json:"userIdentity"`
	RequestParameters RequestParameters `json:"requestParameters"`
	ResponseElements  ResponseElements  `json:"responseElements"`
	S3                S3Record          `json:"s3"`
}

// NotificationEnvelope is the body of one webhook call. MinIO capitalizes the
// field; json matching is case-insensitive so "records" parses as well.
type NotificationEnvelope struct {
	Records []NotificationRecord `json:"Records"`
}
