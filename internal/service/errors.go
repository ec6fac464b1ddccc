package service

import (
	"fmt"
)

type MalformedPayloadError struct {
	base error
}

func (e MalformedPayloadError) Error() string {
	return "Unable to parse notification payload: " + e.base.Error()
}

func (e MalformedPayloadError) Unwrap() error {
	return e.base
}

type RecordError struct {
	bucket string
	key    string
	event  string
	base   error
}

func (e RecordError) Error() string {
	return fmt.Sprintf("Unable to process %s record for %s/%s: %v", e.event, e.bucket, e.key, e.base)
}

func (e RecordError) Unwrap() error {
	return e.base
}

type LoadError struct {
	path string
	base error
}

func (e LoadError) Error() string {
	return fmt.Sprintf("Unable to load filter rules from %s: %v", e.path, e.base)
}

type DecodeError struct {
	path string
	base error
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("Unable to decode file at %s from yaml: %v", e.path, e.base)
}

type KnowledgeApiError struct {
	operation string
	status    int
}

func (e KnowledgeApiError) Error() string {
	return fmt.Sprintf("Knowledge API returned status %d for %s", e.status, e.operation)
}
