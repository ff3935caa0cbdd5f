package storage

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/smithy-go"
	smithyhttp "github.com/aws/smithy-go/transport/http"
)

func TestParseURI(t *testing.T) {
	tests := []struct {
		uri     string
		bucket  string
		key     string
		wantErr bool
	}{
		{uri: "s3://models/fake-news/v2.json", bucket: "models", key: "fake-news/v2.json"},
		{uri: "s3://bucket/key", bucket: "bucket", key: "key"},
		{uri: "https://example.com/file", wantErr: true},
		{uri: "s3://bucket-only", wantErr: true},
		{uri: "s3:///no-bucket", wantErr: true},
	}

	for _, tt := range tests {
		bucket, key, err := ParseURI(tt.uri)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseURI(%q): expected error", tt.uri)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseURI(%q): %v", tt.uri, err)
			continue
		}
		if bucket != tt.bucket || key != tt.key {
			t.Errorf("ParseURI(%q) = (%q, %q), want (%q, %q)", tt.uri, bucket, key, tt.bucket, tt.key)
		}
	}
}

func TestIsNotFound(t *testing.T) {
	notFound404 := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: 404}},
			Err:      errors.New("not found"),
		},
	}
	forbidden := &awshttp.ResponseError{
		ResponseError: &smithyhttp.ResponseError{
			Response: &smithyhttp.Response{Response: &http.Response{StatusCode: 403}},
			Err:      errors.New("forbidden"),
		},
	}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "http 404", err: notFound404, want: true},
		{name: "wrapped http 404", err: fmt.Errorf("head object: %w", notFound404), want: true},
		{name: "NotFound api error", err: &smithy.GenericAPIError{Code: "NotFound", Message: "no such key"}, want: true},
		{name: "http 403", err: forbidden, want: false},
		{name: "AccessDenied api error", err: &smithy.GenericAPIError{Code: "AccessDenied", Message: "denied"}, want: false},
		{name: "plain error", err: errors.New("dial tcp: timeout"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isNotFound(tt.err); got != tt.want {
				t.Fatalf("isNotFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
