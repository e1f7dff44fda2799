package datastore

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectGetter struct {
	body  string
	err   error
	input *s3.GetObjectInput
}

func (f *fakeObjectGetter) GetObject(_ context.Context, params *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(strings.NewReader(f.body))}, nil
}

func TestParseS3URI(t *testing.T) {
	tests := []struct {
		uri    string
		bucket string
		key    string
		ok     bool
	}{
		{uri: "s3://sales/data/processed.csv", bucket: "sales", key: "data/processed.csv", ok: true},
		{uri: "s3://sales/", ok: false},
		{uri: "s3://sales", ok: false},
		{uri: "data/processed_data.csv", ok: false},
	}

	for _, tt := range tests {
		bucket, key, ok := ParseS3URI(tt.uri)
		assert.Equal(t, tt.ok, ok, tt.uri)
		assert.Equal(t, tt.bucket, bucket, tt.uri)
		assert.Equal(t, tt.key, key, tt.uri)
	}
}

func TestLoadS3Object(t *testing.T) {
	client := &fakeObjectGetter{body: validCSV}

	records, err := LoadS3Object(context.Background(), client, "sales", "processed.csv")
	require.NoError(t, err)
	assert.Len(t, records, 3)
	assert.Equal(t, "sales", aws.ToString(client.input.Bucket))
	assert.Equal(t, "processed.csv", aws.ToString(client.input.Key))
}

func TestLoadS3Object_NotFound(t *testing.T) {
	client := &fakeObjectGetter{err: &types.NoSuchKey{}}

	_, err := LoadS3Object(context.Background(), client, "sales", "missing.csv")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSourceNotFound))

	var startupErr *StartupDataError
	require.True(t, errors.As(err, &startupErr))
	assert.Equal(t, "s3://sales/missing.csv", startupErr.Source)
}

func TestLoadS3Object_Unreadable(t *testing.T) {
	client := &fakeObjectGetter{err: errors.New("access denied")}

	_, err := LoadS3Object(context.Background(), client, "sales", "processed.csv")
	assert.True(t, errors.Is(err, ErrUnreadable))
}
