package datastore

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-visualiser/internal/domain"
)

const s3Scheme = "s3://"

// ObjectGetter é o subconjunto do cliente S3 usado na carga
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// ParseS3URI separa bucket e chave de um endereço s3://bucket/chave
func ParseS3URI(uri string) (bucket, key string, ok bool) {
	if !strings.HasPrefix(uri, s3Scheme) {
		return "", "", false
	}

	bucket, key, found := strings.Cut(strings.TrimPrefix(uri, s3Scheme), "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}

// NewS3Client cria um cliente S3 com a cadeia de credenciais padrão da AWS
func NewS3Client(ctx context.Context, region string) (*s3.Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao carregar configuração da AWS")
	}
	return s3.NewFromConfig(cfg), nil
}

// LoadS3Object lê a tabela de vendas de um objeto CSV no S3
func LoadS3Object(ctx context.Context, client ObjectGetter, bucket, key string) ([]domain.SalesRecord, error) {
	source := s3Scheme + bucket + "/" + key

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		var noSuchBucket *types.NoSuchBucket
		if errors.As(err, &noSuchKey) || errors.As(err, &noSuchBucket) {
			return nil, newStartupDataError(errors.Wrap(ErrSourceNotFound, err.Error()), source, 0)
		}
		return nil, newStartupDataError(errors.Wrap(ErrUnreadable, err.Error()), source, 0)
	}
	defer out.Body.Close()

	return ParseCSV(out.Body, source)
}
