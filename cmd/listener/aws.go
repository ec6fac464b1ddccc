package main

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/kbsync/minio-listener/internal/settings"
)

func minioEndpointResolver(cfg *settings.Config) aws.EndpointResolverWithOptionsFunc {
	return func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL:               cfg.MinioEndpoint,
			HostnameImmutable: true,
		}, nil
	}
}

func NewS3Client(cfg *settings.Config) *s3.Client {
	config := aws.Config{
		Region:                      cfg.MinioRegion,
		Credentials:                 credentials.NewStaticCredentialsProvider(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		EndpointResolverWithOptions: minioEndpointResolver(cfg),
	}

	// MinIO does not serve virtual-hosted bucket URLs
	return s3.NewFromConfig(config, func(options *s3.Options) {
		options.UsePathStyle = true
	})
}
