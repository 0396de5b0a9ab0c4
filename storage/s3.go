package storage

import (
	"fmt"

	"github.com/ruteri/storage-url/interfaces"
)

const paramGzip = "gzip"

// createS3Config builds an S3 or S3-compatible storage descriptor.
// URL format: s3://bucket-name[/location][?gzip=true]
// The location keeps its leading slash. gzip is stored as a boolean.
func createS3Config(u interfaces.StorageURL) (interfaces.StorageConfig, error) {
	options := interfaces.Options{
		"bucket_name": interfaces.NewStringOption(u.Authority),
	}

	if u.Path != "" {
		options["location"] = interfaces.NewStringOption(u.Path)
	}

	if u.HasParam(paramGzip) {
		gzip, err := ParseBool(u.GetParam(paramGzip))
		if err != nil {
			return interfaces.StorageConfig{}, fmt.Errorf("%s: %w", paramGzip, err)
		}
		options[paramGzip] = interfaces.NewBoolOption(gzip)
	}

	return interfaces.StorageConfig{
		Backend: interfaces.S3StorageClass,
		Kind:    interfaces.S3Backend,
		Options: options,
	}, nil
}
