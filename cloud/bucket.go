/*
Copyright © 2023 the abminit authors.
This file is part of abminit.

abminit is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

abminit is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with abminit.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package cloud opens the blob storage locations that hold sample tables
// and converted initialization files.
package cloud

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/gcsblob"
	"gocloud.dev/blob/s3blob"
	"gocloud.dev/gcp"
)

// IsBlob reports whether the given location names a remote blob store
// (i.e., it starts with `s3://` or `gs://`); other locations are treated
// as local directories.
func IsBlob(location string) bool {
	return strings.HasPrefix(location, "s3://") || strings.HasPrefix(location, "gs://")
}

// OpenBucket returns the blob storage bucket for a working location in
// the format 'provider://name'. The accepted providers are "file" for
// the local filesystem (locations without a scheme are also treated as
// local directories), "s3" for AWS S3, and "gs" for Google Cloud
// Storage.
func OpenBucket(ctx context.Context, location string) (*blob.Bucket, error) {
	u, err := url.Parse(location)
	if err != nil {
		return nil, fmt.Errorf("cloud.OpenBucket: %v", err)
	}
	switch u.Scheme {
	case "", "file":
		return fileblob.OpenBucket(filepath.Join(u.Host, u.Path), nil)
	case "s3":
		return s3Bucket(ctx, u.Host)
	case "gs":
		return gsBucket(ctx, u.Host)
	default:
		return nil, fmt.Errorf("cloud.OpenBucket: invalid provider %s", u.Scheme)
	}
}

// s3Bucket opens an S3 bucket. Credentials come from the environment
// (AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY) or the shared credentials
// file; AWS_REGION overrides the default region.
func s3Bucket(ctx context.Context, name string) (*blob.Bucket, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "us-east-1"
	}
	s, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, fmt.Errorf("cloud: creating AWS session: %v", err)
	}
	return s3blob.OpenBucket(ctx, s, name, nil)
}

// gsBucket opens a Google Cloud Storage bucket using the default
// credentials; see
// https://cloud.google.com/docs/authentication/getting-started.
func gsBucket(ctx context.Context, name string) (*blob.Bucket, error) {
	creds, err := gcp.DefaultCredentials(ctx)
	if err != nil {
		return nil, err
	}
	c, err := gcp.NewHTTPClient(gcp.DefaultTransport(), gcp.CredentialsTokenSource(creds))
	if err != nil {
		return nil, err
	}
	return gcsblob.OpenBucket(ctx, c, name, nil)
}
