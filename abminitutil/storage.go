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

package abminitutil

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/sirupsen/logrus"
	"gocloud.dev/blob"
)

// maxRetries bounds the exponential backoff applied to blob reads and
// writes. Remote buckets fail transiently; local files fail fast anyway.
const maxRetries = 4

// readAll reads the blob at key, retrying transient failures.
func readAll(ctx context.Context, bucket *blob.Bucket, key string) ([]byte, error) {
	var b []byte
	err := backoff.RetryNotify(
		func() error {
			var err error
			b, err = bucket.ReadAll(ctx, key)
			return err
		},
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries),
		func(err error, d time.Duration) {
			logrus.WithField("key", key).Warnf("read failed, retrying in %v: %v", d, err)
		},
	)
	if err != nil {
		return nil, fmt.Errorf("abminitutil: reading %s: %v", key, err)
	}
	return b, nil
}

// writeAll writes data to the blob at key, retrying transient failures.
func writeAll(ctx context.Context, bucket *blob.Bucket, key string, data []byte) error {
	err := backoff.RetryNotify(
		func() error {
			return bucket.WriteAll(ctx, key, data, nil)
		},
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), maxRetries),
		func(err error, d time.Duration) {
			logrus.WithField("key", key).Warnf("write failed, retrying in %v: %v", d, err)
		},
	)
	if err != nil {
		return fmt.Errorf("abminitutil: writing %s: %v", key, err)
	}
	return nil
}
