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

package cloud

import (
	"context"
	"testing"
)

func TestIsBlob(t *testing.T) {
	cases := []struct {
		location string
		want     bool
	}{
		{"s3://bucket", true},
		{"gs://bucket", true},
		{"file:///tmp/data", false},
		{"/tmp/data", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsBlob(c.location); got != c.want {
			t.Errorf("IsBlob(%q): got %v, want %v", c.location, got, c.want)
		}
	}
}

func TestOpenBucketFile(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	bucket, err := OpenBucket(ctx, "file://"+dir)
	if err != nil {
		t.Fatal(err)
	}
	defer bucket.Close()

	if err := bucket.WriteAll(ctx, "a/b.txt", []byte("hello"), nil); err != nil {
		t.Fatal(err)
	}
	b, err := bucket.ReadAll(ctx, "a/b.txt")
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "hello" {
		t.Errorf("read back: got %q, want hello", b)
	}
}

func TestOpenBucketInvalidProvider(t *testing.T) {
	if _, err := OpenBucket(context.Background(), "ftp://bucket"); err == nil {
		t.Fatal("expected error for unsupported provider")
	}
}
