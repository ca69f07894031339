// Package fileio loads the two files biodiff compares, transparently
// decompressing gzip-suffixed inputs, grounded on
// pileup.LoadFa/encoding/bam/shardedbam.go's identical
// file.Open+gzip.NewReader pattern.
package fileio

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/grailbio/base/file"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
)

// Load opens path (any scheme github.com/grailbio/base/file
// registers -- local paths work out of the box) and reads its full
// contents, transparently gunzipping when the path ends in ".gz".
func Load(ctx context.Context, path string) ([]byte, error) {
	f, err := file.Open(ctx, path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", path)
	}
	defer func() { _ = f.Close(ctx) }()

	var reader io.Reader = f.Reader(ctx)
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(reader)
		if err != nil {
			return nil, errors.Wrapf(err, "decompressing %s", path)
		}
		defer gz.Close()
		reader = gz
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	return buf.Bytes(), nil
}
