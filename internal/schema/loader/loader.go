package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/goliatone/go-jsonform/pkg/schema"
)

var (
	// ErrHTTPDisabled is returned for URL sources when no client was configured.
	ErrHTTPDisabled = errors.New("schema loader: http support disabled")
	// ErrUnsupportedSource is returned for sources no strategy can read.
	ErrUnsupportedSource = errors.New("schema loader: unsupported source kind")
)

// maxDocumentBytes bounds remote payloads; form schemas are small.
const maxDocumentBytes = 4 << 20

// Loader implements schema.Loader by delegating to file, fs.FS or HTTP
// strategies.
type Loader struct {
	files   fs.FS
	client  *http.Client
	timeout time.Duration
}

var _ schema.Loader = (*Loader)(nil)

// New constructs a Loader from resolved options.
func New(options schema.LoaderOptions) *Loader {
	timeout := options.RequestTimeout

	var client *http.Client
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if timeout > 0 && clone.Timeout == 0 {
			clone.Timeout = timeout
		}
		client = &clone
	case options.AllowHTTPFallback:
		client = &http.Client{Timeout: timeout}
	}

	return &Loader{
		files:   options.FileSystem,
		client:  client,
		timeout: timeout,
	}
}

// Load fetches the document behind src.
func (l *Loader) Load(ctx context.Context, src schema.Source) (schema.Document, error) {
	if src == nil {
		return schema.Document{}, errors.New("schema loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return schema.Document{}, err
	}

	var (
		data []byte
		err  error
	)
	switch src.Kind() {
	case schema.SourceKindFile:
		data, err = readFile(src.Location())
	case schema.SourceKindFS:
		data, err = readFS(l.files, src.Location())
	case schema.SourceKindURL:
		if l.client == nil {
			return schema.Document{}, ErrHTTPDisabled
		}
		data, err = fetch(ctx, l.client, src.Location(), l.timeout)
	default:
		err = fmt.Errorf("%w: %s", ErrUnsupportedSource, src.Kind())
	}
	if err != nil {
		return schema.Document{}, err
	}

	return schema.NewDocument(src, data)
}
