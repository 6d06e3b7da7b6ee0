package client

import (
	"context"
	"sync"
)

type File struct {
	Name        string
	Data        []byte
	ContentType string
}

// UploadOutcome reports one file's result, so a batch failure names exactly
// which files did not make it.
type UploadOutcome struct {
	Name string
	Path string
	URL  string
	Err  error
}

// UploadBatch uploads files with bounded concurrency and returns one outcome
// per input, in input order. Failures do not abort the rest of the batch and
// nothing is rolled back; already-stored files stay stored.
func (c *Client) UploadBatch(ctx context.Context, bucket string, files []File, concurrency int) []UploadOutcome {
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]UploadOutcome, len(files))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		go func(i int, file File) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			outcome := UploadOutcome{Name: file.Name}
			if err := ctx.Err(); err != nil {
				outcome.Err = err
			} else {
				result, err := c.Upload(ctx, bucket, file.Name, file.Data, file.ContentType)
				if err != nil {
					outcome.Err = err
				} else {
					outcome.Path = result.Path
					outcome.URL = result.PublicURL
				}
			}
			outcomes[i] = outcome
		}(i, file)
	}

	wg.Wait()
	return outcomes
}

// UploadAndRefresh runs a batch upload against the view's bucket and then
// reconciles the view with server state.
func (v *BucketView) UploadAndRefresh(ctx context.Context, files []File, concurrency int) ([]UploadOutcome, error) {
	outcomes := v.client.UploadBatch(ctx, v.bucket, files, concurrency)
	if err := v.Refresh(ctx); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}
