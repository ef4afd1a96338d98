package storage

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/phambaophuc/texture-resizer/internal/models"
)

// UploadFile is one file of an UploadMultiple call.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// UploadMultiple uploads files concurrently. The returned URLs keep the input
// order; failed uploads leave an empty URL and are summarised in the error.
func (s *StorageService) UploadMultiple(ctx context.Context, files []UploadFile) ([]string, error) {
	if len(files) == 0 {
		return []string{}, nil
	}

	urls := make([]string, len(files))
	errs := make([]error, len(files))

	numWorkers := 5
	if len(files) < numWorkers {
		numWorkers = len(files)
	}

	jobs := make(chan int, len(files))
	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				urls[i], errs[i] = s.Upload(ctx, files[i].Data, files[i].Filename, files[i].ContentType)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()

	var failedUploads []string
	for i, err := range errs {
		if err != nil {
			failedUploads = append(failedUploads, fmt.Sprintf("file %d: %v", i, err))
		}
	}

	if len(failedUploads) > 0 {
		return urls, fmt.Errorf("failed to upload %d files: %s",
			len(failedUploads), strings.Join(failedUploads, "; "))
	}

	return urls, nil
}

// UploadBatch uploads the successful items of a batch resize.
func (s *StorageService) UploadBatch(ctx context.Context, names []string, images []models.BatchImage) ([]string, error) {
	files := make([]UploadFile, 0, len(images))
	index := make([]int, 0, len(images))
	for i, img := range images {
		if img.Buffer == nil {
			continue
		}
		files = append(files, UploadFile{
			Filename:    names[i],
			ContentType: "image/" + img.Format,
			Data:        img.Buffer.Bytes(),
		})
		index = append(index, i)
	}

	uploaded, err := s.UploadMultiple(ctx, files)
	urls := make([]string, len(images))
	for j, i := range index {
		if j < len(uploaded) {
			urls[i] = uploaded[j]
		}
	}
	return urls, err
}
