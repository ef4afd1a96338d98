package processor

import (
	"fmt"
	"sync"

	"github.com/phambaophuc/texture-resizer/internal/models"
)

// BatchResize resizes every image in files to the same request using a
// bounded worker pool. Results keep the input order; failures are reported
// per item.
func (p *ImageProcessor) BatchResize(files [][]byte, req *models.ResizeRequest) []models.BatchImage {
	results := make([]models.BatchImage, len(files))
	if len(files) == 0 {
		return results
	}

	jobs := make(chan int, len(files))

	numWorkers := DefaultWorkers
	if len(files) < numWorkers {
		numWorkers = len(files)
	}

	var wg sync.WaitGroup

	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.processImageJob(i, files[i], req)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results
}

func (p *ImageProcessor) processImageJob(i int, data []byte, req *models.ResizeRequest) models.BatchImage {
	buffer, format, _, err := p.ResizeImage(data, req)
	if err != nil {
		return models.BatchImage{
			Error: fmt.Sprintf("failed to process image %d: %v", i, err),
		}
	}

	return models.BatchImage{
		Buffer:   buffer,
		Format:   format,
		FileSize: int64(buffer.Len()),
	}
}
