package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNoImages distinguishes "nothing to upload" from a report with zero
// successes.
var ErrNoImages = NewDomainError("NOT_FOUND", "no image files found")

var imageMimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// mimeTypeFor falls back to a generic binary type. Unreachable behind
// the extension filter, but kept so the function is safe on its own.
func mimeTypeFor(fileName string) string {
	if mime, ok := imageMimeTypes[strings.ToLower(filepath.Ext(fileName))]; ok {
		return mime
	}
	return "application/octet-stream"
}

func isImageFile(name string) bool {
	if strings.HasPrefix(name, ".") {
		return false
	}
	_, ok := imageMimeTypes[strings.ToLower(filepath.Ext(name))]
	return ok
}

// UploadImagesUseCase pushes every image in a local directory to the
// public bucket. Files upload concurrently and independently; each
// outcome lands in its own slot, so one failure never blocks the rest.
type UploadImagesUseCase struct {
	Storage   ObjectStorage
	ImagesDir string
	KeyPrefix string
}

func NewUploadImagesUseCase(storage ObjectStorage, imagesDir, keyPrefix string) *UploadImagesUseCase {
	return &UploadImagesUseCase{
		Storage:   storage,
		ImagesDir: imagesDir,
		KeyPrefix: keyPrefix,
	}
}

type uploadResult struct {
	fileName string
	imageURL string
	imageKey string
	err      error
}

func (uc *UploadImagesUseCase) Execute(ctx context.Context) (*UploadImagesOutput, error) {
	entries, err := os.ReadDir(uc.ImagesDir)
	if err != nil {
		return nil, NewTechnicalError("FS_ERROR", fmt.Sprintf("reading %s: %v", uc.ImagesDir, err))
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && isImageFile(entry.Name()) {
			files = append(files, entry.Name())
		}
	}

	if len(files) == 0 {
		return nil, ErrNoImages
	}

	results := make([]uploadResult, len(files))
	var wg sync.WaitGroup

	for i, fileName := range files {
		wg.Add(1)
		go func(i int, fileName string) {
			defer wg.Done()
			results[i] = uc.uploadOne(ctx, fileName)
		}(i, fileName)
	}
	wg.Wait()

	output := &UploadImagesOutput{Successful: []UploadedImage{}}
	for _, res := range results {
		if res.err != nil {
			output.Failed = append(output.Failed, FailedUpload{
				FileName: res.fileName,
				Error:    res.err.Error(),
			})
			continue
		}
		output.Successful = append(output.Successful, UploadedImage{
			FileName: res.fileName,
			ImageURL: res.imageURL,
			ImageKey: res.imageKey,
		})
	}

	output.Message = fmt.Sprintf("Uploaded %d of %d images", len(output.Successful), len(files))
	return output, nil
}

func (uc *UploadImagesUseCase) uploadOne(ctx context.Context, fileName string) uploadResult {
	res := uploadResult{fileName: fileName}

	data, err := os.ReadFile(filepath.Join(uc.ImagesDir, fileName))
	if err != nil {
		res.err = err
		return res
	}

	key := uc.KeyPrefix + fileName
	if err := uc.Storage.Upload(ctx, key, data, mimeTypeFor(fileName)); err != nil {
		res.err = err
		return res
	}

	res.imageKey = key
	res.imageURL = uc.Storage.PublicURL(key)
	return res
}
