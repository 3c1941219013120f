package util

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// S3Uploader : subida en segundo plano de archivos de versiones al pre-signed
// PUT URL. El archivo temporal se borra al terminar, con o sin éxito.
type S3Uploader struct {
	client   *http.Client
	wg       sync.WaitGroup
	errors   chan error
	progress chan int64
}

func NewS3Uploader() *S3Uploader {
	return &S3Uploader{
		client: &http.Client{
			Timeout: 60 * time.Minute, // archivos grandes
		},
		errors:   make(chan error, 10),
		progress: make(chan int64, 100),
	}
}

// UploadFileAsync : lanza la subida sin bloquear al handler
func (u *S3Uploader) UploadFileAsync(presignedURL string, filePath string) {
	u.wg.Add(1)

	go func() {
		defer u.wg.Done()

		err := u.uploadFile(presignedURL, filePath)
		if err != nil {
			u.errors <- fmt.Errorf("error subiendo %s: %w", filepath.Base(filePath), err)
		} else {
			u.progress <- -1 // señal de subida completada
		}
	}()
}

func (u *S3Uploader) uploadFile(presignedURL string, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("error abriendo el archivo: %w", err)
	}
	defer file.Close()
	defer os.Remove(filePath)

	fileInfo, err := file.Stat()
	if err != nil {
		return fmt.Errorf("error consultando el archivo: %w", err)
	}

	req, err := http.NewRequest("PUT", presignedURL, file)
	if err != nil {
		return fmt.Errorf("error creando el request: %w", err)
	}

	req.ContentLength = fileInfo.Size()
	req.Header.Set("Content-Type", getContentType(filePath))

	resp, err := u.client.Do(req)
	if err != nil {
		return fmt.Errorf("error ejecutando el request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("subida rechazada: status %d, respuesta: %s", resp.StatusCode, string(body))
	}

	return nil
}

// getContentType : MIME type según la extensión del archivo
func getContentType(filename string) string {
	switch filepath.Ext(filename) {
	case ".txt":
		return "text/plain"
	case ".pdf":
		return "application/pdf"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".zip":
		return "application/zip"
	case ".doc":
		return "application/msword"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	default:
		return "application/octet-stream"
	}
}

// Wait : espera todas las subidas pendientes y devuelve el primer error
func (u *S3Uploader) Wait() error {
	u.wg.Wait()
	close(u.errors)
	close(u.progress)

	if len(u.errors) > 0 {
		return <-u.errors
	}
	return nil
}

func (u *S3Uploader) Errors() <-chan error {
	return u.errors
}

func (u *S3Uploader) Progress() <-chan int64 {
	return u.progress
}
