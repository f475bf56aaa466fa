package terminalui

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

// sniffLen — сколько байт читать для определения типа по содержимому.
const sniffLen = 512

// TextField — текстовое поле с названием материала.
type TextField struct {
	mu    sync.Mutex
	value string
}

func (f *TextField) Set(v string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
}

func (f *TextField) Value() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *TextField) Clear() {
	f.Set("")
}

// FileField — поле выбора файла на локальном диске.
type FileField struct {
	mu       sync.Mutex
	selected *models.Material
}

// Select проверяет путь и запоминает файл. Каталоги и отсутствующие файлы отклоняются,
// прежнее значение при этом сохраняется.
func (f *FileField) Select(path string) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return fmt.Errorf("file path is empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}

	contentType, err := detectContentType(path)
	if err != nil {
		return err
	}

	m := &models.Material{
		FileName:    filepath.Base(path),
		ContentType: contentType,
		Size:        info.Size(),
		Open: func() (io.ReadCloser, error) {
			return os.Open(path)
		},
	}

	f.mu.Lock()
	f.selected = m
	f.mu.Unlock()

	return nil
}

func (f *FileField) Selected() *models.Material {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.selected
}

func (f *FileField) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.selected = nil
}

// detectContentType берёт тип по расширению, затем по первым байтам файла.
func detectContentType(path string) (string, error) {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct, nil
	}

	fh, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer fh.Close()

	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(fh, buf)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", err
	}
	if n == 0 {
		return ingestproto.ContentTypeOctetStream, nil
	}

	return http.DetectContentType(buf[:n]), nil
}
