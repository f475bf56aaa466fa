package models

import (
	"bytes"
	"io"
)

// Material описывает выбранный пользователем файл. Содержимое открывается лениво,
// только на втором шаге рукопожатия.
type Material struct {
	FileName    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

// EmptyMaterial — пустой бинарный блоб, который уходит в поле material, если файла нет.
func EmptyMaterial(name, contentType string) *Material {
	return &Material{
		FileName:    name,
		ContentType: contentType,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(nil)), nil
		},
	}
}

// UploadForm — снимок полей формы на момент отправки.
type UploadForm struct {
	Title    string
	Material *Material
}
