package ingestclient

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"strings"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/ingestproto"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// newMaterialBody стримит multipart-форму через pipe, не буферизуя файл целиком.
// Если материала нет, в поле material уходит пустой octet-stream блоб.
func newMaterialBody(title string, material *models.Material) (io.ReadCloser, string) {
	if material == nil || material.Open == nil {
		material = models.EmptyMaterial(ingestproto.DefaultMaterialName, ingestproto.ContentTypeOctetStream)
	}

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		pw.CloseWithError(writeMaterialForm(mw, title, material))
	}()

	return pr, mw.FormDataContentType()
}

func writeMaterialForm(mw *multipart.Writer, title string, material *models.Material) error {
	if err := mw.WriteField(ingestproto.FieldTitle, title); err != nil {
		return err
	}

	name := material.FileName
	if name == "" {
		name = ingestproto.DefaultMaterialName
	}
	contentType := material.ContentType
	if contentType == "" {
		contentType = ingestproto.ContentTypeOctetStream
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		ingestproto.FieldMaterial, quoteEscaper.Replace(name)))
	header.Set("Content-Type", contentType)

	part, err := mw.CreatePart(header)
	if err != nil {
		return err
	}

	src, err := material.Open()
	if err != nil {
		return fmt.Errorf("open material: %w", err)
	}
	defer src.Close()

	if _, err = io.Copy(part, src); err != nil {
		return fmt.Errorf("copy material: %w", err)
	}

	return mw.Close()
}
