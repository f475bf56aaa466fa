package uploadflow

import "github.com/yourname/ingest_lite/internal/models"

// readForm снимает значения с хэндлов и проверяет их. Название проверяется первым.
func (f *Flow) readForm() (models.UploadForm, error) {
	form := models.UploadForm{Title: f.Title.Value()}
	if form.Title == "" {
		return form, &models.ValidationError{Field: "title", Message: models.MsgEmptyTitle}
	}

	form.Material = f.File.Selected()
	if form.Material == nil {
		return form, &models.ValidationError{Field: "material", Message: models.MsgNoMaterial}
	}

	return form, nil
}
