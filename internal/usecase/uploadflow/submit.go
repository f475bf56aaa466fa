package uploadflow

import (
	"context"
	"errors"
	"fmt"

	"github.com/yourname/ingest_lite/internal/models"
)

const msgSuccess = "Upload successful!"

// Submit проверяет форму, выполняет рукопожатие из двух запросов и отражает результат в баннере.
// Любая ошибка завершает попытку; форма при этом не очищается.
func (f *Flow) Submit(ctx context.Context) Outcome {
	if !f.inFlight.CompareAndSwap(false, true) {
		f.Logger.Warn("upload rejected, another attempt is in flight")
		return Outcome{Status: Rejected, Err: models.ErrUploadInProgress}
	}
	defer f.inFlight.Store(false)

	form, err := f.readForm()
	if err != nil {
		return f.fail(err)
	}

	f.Status.Show(fmt.Sprintf("Processing upload of %q...", form.Title), models.FeedbackNeutral)

	if err = f.upload(ctx, form); err != nil {
		return f.fail(err)
	}

	f.Status.Show(msgSuccess, models.FeedbackSuccess)
	f.Title.Clear()
	f.File.Clear()

	return Outcome{Status: Succeeded, Message: msgSuccess}
}

// upload держит идентификатор сессии только в локальной переменной одной попытки.
func (f *Flow) upload(ctx context.Context, form models.UploadForm) error {
	log := f.Logger.With("title", form.Title)

	log.Info("requesting an ingestion session")
	sessionID, err := f.Client.OpenSession(ctx)
	if err != nil {
		return err
	}
	log = log.With("session_id", sessionID)
	log.Info("ingestion session acquired")

	log.Debug("posting content", "file_name", form.Material.FileName, "content_type", form.Material.ContentType)
	if err = f.Client.SubmitContent(ctx, sessionID, form.Title, form.Material); err != nil {
		return err
	}
	log.Info("content uploaded successfully")

	return nil
}

func (f *Flow) fail(err error) Outcome {
	msg := feedbackFor(err)
	f.Logger.Error("upload failed", "err", err)
	f.Status.Show(msg, models.FeedbackError)

	return Outcome{Status: Failed, Message: msg, Err: err}
}

// feedbackFor превращает ошибку любого вида в текст для пользователя.
func feedbackFor(err error) string {
	var (
		ve *models.ValidationError
		te *models.TransportError
		ae *models.APIError
	)
	switch {
	case errors.Is(err, context.Canceled):
		return "Upload cancelled"
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &te):
		if te.StatusCode == 0 {
			return "Upload failed: " + te.Detail()
		}
		return "Upload failed with status " + te.Detail()
	case errors.As(err, &ae):
		return "Upload failed: " + ae.Message
	default:
		return "Upload failed: " + err.Error()
	}
}
