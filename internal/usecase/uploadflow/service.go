package uploadflow

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/ingestclient"
)

type (
	// TextInput поле с названием материала
	TextInput interface {
		Value() string
		Clear()
	}

	// FileInput поле выбора файла; nil означает, что файл не выбран
	FileInput interface {
		Selected() *models.Material
		Clear()
	}

	// StatusDisplay баннер обратной связи
	StatusDisplay interface {
		Show(feedback string, state models.FeedbackState)
	}

	// Service одна операция: отправить форму.
	Service interface {
		Submit(ctx context.Context) Outcome
	}
)

// Deps — фиксированный набор UI-хэндлов и клиент, к которым привязан поток на всё время жизни.
type Deps struct {
	Client ingestclient.Client
	Title  TextInput
	File   FileInput
	Status StatusDisplay
	Logger *slog.Logger
}

type Flow struct {
	Deps
	inFlight atomic.Bool
}

// New конструирует поток загрузки с заданными зависимостями.
func New(deps Deps) *Flow {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	return &Flow{Deps: deps}
}

var _ Service = (*Flow)(nil)
