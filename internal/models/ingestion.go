package models

import "time"

// Ingestion — то, что стаб запомнил о принятом материале. Само содержимое не хранится.
type Ingestion struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	FileName    string    `json:"file_name,omitempty"`
	ContentType string    `json:"content_type,omitempty"`
	Size        int64     `json:"size"`
	Sha256      string    `json:"sha256"`
	IngestedAt  time.Time `json:"ingested_at"`
	// Seq — порядковый номер приёма внутри хранилища.
	Seq uint64 `json:"seq"`
}

// IngestSession — серверная сессия одной попытки загрузки.
type IngestSession struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Consumed  bool       `json:"consumed"`
	Ingestion *Ingestion `json:"ingestion,omitempty"`
}

// Clone возвращает копию, чтобы не делиться указателем на Ingestion.
func (s IngestSession) Clone() IngestSession {
	out := s
	if s.Ingestion != nil {
		ing := *s.Ingestion
		out.Ingestion = &ing
	}
	return out
}

// IDNameEntity — элемент списка загруженных материалов.
type IDNameEntity struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type (
	SortField     string
	SortDirection string
)

const (
	SortByID   SortField = "id"
	SortByName SortField = "name"

	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Pagination — тело запроса списка материалов. Отрицательные значения означают «без ограничений».
type Pagination struct {
	PageSize int                         `json:"page_size"`
	PageNum  int                         `json:"page_num"`
	Sorts    map[SortField]SortDirection `json:"sorts,omitempty"`
}
