// Package ingestproto описывает HTTP-протокол ingestion API: пути, имена полей формы и типы содержимого.
package ingestproto

// Пути ingestion API.
const (
	IngestRequestsPath   = "/api/v1/ingest-requests"
	IngestRequestIDParam = "ingestRequestID"
	IngestRequestPath    = IngestRequestsPath + "/{" + IngestRequestIDParam + "}"
	MaterialListPath     = "/api/v1/material-list-requests"
)

// Поля multipart-формы второго шага рукопожатия.
const (
	FieldTitle    = "title"
	FieldMaterial = "material"
)

// Типы содержимого и значения по умолчанию для пустого материала.
const (
	ContentTypeJSON        = "application/json"
	ContentTypeOctetStream = "application/octet-stream"
	DefaultMaterialName    = "material"
)
