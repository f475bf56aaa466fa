// Package ingesthttp реализует стаб ingestion API — HTTP-бэкенд, который принимает загрузки
// по двухшаговому рукопожатию и держит всё в памяти. Основные эндпоинты:
//   - POST /api/v1/ingest-requests — открывает сессию и возвращает её id в payload.
//   - POST /api/v1/ingest-requests/{id} — принимает multipart title + material, один раз на сессию.
//   - GET /api/v1/ingest-requests/{id} — отдаёт снимок сессии.
//   - POST /api/v1/material-list-requests — постраничный список принятых материалов.
//   - POST /admin/gc — ручная уборка брошенных сессий.
//   - GET /health — счётчики сессий для health-check'ов.
package ingesthttp
