package ingesthttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"

	"github.com/yourname/ingest_lite/internal/models"
	"github.com/yourname/ingest_lite/pkg/httperrors"
)

// listMaterials отдаёт страницу принятых материалов в виде {id, name}.
func (a *Server) listMaterials(w http.ResponseWriter, r *http.Request) {
	page := models.Pagination{PageSize: -1, PageNum: -1}
	if err := json.NewDecoder(r.Body).Decode(&page); err != nil && !errors.Is(err, io.EOF) {
		httperrors.Write(w, fmt.Errorf("%w: %v", models.ErrBadRequest, err))
		return
	}

	items := make([]models.IDNameEntity, 0)
	for _, ing := range a.store.Ingested() {
		items = append(items, models.IDNameEntity{ID: ing.ID, Name: ing.Title})
	}

	sortMaterials(items, page.Sorts)
	writeOK(w, paginate(items, page))
}

// sortMaterials применяет сортировку по имени, затем по id. Без сортировок порядок — порядок приёма.
func sortMaterials(items []models.IDNameEntity, sorts map[models.SortField]models.SortDirection) {
	if len(sorts) == 0 {
		return
	}

	keys := make([]models.SortField, 0, 2)
	for _, f := range []models.SortField{models.SortByName, models.SortByID} {
		if _, ok := sorts[f]; ok {
			keys = append(keys, f)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		for _, key := range keys {
			a, b := items[i].ID, items[j].ID
			if key == models.SortByName {
				a, b = items[i].Name, items[j].Name
			}
			if a == b {
				continue
			}
			if sorts[key] == models.SortDesc {
				return a > b
			}
			return a < b
		}
		return false
	})
}

// paginate режет список; неположительный размер страницы отдаёт всё.
func paginate(items []models.IDNameEntity, page models.Pagination) []models.IDNameEntity {
	if page.PageSize <= 0 {
		return items
	}

	num := max(page.PageNum, 0)
	start := num * page.PageSize
	if start >= len(items) {
		return []models.IDNameEntity{}
	}

	return items[start:min(start+page.PageSize, len(items))]
}
