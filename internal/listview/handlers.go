package listview

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
)

const maxListLimit = 500

// Row — запись списка вместе с рассчитанным бейджем
type Row struct {
	Record    *core.Record        `json:"record"`
	Indicator indicator.Indicator `json:"indicator"`
}

// HandleList отдает записи коллекции, аннотированные бейджами.
// Бейдж считается на текущую дату сервера при каждом рендере.
func HandleList(pbApp *pocketbase.PocketBase, e *core.RequestEvent) error {
	name := e.Request.PathValue("collection")
	settings, ok := Get(name)
	if !ok {
		log.Printf("[WARN] HandleList: no listview settings for %q", name)
		return e.NotFoundError("Unknown list view", nil)
	}

	limit, _ := strconv.Atoi(e.Request.URL.Query().Get("limit"))
	if limit <= 0 || limit > maxListLimit {
		limit = maxListLimit
	}
	offset, _ := strconv.Atoi(e.Request.URL.Query().Get("offset"))

	records, err := pbApp.FindRecordsByFilter(name, "id != ''", "-updated", limit, offset, nil)
	if err != nil {
		log.Printf("[ERROR] HandleList: fetch %q failed: %v", name, err)
		return e.InternalServerError("Failed to fetch records", err)
	}

	today := time.Now()
	rows := make([]Row, 0, len(records))
	for _, r := range records {
		rows = append(rows, Row{Record: r, Indicator: settings.Indicator(r, today)})
	}
	return e.JSON(http.StatusOK, rows)
}

// HandleActions отдает объявленные групповые действия списка
func HandleActions(e *core.RequestEvent) error {
	name := e.Request.PathValue("collection")
	settings, ok := Get(name)
	if !ok {
		return e.NotFoundError("Unknown list view", nil)
	}
	actions := settings.Actions
	if actions == nil {
		actions = []Action{}
	}
	return e.JSON(http.StatusOK, actions)
}
