package aspire

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// SyncStats — счетчики прогона синхронизации
type SyncStats struct {
	Pulled  int `json:"records_pulled"`
	Created int `json:"records_created"`
	Updated int `json:"records_updated"`
	Errors  int `json:"errors"`
}

// SyncManager управляет синхронизацией контрактов из Aspire
type SyncManager struct {
	app    core.App
	client *Client
}

func NewSyncManager(app core.App, client *Client) *SyncManager {
	return &SyncManager{app: app, client: client}
}

// SyncContracts выполняет полную выгрузку контрактов
func (s *SyncManager) SyncContracts(ctx context.Context) (SyncStats, error) {
	log.Println("[Aspire] Starting full contract sync...")
	stats, err := s.pull(ctx, "")
	if err != nil {
		return stats, err
	}
	log.Printf("[Aspire] Full sync completed: pulled=%d created=%d updated=%d errors=%d",
		stats.Pulled, stats.Created, stats.Updated, stats.Errors)
	return stats, nil
}

// SyncUpdates выполняет инкрементальную синхронизацию от последней
// известной даты модификации
func (s *SyncManager) SyncUpdates(ctx context.Context) (SyncStats, error) {
	last := s.maxModifiedDate()
	if last.IsZero() {
		log.Println("[Aspire] No modified date found (first run?), running full sync...")
		return s.SyncContracts(ctx)
	}

	// +1 секунда опасна — можно пропустить записи в ту же секунду.
	// Окно в -5 минут надежнее, дубликаты просто обновятся.
	cutoff := last.Add(-5 * time.Minute).UTC().Format(time.RFC3339)
	log.Printf("[Aspire] Checking updates since %s (with 5m safety window)...", cutoff)

	stats, err := s.pull(ctx, fmt.Sprintf("LastModifiedDateTime gt %s", cutoff))
	if err != nil {
		return stats, err
	}
	log.Printf("[Aspire] Incremental sync completed: pulled=%d created=%d updated=%d errors=%d",
		stats.Pulled, stats.Created, stats.Updated, stats.Errors)
	return stats, nil
}

func (s *SyncManager) pull(ctx context.Context, filter string) (SyncStats, error) {
	var stats SyncStats

	contracts, err := s.client.Contracts(ctx, filter)
	if err != nil {
		return stats, err
	}
	stats.Pulled = len(contracts)

	collection, err := s.app.FindCollectionByNameOrId("aspire_contracts")
	if err != nil {
		return stats, fmt.Errorf("aspire_contracts collection missing: %w", err)
	}

	for _, c := range contracts {
		created, err := s.saveContract(collection, c)
		if err != nil {
			log.Printf("[Aspire] Failed to save contract %d: %v", c.OpportunityID, err)
			stats.Errors++
			continue
		}
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}
	}
	return stats, nil
}

func (s *SyncManager) saveContract(collection *core.Collection, c Contract) (created bool, err error) {
	rec, _ := s.app.FindFirstRecordByFilter(
		"aspire_contracts",
		"aspire_opportunity_id = {:id}",
		map[string]interface{}{"id": c.OpportunityID},
	)
	if rec == nil {
		rec = core.NewRecord(collection)
		created = true
	}

	rec.Set("aspire_opportunity_id", c.OpportunityID)
	rec.Set("party_name", c.CompanyName)
	rec.Set("property", c.PropertyName)
	rec.Set("custom_sales_rep", c.SalesRepName)
	rec.Set("status", NormalizeStatus(c.StatusName))
	rec.Set("contact_email", c.ContactEmail)
	rec.Set("estimated_value", c.EstimatedValue)
	if d := ParseDate(c.EndDate); d != nil {
		rec.Set("end_date", d.Format("2006-01-02"))
	} else {
		rec.Set("end_date", "")
	}
	if d := ParseDate(c.LastModified); d != nil {
		rec.Set("aspire_modified", d.UTC())
	}

	return created, s.app.Save(rec)
}

func (s *SyncManager) maxModifiedDate() time.Time {
	records, err := s.app.FindRecordsByFilter(
		"aspire_contracts", "aspire_modified > '2000-01-01'", "-aspire_modified", 1, 0, nil)
	if err != nil || len(records) == 0 {
		return time.Time{}
	}
	return records[0].GetDateTime("aspire_modified").Time()
}

func (s *SyncManager) contractCount() (int, error) {
	count := 0
	err := s.app.DB().Select("count(*)").From("aspire_contracts").Row(&count)
	return count, err
}

// needsInitialSync — полная выгрузка только при заведомо пустой таблице.
// Ошибка подсчета не повод запускать полный прогон.
func needsInitialSync(count int, err error) bool {
	return err == nil && count == 0
}
