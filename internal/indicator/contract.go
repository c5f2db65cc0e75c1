package indicator

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// Статусы Aspire Contract
const (
	ContractStatusActive   = "Active"
	ContractStatusUnsigned = "Unsigned"
)

// ContractRecord — read-only срез полей записи aspire_contracts
type ContractRecord struct {
	Status    string
	EndDate   *time.Time
	PartyName string
	SalesRep  string
}

// ContractFromRecord извлекает нужные классификатору поля из записи PocketBase.
// Пустая дата окончания становится nil.
func ContractFromRecord(r *core.Record) ContractRecord {
	rec := ContractRecord{
		Status:    r.GetString("status"),
		PartyName: r.GetString("party_name"),
		SalesRep:  r.GetString("custom_sales_rep"),
	}
	if d := r.GetDateTime("end_date"); !d.IsZero() {
		t := d.Time()
		rec.EndDate = &t
	}
	return rec
}

// ForContract возвращает бейдж для записи контракта на дату today.
// Границы корзин 30/60/90: нижняя исключается, верхняя включается,
// кроме первой корзины, которая включает день 0.
func ForContract(rec ContractRecord, today time.Time) Indicator {
	if rec.Status != ContractStatusActive {
		if rec.Status == ContractStatusUnsigned {
			return Indicator{"Unsigned", ColorRed, expr(clause("status", "=", ContractStatusUnsigned))}
		}
		return Indicator{rec.Status, ColorGray, expr(clause("status", "=", rec.Status))}
	}

	if rec.EndDate != nil {
		days := DaysBetween(today, *rec.EndDate)
		active := clause("status", "=", ContractStatusActive)
		switch {
		case days < 0:
			return Indicator{"Expired", ColorRed, expr(active,
				clause("end_date", "<", addDays(today, 0)),
			)}
		case days <= 30:
			return Indicator{"30 Days", ColorOrange, expr(active,
				clause("end_date", ">=", addDays(today, 0)),
				clause("end_date", "<=", addDays(today, 30)),
			)}
		case days <= 60:
			return Indicator{"60 Days", ColorYellow, expr(active,
				clause("end_date", ">", addDays(today, 30)),
				clause("end_date", "<=", addDays(today, 60)),
			)}
		case days <= 90:
			return Indicator{"90 Days", ColorBlue, expr(active,
				clause("end_date", ">", addDays(today, 60)),
				clause("end_date", "<=", addDays(today, 90)),
			)}
		}
	}

	return Indicator{"Active", ColorGreen, expr(clause("status", "=", ContractStatusActive))}
}
