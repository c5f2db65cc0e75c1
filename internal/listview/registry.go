package listview

import (
	"fmt"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"github.com/ArkangelLabs/kraken-crystal-clean/internal/indicator"
)

// Action — групповое действие над выделенными записями списка
type Action struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Settings — конфигурация списка для одного типа записей:
// функция бейджа и набор групповых действий
type Settings struct {
	Indicator func(r *core.Record, today time.Time) indicator.Indicator
	Actions   []Action
}

var (
	mu       sync.Mutex
	frozen   bool
	registry = make(map[string]Settings)
)

// Register добавляет конфигурацию списка для коллекции.
// Вызывается только на старте процесса; повторная регистрация
// и регистрация после Freeze — ошибка программиста.
func Register(collection string, s Settings) {
	mu.Lock()
	defer mu.Unlock()
	if frozen {
		panic(fmt.Sprintf("listview: Register(%q) after Freeze", collection))
	}
	if _, exists := registry[collection]; exists {
		panic(fmt.Sprintf("listview: duplicate registration for %q", collection))
	}
	registry[collection] = s
}

// Freeze закрывает реестр для записи. После этого Get читает без блокировок.
func Freeze() {
	mu.Lock()
	frozen = true
	mu.Unlock()
}

func Get(collection string) (Settings, bool) {
	if !frozen {
		mu.Lock()
		defer mu.Unlock()
	}
	s, ok := registry[collection]
	return s, ok
}

// reset используется только в тестах
func reset() {
	mu.Lock()
	frozen = false
	registry = make(map[string]Settings)
	mu.Unlock()
}
