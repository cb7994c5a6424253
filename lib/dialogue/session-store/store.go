package sessionstore

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"hh-vacancy-bot/lib/dialogue"
)

// Provider состояния диалогов по идентификатору чата.
// Сессия, к которой не обращались дольше ttl, удаляется
type Provider interface {
	// Get возвращает состояние чата, для нового чата начальное состояние
	Get(chatID int64) dialogue.State
	Save(chatID int64, state dialogue.State)
	// Drop удаляет сессию, следующий Get вернет начальное состояние
	Drop(chatID int64)
}

func NewInstance(ttl time.Duration) Provider {
	return &impl{
		ttl:   ttl,
		cache: cache.New(ttl, cleanupInterval(ttl)),
	}
}

type impl struct {
	ttl   time.Duration
	cache *cache.Cache
}

func cleanupInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > 10*time.Minute {
		return 10 * time.Minute
	}
	return ttl
}

func getCacheKey(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func (i impl) Get(chatID int64) dialogue.State {
	value, ok := i.cache.Get(getCacheKey(chatID))
	if !ok {
		return dialogue.Initial()
	}
	state, ok := value.(dialogue.State)
	if !ok {
		return dialogue.Initial()
	}
	return state
}

func (i impl) Save(chatID int64, state dialogue.State) {
	// повторная запись продлевает ttl
	i.cache.Set(getCacheKey(chatID), state, i.ttl)
}

func (i impl) Drop(chatID int64) {
	i.cache.Delete(getCacheKey(chatID))
}
