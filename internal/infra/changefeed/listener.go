package changefeed

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"
)

// ErrListen возвращается, если не удалось подписаться на канал
var ErrListen = errors.New("changefeed: failed to listen")

// pingInterval проверка соединения при отсутствии уведомлений
const pingInterval = 90 * time.Second

// Listener подписывается на NOTIFY об изменениях бронирований
// и сбрасывает кэш вместимости затронутого номера.
// Уведомления приходят от триггера bookings_changed и от любых других
// экземпляров сервиса, пишущих в ту же БД.
type Listener struct {
	dsn          string
	channel      string
	minReconnect time.Duration
	maxReconnect time.Duration
	cache        CacheInvalidator
	logger       Logger
}

// NewListener создает слушателя канала
func NewListener(dsn, channel string, minReconnect, maxReconnect time.Duration, cache CacheInvalidator, logger Logger) *Listener {
	return &Listener{
		dsn:          dsn,
		channel:      channel,
		minReconnect: minReconnect,
		maxReconnect: maxReconnect,
		cache:        cache,
		logger:       logger,
	}
}

// Run слушает канал до отмены контекста
func (l *Listener) Run(ctx context.Context) error {
	listener := pq.NewListener(l.dsn, l.minReconnect, l.maxReconnect, l.onEvent)
	defer listener.Close()

	if err := listener.Listen(l.channel); err != nil {
		return fmt.Errorf("%w: channel %q: %v", ErrListen, l.channel, err)
	}
	l.logger.Info("Changefeed: listening on channel %q", l.channel)

	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Changefeed: stopped")
			return nil

		case n := <-listener.Notify:
			l.handle(n)

		case <-time.After(pingInterval):
			go func() {
				if err := listener.Ping(); err != nil {
					l.logger.Warn("Changefeed: ping failed: %v", err)
				}
			}()
		}
	}
}

// handle обрабатывает одно уведомление.
// nil приходит после переподключения: часть уведомлений могла потеряться.
func (l *Listener) handle(n *pq.Notification) {
	if n == nil {
		l.logger.Warn("Changefeed: connection re-established, dropping all cached tables")
		l.cache.InvalidateAll()
		return
	}

	roomID, err := strconv.ParseInt(strings.TrimSpace(n.Extra), 10, 64)
	if err != nil || roomID <= 0 {
		l.logger.Warn("Changefeed: unexpected payload %q on channel %q, dropping all cached tables", n.Extra, n.Channel)
		l.cache.InvalidateAll()
		return
	}

	l.cache.Invalidate(roomID)
}

func (l *Listener) onEvent(event pq.ListenerEventType, err error) {
	switch event {
	case pq.ListenerEventConnected:
		l.logger.Info("Changefeed: connected")
	case pq.ListenerEventDisconnected:
		l.logger.Warn("Changefeed: disconnected: %v", err)
	case pq.ListenerEventReconnected:
		l.logger.Info("Changefeed: reconnected")
	case pq.ListenerEventConnectionAttemptFailed:
		l.logger.Error("Changefeed: connection attempt failed: %v", err)
	}
}
