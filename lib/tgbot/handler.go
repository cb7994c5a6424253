package tgbot

import (
	"context"
	"runtime/debug"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
	"hh-vacancy-bot/lib/dialogue"
	sessionstore "hh-vacancy-bot/lib/dialogue/session-store"
	initchecker "hh-vacancy-bot/lib/utils/init-checker"
	"hh-vacancy-bot/lib/utils/lock"
)

type Provider interface {
	// HandleUpdate ставит сообщение в очередь чата. Сообщения одного чата обрабатываются строго по очереди поступления
	HandleUpdate(ctx context.Context, update tgbotapi.Update)
	// Listen читает обновления до завершения контекста или закрытия канала, затем ждет начатые шаги
	Listen(ctx context.Context, updates tgbotapi.UpdatesChannel)
	// Wait ждет обработки всех принятых сообщений
	Wait()
}

// Sender отправка сообщений в Telegram
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

var Instance Provider

// maxPendingPerChat сколько сообщений чата может ждать завершения текущего шага
const maxPendingPerChat = 20

func NewHandler(sender Sender, machine *dialogue.Machine, sessions sessionstore.Provider) {
	instance := newHandler(sender, machine, sessions)
	initchecker.CheckInit(
		"sender", instance.sender,
		"machine", instance.machine,
		"sessions", instance.sessions,
	)
	Instance = instance
}

func newHandler(sender Sender, machine *dialogue.Machine, sessions sessionstore.Provider) *impl {
	return &impl{
		sender:   sender,
		machine:  machine,
		sessions: sessions,
		queue:    lock.NewKeyQueue(maxPendingPerChat),
	}
}

type impl struct {
	sender   Sender
	machine  *dialogue.Machine
	sessions sessionstore.Provider
	queue    *lock.KeyQueue
}

func (i *impl) Listen(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer i.Wait()
	for {
		select {
		case <-ctx.Done():
			log.Info("прием сообщений остановлен")
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			i.HandleUpdate(ctx, update)
		}
	}
}

func (i *impl) Wait() {
	i.queue.Wait()
}

func (i *impl) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Chat == nil {
		return
	}
	chatID := update.Message.Chat.ID
	logger := log.
		WithField("chat_id", chatID).
		WithField("update_id", update.UpdateID)
	text := update.Message.Text
	ok := i.queue.Push(strconv.FormatInt(chatID, 10), func() {
		i.step(ctx, logger, chatID, text)
	})
	if !ok {
		logger.Warn("сообщение пропущено: очередь чата переполнена")
	}
}

func (i *impl) step(ctx context.Context, logger *log.Entry, chatID int64, text string) {
	defer func() {
		if r := recover(); r != nil {
			logger.
				WithField("panic_stack", string(debug.Stack())).
				Errorf("panic: (%v)", r)
		}
	}()
	out := &chatResponder{sender: i.sender, chatID: chatID, logger: logger}
	state := i.sessions.Get(chatID)
	next := i.machine.Step(ctx, state, text, out)
	if _, restarted := next.(dialogue.AwaitingCity); restarted {
		// в начальном состоянии хранить нечего, новый Get вернет его же
		i.sessions.Drop(chatID)
	} else {
		i.sessions.Save(chatID, next)
	}
	logger.
		WithField("state_from", state.Name()).
		WithField("state_to", next.Name()).
		Debug("шаг диалога выполнен")
}

type chatResponder struct {
	sender Sender
	chatID int64
	logger *log.Entry
}

func (r *chatResponder) Send(reply dialogue.Reply) {
	msg := tgbotapi.NewMessage(r.chatID, reply.Text)
	if reply.Keyboard != nil {
		msg.ReplyMarkup = keyboardMarkup(*reply.Keyboard)
	}
	if _, err := r.sender.Send(msg); err != nil {
		r.logger.WithError(err).Error("ошибка отправки сообщения в Telegram")
	}
}

func keyboardMarkup(keyboard dialogue.Keyboard) interface{} {
	if keyboard.Remove {
		return tgbotapi.NewRemoveKeyboard(true)
	}
	rows := [][]tgbotapi.KeyboardButton{}
	for _, row := range keyboard.Rows() {
		buttons := []tgbotapi.KeyboardButton{}
		for _, text := range row {
			buttons = append(buttons, tgbotapi.NewKeyboardButton(text))
		}
		rows = append(rows, tgbotapi.NewKeyboardButtonRow(buttons...))
	}
	markup := tgbotapi.NewReplyKeyboard(rows...)
	markup.ResizeKeyboard = true
	return markup
}
