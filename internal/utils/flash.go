package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/sirupsen/logrus"
)

const flashKey = "flash_messages"

// FlashStore keeps one-shot notices in the visitor's session. A message
// added during a mutating request is shown on the next rendered page and
// then discarded.
type FlashStore struct {
	sessions *session.Store
	logger   *logrus.Logger
}

func NewFlashStore(logger *logrus.Logger) *FlashStore {
	return &FlashStore{
		sessions: session.New(),
		logger:   logger,
	}
}

// Add appends a message to the pending flash list.
func (f *FlashStore) Add(c *fiber.Ctx, message string) {
	sess, err := f.sessions.Get(c)
	if err != nil {
		f.logger.WithError(err).Warn("Failed to open session for flash message")
		return
	}

	messages, _ := sess.Get(flashKey).([]string)
	messages = append(messages, message)
	sess.Set(flashKey, messages)

	if err := sess.Save(); err != nil {
		f.logger.WithError(err).Warn("Failed to save flash message")
	}
}

// Pop returns the pending messages and clears them.
func (f *FlashStore) Pop(c *fiber.Ctx) []string {
	sess, err := f.sessions.Get(c)
	if err != nil {
		f.logger.WithError(err).Warn("Failed to open session for flash messages")
		return nil
	}

	messages, _ := sess.Get(flashKey).([]string)
	if len(messages) == 0 {
		return nil
	}

	sess.Delete(flashKey)
	if err := sess.Save(); err != nil {
		f.logger.WithError(err).Warn("Failed to clear flash messages")
	}
	return messages
}
