package telegram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"boardscout/server/config"
	"boardscout/server/internal/models"
)

// Service posts listing notifications to a Telegram chat. Disabled services
// drop every message silently.
type Service struct {
	logger  *logrus.Logger
	client  *http.Client
	cfg     config.TelegramConfig
	filters models.NotificationFilters
}

func NewService(cfg config.TelegramConfig, logger *logrus.Logger) *Service {
	return &Service{
		logger: logger,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		cfg: cfg,
		filters: models.NotificationFilters{
			MinPrice: cfg.MinPrice,
			MaxPrice: cfg.MaxPrice,
			Types:    cfg.Types,
			Cities:   cfg.Cities,
		},
	}
}

// SendMessage sends a message to the configured Telegram chat.
func (s *Service) SendMessage(message string) error {
	if !s.cfg.Enabled {
		return nil
	}
	if s.cfg.BotToken == "" {
		return errors.New("Telegram bot token is not configured")
	}
	if s.cfg.ChatID == "" {
		return errors.New("Telegram chat ID is not configured")
	}

	url := fmt.Sprintf("https://api.telegram.org/bot%s/sendMessage", s.cfg.BotToken)
	payload := map[string]interface{}{
		"chat_id":    s.cfg.ChatID,
		"text":       message,
		"parse_mode": "HTML",
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %v", err)
	}

	resp, err := s.client.Post(url, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to send message to Telegram API: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		switch resp.StatusCode {
		case http.StatusUnauthorized:
			return errors.New("invalid bot token - please check your token from @BotFather")
		case http.StatusBadRequest:
			return fmt.Errorf("invalid chat ID or message format: %s", string(body))
		case http.StatusForbidden:
			return errors.New("bot was blocked by the user or chat")
		case http.StatusNotFound:
			return errors.New("bot not found - please check your token from @BotFather")
		default:
			return fmt.Errorf("Telegram API error (status %d): %s", resp.StatusCode, string(body))
		}
	}

	return nil
}

// NotifyNewBillboard announces a freshly listed billboard, if it passes the
// configured notification filters.
func (s *Service) NotifyNewBillboard(b *models.Billboard) error {
	if !s.cfg.Enabled {
		return nil
	}
	if !s.filters.IsBillboardAllowed(b) {
		s.logger.WithFields(logrus.Fields{
			"billboard_id": b.ID,
			"location":     b.Location,
		}).Debug("Billboard filtered out of notifications")
		return nil
	}

	availability := "Available now"
	if !b.Available {
		availability = "Currently booked"
	}

	message := fmt.Sprintf(
		"<b>New Billboard Listed!</b>\n\n"+
			"📍 %s\n"+
			"🏠 %s\n"+
			"💰 ₹%d per %s\n"+
			"📐 %.0fx%.0f %s\n"+
			"🖥️ %s, facing %s\n"+
			"👁️ %s\n"+
			"📅 %s",
		b.Location,
		b.Address,
		b.Price,
		b.PriceUnit,
		b.Size.Height,
		b.Size.Width,
		b.Size.Unit,
		b.Type,
		b.FacingDirection,
		b.Views,
		availability,
	)

	return s.SendMessage(message)
}
