package client

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/seancorc/AugmentedChords/internal/bot"
	"github.com/seancorc/AugmentedChords/internal/db"
	"github.com/seancorc/AugmentedChords/internal/lyrics"
	"github.com/seancorc/AugmentedChords/internal/songs"
	"github.com/seancorc/AugmentedChords/internal/state"
	"github.com/seancorc/AugmentedChords/internal/utils"
)

type ClientHandlers struct {
	service *lyrics.Service
	history *state.HistoryManager
}

func NewClientHandlers(service *lyrics.Service, history *state.HistoryManager) *ClientHandlers {
	return &ClientHandlers{
		service: service,
		history: history,
	}
}

func (h *ClientHandlers) GetCommandHandlers() map[string]func(b *bot.Bot, update tgbotapi.Update) error {
	return map[string]func(b *bot.Bot, update tgbotapi.Update) error{
		"start":  h.startHandler,
		"help":   h.startHandler,
		"recent": h.recentHandler,
	}
}

func (h *ClientHandlers) startHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(update.Message.Chat.ID,
		"send me a song name (for example: dreams fleetwood mac) and i'll fetch its chords from ultimate guitar.\n\n/recent shows the last fetched songs")
}

func (h *ClientHandlers) recentHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	recent := h.history.Recent()

	if len(recent) == 0 {
		return b.SendMessage(message.Chat.ID, "nothing has been fetched yet")
	}

	var recentMessage strings.Builder
	recentMessage.WriteString("recently fetched:\n\n")
	for idx, record := range recent {
		recentMessage.WriteString(fmt.Sprintf(
			"%d. %s — %s\n   requested by: @%s\n   at: %s\n\n",
			idx+1,
			record.Artist,
			record.SongTitle,
			record.RequestedBy,
			record.FetchedAt.Format("15:04:05"),
		))
	}

	return b.SendMessage(message.Chat.ID, recentMessage.String())
}

// SongQueryHandler treats any plain text message as a song query: it fetches
// the sheet, persists it and replies with the JSON envelope.
func (h *ClientHandlers) SongQueryHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if message.Text == "" || message.IsCommand() {
		return nil
	}

	if err := b.SendMessage(message.Chat.ID, fmt.Sprintf("looking up chords for \"%s\"...", message.Text)); err != nil {
		return err
	}

	ctx := context.Background()
	sheet, err := h.service.FetchBySongName(ctx, message.Text)
	if err != nil || !sheet.Success {
		reason := "unknown error"
		if sheet != nil && sheet.Error != "" {
			reason = sheet.Error
		} else if err != nil {
			reason = err.Error()
		}
		return b.SendMessage(message.Chat.ID, fmt.Sprintf("couldn't fetch chords: %s", reason))
	}

	query := utils.NormalizeQuery(message.Text)
	if err := db.SaveSheet(ctx, query, sheet); err != nil {
		log.Printf("error saving sheet for %q: %v", query, err)
	} else if err := db.IncrementFetchCount(ctx, query); err != nil {
		log.Printf("error counting fetch for %q: %v", query, err)
	}

	if err := h.history.Add(ctx, songs.FetchRecord{
		Query:       query,
		SongTitle:   sheet.SongTitle,
		Artist:      sheet.Artist,
		RequestedBy: message.From.UserName,
		FetchedAt:   time.Now(),
	}); err != nil {
		log.Printf("error recording fetch history: %v", err)
	}

	sheetJSON, err := json.MarshalIndent(sheet, "", "    ")
	if err != nil {
		return b.SendMessage(message.Chat.ID, "something went wrong while formatting the result")
	}

	return b.SendMessageWithMarkdown(message.Chat.ID, fmt.Sprintf("```json\n%s\n```", string(sheetJSON)), true)
}
