package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"sahabat-belanja/internal/app"
	"sahabat-belanja/internal/budget"
	"sahabat-belanja/internal/config"
	"sahabat-belanja/internal/planner"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot wraps the Telegram API around the application core. Each chat
// keeps a preference draft in memory; generation always goes through
// the same feasibility gate as the other surfaces.
type Bot struct {
	api *tgbotapi.BotAPI
	app *app.App
	cfg *config.Config

	mu       sync.Mutex
	sessions map[int64]budget.UserPreferences
}

// NewBot initializes the Telegram Bot and sets the Webhook.
func NewBot(cfg *config.Config, a *app.App) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram api: %w", err)
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	wh, _ := tgbotapi.NewWebhook(cfg.TelegramWebhookURL)
	resp, err := api.Request(wh)
	if err != nil {
		return nil, fmt.Errorf("failed to set webhook to %s: %w", cfg.TelegramWebhookURL, err)
	}
	log.Printf("Webhook set response: %s", resp.Description)

	return &Bot{
		api:      api,
		app:      a,
		cfg:      cfg,
		sessions: make(map[int64]budget.UserPreferences),
	}, nil
}

// RegisterHandlers registers the webhook handler with the default HTTP mux.
func (b *Bot) RegisterHandlers() {
	http.HandleFunc("/webhook", b.handleWebhook)
	http.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
}

func (b *Bot) handleWebhook(w http.ResponseWriter, r *http.Request) {
	update, err := b.api.HandleUpdate(r)
	if err != nil {
		log.Printf("Error parsing update: %v", err)
		return
	}

	if update.Message == nil {
		return
	}

	isAllowed := len(b.cfg.TelegramAllowedUserIDs) == 0
	for _, id := range b.cfg.TelegramAllowedUserIDs {
		if update.Message.From.ID == id {
			isAllowed = true
			break
		}
	}

	if !isAllowed {
		log.Printf("⚠️ Unauthorized access attempt from UserID: %d (@%s)", update.Message.From.ID, update.Message.From.UserName)
		return
	}

	go b.processMessage(update.Message)
}

func (b *Bot) processMessage(msg *tgbotapi.Message) {
	text := strings.TrimSpace(msg.Text)
	cmd, args, _ := strings.Cut(text, " ")

	switch cmd {
	case "/start", "/mulai", "/help":
		b.reply(msg.Chat.ID, helpText)
	case "/atur":
		b.handleSetPreferences(msg, args)
	case "/cek":
		b.handleFeasibility(msg)
	case "/susun":
		b.handleGenerate(msg)
	case "/koreksi":
		b.handleCorrectPrice(msg, args)
	case "/harga":
		b.handleRegionPrices(msg)
	case "/riwayat":
		b.handleHistory(msg)
	case "/status":
		b.handleStatusRequest(msg)
	case "/metrics":
		b.handleMetricsRequest(msg)
	default:
		b.reply(msg.Chat.ID, "Perintah tidak dikenal. Ketik /help untuk daftar perintah.")
	}
}

const helpText = `🛒 *AI Sahabat Belanja*

/atur <kota> | <budget> | <hari> | <orang> | <porsi> | <gaya> — simpan preferensi
/cek — cek kelayakan anggaran
/susun — susun rencana menu
/koreksi <bahan> = <harga> — koreksi harga pasar di kota Bunda
/harga — harga hasil koreksi warga di kota Bunda
/riwayat — rencana terakhir

Contoh:
` + "`/atur Kota Administrasi Jakarta Selatan | 500000 | 7 | 4 | 3 | Normal`"

// handleSetPreferences parses "kota | budget | hari | orang | porsi | gaya".
func (b *Bot) handleSetPreferences(msg *tgbotapi.Message, args string) {
	parts := strings.Split(args, "|")
	if len(parts) != 6 {
		b.reply(msg.Chat.ID, "Format: /atur <kota> | <budget> | <hari> | <orang> | <porsi> | <gaya>")
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	budgetValue, err := strconv.ParseFloat(parts[1], 64)
	days, err2 := strconv.Atoi(parts[2])
	people, err3 := strconv.Atoi(parts[3])
	portions, err4 := strconv.Atoi(parts[4])
	if err != nil || err2 != nil || err3 != nil || err4 != nil {
		b.reply(msg.Chat.ID, "Budget, hari, orang, dan porsi harus berupa angka ya Bund.")
		return
	}

	prefs := budget.UserPreferences{
		City:            parts[0],
		Budget:          budgetValue,
		DurationDays:    days,
		NumberOfPeople:  people,
		PortionsPerMeal: portions,
		Lifestyle:       budget.ParseLifestyle(parts[5]),
	}

	b.mu.Lock()
	b.sessions[msg.Chat.ID] = prefs
	b.mu.Unlock()

	analysis := b.app.Feasibility(prefs)
	b.reply(msg.Chat.ID, "✅ Preferensi tersimpan.\n\n"+formatAnalysis(analysis))
}

func (b *Bot) currentPrefs(chatID int64) (budget.UserPreferences, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	prefs, ok := b.sessions[chatID]
	return prefs, ok
}

func (b *Bot) handleFeasibility(msg *tgbotapi.Message) {
	prefs, ok := b.currentPrefs(msg.Chat.ID)
	if !ok {
		b.reply(msg.Chat.ID, "Belum ada preferensi. Atur dulu dengan /atur ya Bund.")
		return
	}
	b.reply(msg.Chat.ID, formatAnalysis(b.app.Feasibility(prefs)))
}

func (b *Bot) handleGenerate(msg *tgbotapi.Message) {
	prefs, ok := b.currentPrefs(msg.Chat.ID)
	if !ok {
		b.reply(msg.Chat.ID, "Belum ada preferensi. Atur dulu dengan /atur ya Bund.")
		return
	}

	statusMsg := tgbotapi.NewMessage(msg.Chat.ID, "🧑‍🍳 *Sedang menyusun menu...*\n(Mohon tunggu sekitar satu menit)")
	statusMsg.ParseMode = "Markdown"
	sentMsg, err := b.api.Send(statusMsg)
	if err != nil {
		log.Printf("Failed to send initial reply: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	phone := fmt.Sprintf("tg%d", msg.From.ID)
	report, err := b.app.GeneratePlan(ctx, phone, prefs)
	if err != nil {
		var finalText string
		switch {
		case errors.Is(err, planner.ErrBudgetInfeasible):
			finalText = "⛔ " + formatAnalysis(b.app.Feasibility(prefs))
		case errors.Is(err, planner.ErrUnavailable):
			finalText = "😴 " + planner.ErrUnavailable.Error()
		default:
			log.Printf("Error generating plan: %v", err)
			finalText = "❌ Terjadi kesalahan. Coba lagi nanti ya Bund."
		}
		edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, finalText)
		edit.ParseMode = "Markdown"
		b.api.Send(edit)
		return
	}

	planText, shoppingText := formatPlanParts(report)

	edit := tgbotapi.NewEditMessageText(msg.Chat.ID, sentMsg.MessageID, planText)
	edit.ParseMode = "Markdown"
	b.api.Send(edit)

	shoppingMsg := tgbotapi.NewMessage(msg.Chat.ID, shoppingText)
	shoppingMsg.ParseMode = "Markdown"
	b.api.Send(shoppingMsg)
}

// handleCorrectPrice parses "/koreksi <bahan> = <harga>" against the
// session's city.
func (b *Bot) handleCorrectPrice(msg *tgbotapi.Message, args string) {
	prefs, ok := b.currentPrefs(msg.Chat.ID)
	if !ok {
		b.reply(msg.Chat.ID, "Belum ada preferensi. Atur dulu dengan /atur ya Bund.")
		return
	}

	name, priceRaw, found := strings.Cut(args, "=")
	if !found {
		b.reply(msg.Chat.ID, "Format: /koreksi <bahan> = <harga>. Contoh: /koreksi Beras = 14000")
		return
	}
	name = strings.TrimSpace(name)
	price, err := strconv.ParseFloat(strings.TrimSpace(priceRaw), 64)
	if err != nil || name == "" {
		b.reply(msg.Chat.ID, "Harga harus berupa angka ya Bund.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := b.app.CorrectPrice(ctx, prefs.City, name, price); err != nil {
		b.reply(msg.Chat.ID, "❌ Koreksi ditolak: "+err.Error())
		return
	}
	b.reply(msg.Chat.ID, fmt.Sprintf("🙏 Terima kasih! Harga *%s* di %s dicatat Rp %.0f.", name, prefs.City, price))
}

func (b *Bot) handleRegionPrices(msg *tgbotapi.Message) {
	prefs, ok := b.currentPrefs(msg.Chat.ID)
	if !ok {
		b.reply(msg.Chat.ID, "Belum ada preferensi. Atur dulu dengan /atur ya Bund.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	prices, err := b.app.RegionOverrides(ctx, prefs.City)
	if err != nil {
		log.Printf("Error fetching region prices: %v", err)
		b.reply(msg.Chat.ID, "❌ Gagal mengambil harga.")
		return
	}
	if len(prices) == 0 {
		b.reply(msg.Chat.ID, fmt.Sprintf("Belum ada kontribusi harga warga untuk %s.", prefs.City))
		return
	}

	names := make([]string, 0, len(prices))
	for name := range prices {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("💰 *Harga warga — %s*\n\n", prefs.City))
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("• %s: Rp %.0f\n", name, prices[name]))
	}
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleStatusRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.reply(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	status := b.app.Diagnostics(ctx)
	b.reply(msg.Chat.ID, fmt.Sprintf("🩺 *Status AI* (%s)\n%s: %s", status.Model, status.Status, status.Message))
}

func (b *Bot) handleHistory(msg *tgbotapi.Message) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	phone := fmt.Sprintf("tg%d", msg.From.ID)
	items, err := b.app.History(ctx, phone, 5)
	if err != nil {
		log.Printf("Error fetching history: %v", err)
		b.reply(msg.Chat.ID, "❌ Gagal mengambil riwayat.")
		return
	}
	if len(items) == 0 {
		b.reply(msg.Chat.ID, "Belum ada riwayat rencana. Coba /susun dulu.")
		return
	}

	var sb strings.Builder
	sb.WriteString("🗓 *Riwayat Rencana*\n\n")
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("• *%s* — %s, %d hari, Rp %.0f\n",
			item.CreatedAt.Format("2006-01-02"), item.Prefs.City, item.Prefs.DurationDays, item.Prefs.Budget))
	}
	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) handleMetricsRequest(msg *tgbotapi.Message) {
	if msg.From.ID != b.cfg.AdminTelegramID {
		b.reply(msg.Chat.ID, "⛔ *Access Denied*: Admin only.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	usage, err := b.app.DailyUsage(ctx, 7)
	if err != nil {
		b.reply(msg.Chat.ID, "❌ Error fetching metrics.")
		return
	}
	storage, err := b.app.StorageReport(ctx)
	if err != nil {
		b.reply(msg.Chat.ID, "❌ Error fetching storage report.")
		return
	}

	var sb strings.Builder
	sb.WriteString("📊 *Usage & Health Report*\n\n")

	sb.WriteString("🗓 *Recent LLM Activity*\n")
	if len(usage) == 0 {
		sb.WriteString("_No data yet_\n")
	}
	for _, d := range usage {
		sb.WriteString(fmt.Sprintf("• *%s*: %d tokens (%d execs)\n", d.Date, d.TotalPrompt+d.TotalCompletion, d.TotalExecution))
	}

	sb.WriteString("\n🧠 *System Health*\n")
	sb.WriteString(fmt.Sprintf("• Kontribusi harga: %d (%d kota)\n", storage.Contributions, storage.ActiveRegions))
	sb.WriteString(fmt.Sprintf("• RAM: %dMB (Alloc) / %dMB (Sys)\n", storage.AllocMB, storage.SysMB))
	sb.WriteString(fmt.Sprintf("• Goroutines: %d\n", storage.Goroutines))
	sb.WriteString(fmt.Sprintf("• Disk Data: %s\n", storage.StorageSize))

	b.reply(msg.Chat.ID, sb.String())
}

func (b *Bot) reply(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Failed to send message: %v", err)
	}
}
