// internal/botcmd/botcmd.go
package botcmd

import (
	"cardhawk/internal/annual"
	"cardhawk/internal/catalog"
	"cardhawk/internal/domain"
	"cardhawk/internal/service"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const helpText = "💳 *Cardhawk*\n\n" +
	"Commands:\n" +
	"`/best dining 120` best card for a category\n" +
	"`/merchant costco 250` best card accepted at a store\n" +
	"`/wallet` cards in your wallet\n" +
	"`/add amex-gold` add a card\n" +
	"`/remove amex-gold` remove a card\n" +
	"`/annual dining=500 grocery=300` yearly value per card\n" +
	"`/rotating` rotating categories this quarter\n" +
	"`/spent discover-it-cash-back 420` record quarter spend\n" +
	"`/pointvalue amex-gold 1.8` set cents per point"

// topN is how many cards a ranking reply lists.
const topN = 3

// Bot turns chat messages into advisor calls and formats the replies.
type Bot struct {
	advisor       *service.Advisor
	defaultAmount float64
}

func New(advisor *service.Advisor, defaultAmount float64) *Bot {
	if defaultAmount <= 0 {
		defaultAmount = 100
	}
	return &Bot{advisor: advisor, defaultAmount: defaultAmount}
}

// Handle answers one message from userID. Errors become user-facing text.
func (b *Bot) Handle(ctx context.Context, userID int64, text string) string {
	text = SanitizeInput(FixEncoding(text))
	command, args := splitCommand(text)

	var (
		reply string
		err   error
	)
	switch command {
	case "/start", "/help":
		reply = helpText
	case "/best":
		reply, err = b.best(ctx, userID, args)
	case "/merchant":
		reply, err = b.merchant(ctx, userID, args)
	case "/wallet":
		reply, err = b.wallet(ctx, userID)
	case "/add":
		reply, err = b.mutate(ctx, userID, args, b.advisor.AddCard, "✅ Added")
	case "/remove":
		reply, err = b.mutate(ctx, userID, args, b.advisor.RemoveCard, "✅ Removed")
	case "/annual":
		reply, err = b.annual(ctx, userID, args)
	case "/rotating":
		reply, err = b.rotating(ctx, userID)
	case "/spent":
		reply, err = b.spent(ctx, userID, args)
	case "/pointvalue":
		reply, err = b.pointValue(ctx, userID, args)
	default:
		reply = "Unknown command. Send /help"
	}

	if err != nil {
		return errorReply(command, err)
	}
	return reply
}

// splitCommand separates "/cmd@botname a b" into "/cmd" and ["a", "b"].
func splitCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}
	command := strings.ToLower(fields[0])
	if at := strings.IndexByte(command, '@'); at > 0 {
		command = command[:at]
	}
	return command, fields[1:]
}

var errUsage = errors.New("usage")

func errorReply(command string, err error) string {
	switch {
	case errors.Is(err, errUsage):
		return "❌ " + strings.TrimPrefix(err.Error(), "usage: ")
	case errors.Is(err, catalog.ErrUnknownCard),
		errors.Is(err, service.ErrNotRotating),
		errors.Is(err, service.ErrPointValue):
		return "❌ " + err.Error()
	default:
		slog.Error("Bot command failed", "command", command, "error", err)
		return "❌ Something went wrong, try again later"
	}
}

func usage(format string) error {
	return fmt.Errorf("%w: Use %s", errUsage, format)
}

// trailingAmount splits a final numeric argument off args. Without one the default
// amount applies; a negative, NaN or infinite amount is treated as 0.
func (b *Bot) trailingAmount(args []string) ([]string, float64) {
	if len(args) > 1 {
		if v, err := strconv.ParseFloat(args[len(args)-1], 64); err == nil {
			if v < 0 || !finite(v) {
				v = 0
			}
			return args[:len(args)-1], v
		}
	}
	return args, b.defaultAmount
}

func (b *Bot) best(ctx context.Context, userID int64, args []string) (string, error) {
	args, amount := b.trailingAmount(args)
	if len(args) != 1 {
		return "", usage("/best <category> [amount]")
	}
	category := strings.ToLower(args[0])

	result, err := b.advisor.Recommend(ctx, userID, category, amount)
	if err != nil {
		return "", err
	}
	header := fmt.Sprintf("🏆 *%s* on %s", result.CategoryName, money(amount))
	return header + "\n" + rankingLines(result.Recommendations), nil
}

func (b *Bot) merchant(ctx context.Context, userID int64, args []string) (string, error) {
	args, amount := b.trailingAmount(args)
	if len(args) == 0 {
		return "", usage("/merchant <name> [amount]")
	}
	name := strings.Join(args, " ")

	result, err := b.advisor.RecommendAtMerchant(ctx, userID, name, "", amount)
	if err != nil {
		return "", err
	}
	lines := []string{fmt.Sprintf("🏪 *%s* (%s) on %s", name, result.CategoryName, money(amount))}
	if result.Note != "" {
		lines = append(lines, "ℹ️ "+result.Note)
	}
	if len(result.Recommendations) == 0 {
		lines = append(lines, "📭 None of your cards are accepted here")
	} else {
		lines = append(lines, rankingLines(result.Recommendations))
	}
	for _, card := range result.Rejected {
		lines = append(lines, fmt.Sprintf("🚫 %s (%s not accepted)", card.DisplayName, card.Network))
	}
	return strings.Join(lines, "\n"), nil
}

func rankingLines(recs []domain.Recommendation) string {
	if len(recs) == 0 {
		return "📭 Your wallet is empty. Add a card with /add"
	}
	lines := make([]string, 0, topN)
	for i, rec := range recs {
		if i == topN {
			break
		}
		lines = append(lines, fmt.Sprintf("%d. %s: %s, %s", rec.Rank, rec.Card.DisplayName, rate(rec.EarningRate), money(rec.DollarValue)))
	}
	return strings.Join(lines, "\n")
}

func (b *Bot) wallet(ctx context.Context, userID int64) (string, error) {
	cards, _, err := b.advisor.WalletCards(ctx, userID)
	if err != nil {
		return "", err
	}
	if len(cards) == 0 {
		return "📭 Your wallet is empty. Add a card with /add", nil
	}
	lines := []string{"👛 *Your wallet*"}
	for _, card := range cards {
		lines = append(lines, fmt.Sprintf("- %s `%s` (%s fee)", card.DisplayName, card.ID, money(card.AnnualFee)))
	}
	return strings.Join(lines, "\n"), nil
}

type walletOp func(ctx context.Context, userID int64, cardID string) ([]string, error)

func (b *Bot) mutate(ctx context.Context, userID int64, args []string, op walletOp, done string) (string, error) {
	if len(args) != 1 {
		return "", usage("/add <cardId> or /remove <cardId>")
	}
	ids, err := op(ctx, userID, strings.ToLower(args[0]))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s. Wallet has %d cards", done, len(ids)), nil
}

func (b *Bot) annual(ctx context.Context, userID int64, args []string) (string, error) {
	if len(args) == 0 {
		return "", usage("/annual dining=500 grocery=300")
	}
	profile, err := parseProfile(args)
	if err != nil {
		return "", err
	}

	report, err := b.advisor.AnnualValue(ctx, userID, profile, annual.Filter{}, annual.SortNetValue)
	if err != nil {
		return "", err
	}
	lines := []string{fmt.Sprintf("📊 *Annual value* on %s/yr", money(report.Summary.AnnualSpend.InexactFloat64()))}
	if len(report.Worthwhile) > 0 {
		lines = append(lines, "\n✅ Worth it")
		for _, v := range report.Worthwhile {
			lines = append(lines, annualLine(v))
		}
	}
	if len(report.NotWorth) > 0 {
		lines = append(lines, "\n⚠️ Not worth it")
		for _, v := range report.NotWorth {
			lines = append(lines, annualLine(v))
		}
	}
	return strings.Join(lines, "\n"), nil
}

func annualLine(v domain.AnnualValue) string {
	return fmt.Sprintf("- %s: %s net (%s rewards, %s fee)",
		v.Card.DisplayName, money(v.NetValue), money(v.TotalRewards), money(v.AnnualFee))
}

// parseProfile reads category=amount pairs. Amounts are monthly dollars.
func parseProfile(args []string) (domain.SpendingProfile, error) {
	profile := make(domain.SpendingProfile, len(args))
	for _, arg := range args {
		category, raw, ok := strings.Cut(arg, "=")
		if !ok || category == "" {
			return nil, usage("category=amount, e.g. dining=500")
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 || !finite(v) {
			return nil, fmt.Errorf("%w: Amount for %s must be a non-negative number", errUsage, category)
		}
		profile[strings.ToLower(category)] += v
	}
	return profile, nil
}

func (b *Bot) rotating(ctx context.Context, userID int64) (string, error) {
	overview, err := b.advisor.Rotating(ctx, userID, time.Time{})
	if err != nil {
		return "", err
	}
	if len(overview) == 0 {
		return "📭 No rotating cards scheduled", nil
	}
	lines := make([]string, 0, len(overview)*3)
	for _, ov := range overview {
		lines = append(lines, fmt.Sprintf("\n🔄 *%s* %s", ov.Name, ov.Quarter))
		if ov.Current == nil {
			lines = append(lines, "No categories announced")
		} else {
			lines = append(lines, fmt.Sprintf("%s at %s, %s of %s spent, %s left to earn",
				ov.Current.Category, rate(ov.Current.Rate),
				money(ov.Progress.Spent), money(ov.Progress.Cap), money(ov.Progress.RemainingRewards)))
			if ov.Progress.NeedsActivation {
				lines = append(lines, "⚠️ Remember to activate")
			}
		}
		if ov.Next != nil {
			lines = append(lines, fmt.Sprintf("Next (%s): %s", ov.Next.Quarter, ov.Next.Category))
		}
	}
	return strings.TrimPrefix(strings.Join(lines, "\n"), "\n"), nil
}

func (b *Bot) spent(ctx context.Context, userID int64, args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("/spent <cardId> <amount>")
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount < 0 || !finite(amount) {
		return "", usage("/spent <cardId> <amount> with a non-negative amount")
	}
	cardID := strings.ToLower(args[0])
	if err := b.advisor.UpdateRotatingSpend(ctx, userID, cardID, "", amount); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ %s spent this quarter on %s", money(amount), cardID), nil
}

func (b *Bot) pointValue(ctx context.Context, userID int64, args []string) (string, error) {
	if len(args) != 2 {
		return "", usage("/pointvalue <cardId> <cents>")
	}
	cents, err := strconv.ParseFloat(args[1], 64)
	if err != nil || !finite(cents) {
		return "", usage("/pointvalue <cardId> <cents>")
	}
	cardID := strings.ToLower(args[0])
	if err := b.advisor.SetPointValue(ctx, userID, cardID, cents); err != nil {
		return "", err
	}
	return fmt.Sprintf("✅ %s points now worth %s¢", cardID, strconv.FormatFloat(cents, 'f', -1, 64)), nil
}

// Reply builds the answer to a chat update. ok is false for updates without a text message.
func (b *Bot) Reply(ctx context.Context, update tgbotapi.Update) (msg tgbotapi.MessageConfig, ok bool) {
	if update.Message == nil || update.Message.From == nil {
		return msg, false
	}
	userID := update.Message.From.ID
	slog.Debug("Bot message", "user_id", userID, "text", update.Message.Text)

	msg = tgbotapi.NewMessage(update.Message.Chat.ID, b.Handle(ctx, userID, update.Message.Text))
	msg.ParseMode = tgbotapi.ModeMarkdown
	return msg, true
}
