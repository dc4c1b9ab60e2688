package discord

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/PhelGc/fermenta/internal/batch"
)

// Colores del embed según el peor nivel presente en el lote
const (
	colorOptimal      = 0x2ECC71 // Verde
	colorSatisfactory = 0xF39C12 // Naranja
	colorLow          = 0xE74C3C // Rojo
	colorEmpty        = 0x3498DB // Azul
)

// MessageSender es la parte de la sesión de Discord que usa el notificador
type MessageSender interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type Client struct {
	sender    MessageSender
	session   *discordgo.Session
	channelID string
}

type Config struct {
	BotToken  string
	ChannelID string
}

// NewClient crea un cliente con una sesión de bot
func NewClient(config *Config) (*Client, error) {
	session, err := discordgo.New("Bot " + config.BotToken)
	if err != nil {
		return nil, fmt.Errorf("error creando sesión Discord: %w", err)
	}

	return &Client{
		sender:    session,
		session:   session,
		channelID: config.ChannelID,
	}, nil
}

// NewClientWithSender crea un cliente sobre un sender ya construido
func NewClientWithSender(sender MessageSender, channelID string) *Client {
	return &Client{sender: sender, channelID: channelID}
}

// SendBatchSummary publica el resumen de un lote y devuelve el ID del mensaje
func (c *Client) SendBatchSummary(source, runID string, summary batch.Summary) (string, error) {
	embed := buildSummaryEmbed(source, runID, summary, time.Now())

	message, err := c.sender.ChannelMessageSendEmbed(c.channelID, embed)
	if err != nil {
		return "", fmt.Errorf("error enviando mensaje a Discord: %w", err)
	}

	return message.ID, nil
}

// buildSummaryEmbed construye el embed con los totales del lote
func buildSummaryEmbed(source, runID string, summary batch.Summary, now time.Time) *discordgo.MessageEmbed {
	color := colorEmpty
	switch {
	case summary.Low > 0:
		color = colorLow
	case summary.Satisfactory > 0:
		color = colorSatisfactory
	case summary.Optimal > 0:
		color = colorOptimal
	}

	field := func(name string, value int) *discordgo.MessageEmbedField {
		return &discordgo.MessageEmbedField{Name: name, Value: fmt.Sprint(value), Inline: true}
	}

	return &discordgo.MessageEmbed{
		Title:       "Batch evaluated: " + source,
		Description: fmt.Sprintf("%d lines, %d scored, %d rejected, %d skipped", summary.Lines, summary.Scored, summary.Rejected, summary.Skipped),
		Color:       color,
		Fields: []*discordgo.MessageEmbedField{
			field("Optimal", summary.Optimal),
			field("Satisfactory", summary.Satisfactory),
			field("Low", summary.Low),
		},
		Timestamp: now.Format(time.RFC3339),
		Footer: &discordgo.MessageEmbedFooter{
			Text: "fermenta run " + runID,
		},
	}
}

// Close cierra la conexión con Discord
func (c *Client) Close() {
	if c.session != nil {
		c.session.Close()
	}
}
