package discord

import (
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PhelGc/fermenta/internal/batch"
)

type fakeSender struct {
	channel string
	embed   *discordgo.MessageEmbed
	err     error
}

func (f *fakeSender) ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.channel = channelID
	f.embed = embed
	return &discordgo.Message{ID: "m-1"}, nil
}

func TestSendBatchSummary(t *testing.T) {
	sender := &fakeSender{}
	client := NewClientWithSender(sender, "chan-9")

	id, err := client.SendBatchSummary("batch.txt", "run-1", batch.Summary{Lines: 3, Scored: 2, Optimal: 2, Skipped: 1})
	require.NoError(t, err)

	assert.Equal(t, "m-1", id)
	assert.Equal(t, "chan-9", sender.channel)
	require.NotNil(t, sender.embed)
	assert.Equal(t, "Batch evaluated: batch.txt", sender.embed.Title)
	assert.Equal(t, colorOptimal, sender.embed.Color)
}

func TestSendBatchSummaryError(t *testing.T) {
	client := NewClientWithSender(&fakeSender{err: errors.New("boom")}, "chan")
	_, err := client.SendBatchSummary("batch.txt", "run-1", batch.Summary{})
	assert.ErrorContains(t, err, "boom")
}

func TestBuildSummaryEmbed(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		summary batch.Summary
		color   int
	}{
		{"empty", batch.Summary{}, colorEmpty},
		{"only optimal", batch.Summary{Optimal: 3}, colorOptimal},
		{"satisfactory wins over optimal", batch.Summary{Optimal: 3, Satisfactory: 1}, colorSatisfactory},
		{"low wins", batch.Summary{Optimal: 3, Satisfactory: 1, Low: 1}, colorLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			embed := buildSummaryEmbed("b.txt", "run-7", tt.summary, now)
			assert.Equal(t, tt.color, embed.Color)
			assert.Equal(t, "2024-05-01T12:00:00Z", embed.Timestamp)
			assert.Equal(t, "fermenta run run-7", embed.Footer.Text)
			require.Len(t, embed.Fields, 3)
			assert.Equal(t, "Optimal", embed.Fields[0].Name)
		})
	}
}
