package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/gookit/color"
	"github.com/stretchr/testify/require"

	"batepapo/internal/domain/entities"
)

func TestVisibleTo(t *testing.T) {
	req := require.New(t)
	messages := []entities.Message{
		{From: "Carol", To: entities.BroadcastRecipient, Text: "1"},
		{From: "Carol", To: "Ana", Text: "2"},
		{From: "Carol", To: "Bob", Text: "3"},
	}

	got := visibleTo(messages, "Ana")
	req.Len(got, 2)
	req.Equal("1", got[0].Text)
	req.Equal("2", got[1].Text)
}

func TestPrintTables(t *testing.T) {
	req := require.New(t)
	color.Disable()
	var buf bytes.Buffer
	now := time.Now()

	printParticipants(&buf, []entities.Participant{{Name: "Ana", LastStatus: now.Add(-3 * time.Second)}}, now)
	printMessages(&buf, []entities.Message{{Time: "10:00:00", Type: entities.MessageTypeStatus, From: "Ana", To: "Todos", Text: "entra na sala..."}})

	out := buf.String()
	req.Contains(out, "Participants (1)")
	req.Contains(out, "Ana")
	req.Contains(out, "3s")
	req.Contains(out, "Messages (1)")
	req.Contains(out, "entra na sala...")
}
