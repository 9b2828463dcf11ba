package rest

import (
	"github.com/samber/lo"

	"batepapo/internal/domain/entities"
)

type joinRequest struct {
	Name string `json:"name"`
}

type joinResponse struct {
	Name string `json:"name"`
}

type participantResponse struct {
	Name string `json:"name"`
	// LastStatus is in Unix milliseconds.
	LastStatus int64 `json:"lastStatus"`
}

type postMessageRequest struct {
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
}

type messageResponse struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
	Type string `json:"type"`
	Time string `json:"time"`
}

func toParticipantResponses(participants []entities.Participant) []participantResponse {
	return lo.Map(participants, func(p entities.Participant, _ int) participantResponse {
		return participantResponse{Name: p.Name, LastStatus: p.LastStatus.UnixMilli()}
	})
}

func toMessageResponses(messages []entities.Message) []messageResponse {
	return lo.Map(messages, func(m entities.Message, _ int) messageResponse {
		return messageResponse{
			ID:   m.ID.String(),
			From: m.From,
			To:   m.To,
			Text: m.Text,
			Type: string(m.Type),
			Time: m.Time,
		}
	})
}
