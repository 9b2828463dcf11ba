// Command inspect prints the participants and the message log of the
// configured store. Stop the server first when using the badger driver:
// the database directory is locked by its owner.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"batepapo/internal/config"
	"batepapo/internal/domain/entities"
	"batepapo/internal/infrastructure/storage"
	"batepapo/pkg/logs"
)

func main() {
	what := flag.String("show", "all", "What to print: participants, messages or all")
	user := flag.String("user", "", "Only print messages visible to this participant")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	ctx := context.Background()
	store, err := storage.Open(ctx, cfg, logs.GetLoggerFromString("ERROR"))
	if err != nil {
		log.Fatal("Error while opening store: ", err)
	}
	defer store.Close()

	if *what == "all" || *what == "participants" {
		participants, err := store.Participants.FindAll(ctx)
		if err != nil {
			log.Fatal(err)
		}
		printParticipants(os.Stdout, participants, time.Now())
	}
	if *what == "all" || *what == "messages" {
		messages, err := store.Messages.FindAll(ctx)
		if err != nil {
			log.Fatal(err)
		}
		if *user != "" {
			messages = visibleTo(messages, *user)
		}
		printMessages(os.Stdout, messages)
	}
}

func visibleTo(messages []entities.Message, user string) []entities.Message {
	out := make([]entities.Message, 0, len(messages))
	for _, m := range messages {
		if m.VisibleTo(user) {
			out = append(out, m)
		}
	}
	return out
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func printParticipants(w io.Writer, participants []entities.Participant, now time.Time) {
	fmt.Fprintf(w, "Participants (%d)\n", len(participants))
	table := newTable(w, []string{"Name", "Last status", "Idle"})
	for _, p := range participants {
		table.Append([]string{
			p.Name,
			p.LastStatus.Local().Format(time.DateTime),
			now.Sub(p.LastStatus).Truncate(time.Second).String(),
		})
	}
	table.Render()
}

func printMessages(w io.Writer, messages []entities.Message) {
	fmt.Fprintf(w, "Messages (%d)\n", len(messages))
	table := newTable(w, []string{"Time", "Type", "From", "To", "Text"})
	for _, m := range messages {
		table.Append([]string{m.Time, colorType(m.Type), m.From, m.To, m.Text})
	}
	table.Render()
}

func colorType(t entities.MessageType) string {
	switch t {
	case entities.MessageTypeStatus:
		return color.Gray.Sprint(string(t))
	case entities.MessageTypePrivateMessage:
		return color.Magenta.Sprint(string(t))
	default:
		return color.Green.Sprint(string(t))
	}
}
