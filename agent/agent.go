// Package agent is a chat assistant that answers questions about the journal.
//
// The assistant is seeded with the rendered journal reports, so it reasons
// over the same figures the user sees on the terminal. It has no write access
// to anything.
package agent

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Agent runs the interactive assist session.
type Agent struct {
	w       io.Writer
	r       *bufio.Reader
	reports []string
	chat    *genai.Chat
}

// New creates an Agent over the given reports. w receives the assistant's
// output (typically os.Stdout), r supplies the user input.
func New(w io.Writer, r io.Reader, reports ...string) *Agent {
	return &Agent{
		w:       w,
		r:       bufio.NewReader(r),
		reports: reports,
	}
}

// systemInstruction seeds the chat with the journal reports.
func (a *Agent) systemInstruction() *genai.Content {
	var b strings.Builder
	b.WriteString(`You are the assistant of a personal trade journal.
The reports below are the user's current journal figures: realized profits,
open positions with their buy-ins, and the trade log. Answer questions about
them precisely, quote the figures as they appear, and say so when a question
cannot be answered from the reports. You cannot modify the journal.

`)
	for _, report := range a.reports {
		b.WriteString(report)
		b.WriteString("\n\n")
	}
	return &genai.Content{Parts: []*genai.Part{{Text: b.String()}}}
}

// Start creates the chat session.
func (a *Agent) Start(ctx context.Context, client *genai.Client) error {
	chat, err := client.Chats.Create(ctx, model, &genai.GenerateContentConfig{
		SystemInstruction: a.systemInstruction(),
	}, nil)
	if err != nil {
		return err
	}
	a.chat = chat
	return nil
}

const prompt = "assist> "

// Run starts the interactive REPL session. Optional prompts are consumed
// before reading from the user; 'bye' or EOF ends the session.
func (a *Agent) Run(ctx context.Context, client *genai.Client, prompts ...string) error {
	if a.chat == nil {
		if err := a.Start(ctx, client); err != nil {
			return err
		}
	}

	fmt.Fprintln(a.w, "Welcome to tb assist. Type 'bye' to exit.")

	for {
		fmt.Fprint(a.w, prompt)
		var input string

		if len(prompts) > 0 {
			input, prompts = prompts[0], prompts[1:]
			input = strings.TrimSpace(input)
			if input == "" {
				continue
			}
			fmt.Fprintln(a.w, input)
		} else {
			var err error
			input, err = a.r.ReadString('\n')
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}

		if strings.TrimSpace(input) == "bye" {
			return nil
		}

		content, err := a.ask(ctx, input)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.w, content)
	}
}

func (a *Agent) ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from the assistant")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
