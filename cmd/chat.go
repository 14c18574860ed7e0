package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	renderadapter "github.com/bnema/bizassist-cli/internal/adapters/render/assistant"
	"github.com/bnema/bizassist-cli/internal/application"
	"github.com/spf13/cobra"
)

const chatHelp = "Commands: /refresh reloads module data, /context shows it, /history replays the conversation, /quit exits."

func newChatCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive conversation with the business assistant",
		Long:  "chat opens an assistant session, collects module data once, and answers questions read line by line from stdin. " + chatHelp,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app)
		},
	}

	return cmd
}

func runChat(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	session := app.newChatSession()
	defer session.Close()

	if err := refreshWithSpinner(cmd, session); err != nil {
		return err
	}

	aggregate, _ := session.ModuleData()
	connected := aggregate.Connected()
	if len(connected) == 0 {
		fmt.Fprintln(out, "No module data uploaded yet. Answers will be general.")
	} else {
		labels := make([]string, 0, len(connected))
		for _, id := range connected {
			labels = append(labels, id.Label())
		}
		fmt.Fprintf(out, "Using data from: %s\n", strings.Join(labels, ", "))
	}
	fmt.Fprintln(out, renderadapter.SuggestionList())
	fmt.Fprintln(out, chatHelp)

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch line {
		case "":
			continue
		case "/quit", "/exit":
			return nil
		case "/refresh":
			if err := refreshWithSpinner(cmd, session); err != nil {
				return err
			}
			fmt.Fprintln(out, "Module data refreshed.")
			continue
		case "/context":
			aggregate, _ := session.ModuleData()
			rendered, err := app.contextRenderer(aggregate)
			if err != nil {
				return fmt.Errorf("render context: %w", err)
			}
			fmt.Fprintln(out, rendered)
			continue
		case "/history":
			for _, turn := range session.Turns() {
				fmt.Fprintln(out, renderadapter.Turn(turn))
			}
			continue
		}

		outcome, err := submitWithSpinner(cmd, session, line)
		switch {
		case errors.Is(err, application.ErrDispatchInFlight):
			fmt.Fprintln(out, "Still answering the previous question.")
			continue
		case errors.Is(err, context.Canceled):
			return nil
		case err != nil:
			return err
		}

		fmt.Fprintln(out, renderadapter.Outcome(outcome))
	}

	if err := scanner.Err(); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read input: %w", err)
	}
	return nil
}

func refreshWithSpinner(cmd *cobra.Command, session *application.ChatSession) error {
	return runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), collectingLabel, func(ctx context.Context) error {
		session.Refresh(ctx)
		return nil
	})
}
