package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	renderadapter "github.com/bnema/bizassist-cli/internal/adapters/render/assistant"
	"github.com/bnema/bizassist-cli/internal/application"
	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errAnswerUnavailable = errors.New("answer unavailable")

func newAskCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask one question about your business data",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args, " ")
			if strings.TrimSpace(question) == "" {
				return application.ErrEmptyQuestion
			}

			session := app.newChatSession()
			defer session.Close()

			if err := refreshWithSpinner(cmd, session); err != nil {
				return err
			}

			outcome, err := submitWithSpinner(cmd, session, question)
			if err != nil {
				return err
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), renderadapter.Outcome(outcome)); err != nil {
				return err
			}
			if outcome.Failed() {
				return fmt.Errorf("%w: %s", errAnswerUnavailable, strings.ToLower(string(outcome.Failure)))
			}
			return nil
		},
	}

	return cmd
}

func submitWithSpinner(cmd *cobra.Command, session *application.ChatSession, question string) (domain.DispatchOutcome, error) {
	var outcome domain.DispatchOutcome
	err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), thinkingLabel, func(ctx context.Context) error {
		var submitErr error
		outcome, submitErr = session.Submit(ctx, question)
		return submitErr
	})
	return outcome, err
}
