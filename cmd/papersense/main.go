package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/client"
	"github.com/Sanjeev-imxal/papersense-ai-powered-paper-evaluation-platform/pkg/ocr"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "papersense",
		Short: "Submit scanned exam papers for AI evaluation and fetch the results",
	}

	root.PersistentFlags().String("server", "http://localhost:8080", "Evaluation server base URL")
	root.AddCommand(submitCmd(), statusCmd())

	return root
}

func submitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit three extracted documents and wait for the evaluation",
		RunE:  runSubmit,
	}

	f := cmd.Flags()
	f.String("questions", "", "Path to the question paper text (required)")
	f.String("answer-key", "", "Path to the model answer key text (required)")
	f.String("student", "", "Path to the student's answer sheet text (required)")
	f.String("tone", "formal", "Feedback tone (formal, friendly, motivational)")
	f.String("title", "", "Paper title (defaults to the student file name)")
	f.Duration("interval", client.DefaultPollInterval, "Status poll interval")
	f.Bool("no-wait", false, "Return after submission without polling for the result")

	_ = cmd.MarkFlagRequired("questions")
	_ = cmd.MarkFlagRequired("answer-key")
	_ = cmd.MarkFlagRequired("student")

	return cmd
}

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status <evaluation-id>",
		Short: "Fetch the current state of one evaluation",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatus,
	}
}

func runSubmit(cmd *cobra.Command, _ []string) error {
	server, _ := cmd.Flags().GetString("server")
	questionsPath, _ := cmd.Flags().GetString("questions")
	answerKeyPath, _ := cmd.Flags().GetString("answer-key")
	studentPath, _ := cmd.Flags().GetString("student")
	tone, _ := cmd.Flags().GetString("tone")
	title, _ := cmd.Flags().GetString("title")
	interval, _ := cmd.Flags().GetDuration("interval")
	noWait, _ := cmd.Flags().GetBool("no-wait")

	questionPaper, err := ocr.ReadDocumentText(questionsPath)
	if err != nil {
		return err
	}
	answerKey, err := ocr.ReadDocumentText(answerKeyPath)
	if err != nil {
		return err
	}
	studentAnswer, err := ocr.ReadDocumentText(studentPath)
	if err != nil {
		return err
	}

	if title == "" {
		title = studentPath
	}

	id := uuid.NewString()
	apiClient := client.New(server, nil)

	err = apiClient.Submit(cmd.Context(), client.SubmitRequest{
		StudentAnswerText: studentAnswer,
		QuestionPaperText: questionPaper,
		AnswerKeyText:     answerKey,
		Filename:          title,
		EvaluationID:      id,
		Tone:              tone,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Evaluation started: %s\n", id)
	if noWait {
		return nil
	}

	store := client.NewStore()
	store.Add(client.Evaluation{
		ID:     id,
		Title:  title,
		Status: client.StatusProcessing,
		Date:   time.Now().Format("2006-01-02"),
	})

	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	poller := client.NewPoller(apiClient, store, logger, interval)
	defer poller.Stop()
	poller.Track(id)

	evaluation := waitForTerminal(store, id)
	if evaluation.Status == client.StatusError {
		return fmt.Errorf("evaluation failed: %s", evaluation.Error)
	}

	printReport(cmd, evaluation)
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	server, _ := cmd.Flags().GetString("server")

	state, err := client.New(server, nil).FetchState(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Status: %s\n", state.Status)
	if state.Error != "" {
		fmt.Fprintf(out, "Error: %s\n", state.Error)
	}
	if state.Result != nil {
		fmt.Fprintf(out, "Score: %d/100\n", state.Result.Score)
	}

	return nil
}

func waitForTerminal(store *client.Store, id string) client.Evaluation {
	for {
		evaluation, ok := store.Get(id)
		if ok && evaluation.Status.Terminal() {
			return evaluation
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func printReport(cmd *cobra.Command, evaluation client.Evaluation) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n%s\n", evaluation.Title)
	if evaluation.Score != nil {
		fmt.Fprintf(out, "Score: %d/100\n", *evaluation.Score)
	}
	if evaluation.FeedbackSummary != "" {
		fmt.Fprintf(out, "\nFeedback:\n%s\n", evaluation.FeedbackSummary)
	}

	if len(evaluation.ImprovementTips) > 0 {
		fmt.Fprintln(out, "\nImprovement tips:")
		for _, tip := range evaluation.ImprovementTips {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
	}

	for _, question := range evaluation.Questions {
		fmt.Fprintf(out, "\nQ%d (%s, %s): %s\n", question.ID, question.Evaluation, question.Score, question.Question)
		if question.Reasoning != "" {
			fmt.Fprintf(out, "  %s\n", question.Reasoning)
		}
	}
}
