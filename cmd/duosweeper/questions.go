package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/duosweeper/internal/games/duosweeper/questions"
)

var flagQuestionsShow bool

var questionsCmd = &cobra.Command{
	Use:   "questions [path]",
	Short: "Validate and summarize a question bank",
	Long: `Loads a question bank and reports how many questions it holds per
difficulty, together with the reward for answering each kind.

The path may be a YAML file or a directory of YAML files. Without a path
the bank from the config (or the built-in bank) is checked.

Examples:
  duosweeper questions
  duosweeper questions ./my-questions.yaml
  duosweeper questions ./banks/ --show`,
	Args: cobra.MaximumNArgs(1),
	Run:  runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&flagQuestionsShow, "show", false, "Print every question with its answer")
}

func runQuestions(_ *cobra.Command, args []string) {
	e, err := loadEnv(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer e.Close()

	bank, source := e.bank, e.cfg.Questions.BankPath
	if len(args) == 1 {
		source = args[0]
		bank, err = questions.Load(source)
		if err != nil {
			fail("%v", err)
		}
	}
	if source == "" {
		source = "built-in"
	}

	fmt.Printf("Question bank: %s\n", source)
	fmt.Printf("%d questions, all valid.\n\n", bank.Len())

	counts := bank.CountByDifficulty()
	fmt.Printf("  %-8s  %-5s  %-18s  %s\n", "Level", "Count", "Correct", "Wrong")
	fmt.Printf("  %-8s  %-5s  %-18s  %s\n", "-----", "-----", "-------", "-----")
	for _, d := range questions.Difficulties() {
		right := e.rewards.For(d, true)
		wrong := e.rewards.For(d, false)
		fmt.Printf("  %-8s  %-5d  %-18s  %s\n", d, counts[d],
			fmt.Sprintf("%+d lives %+d pts", right.Lives, right.Score),
			fmt.Sprintf("%+d lives %+d pts", wrong.Lives, wrong.Score))
	}

	if !flagQuestionsShow {
		return
	}

	fmt.Println()
	for _, q := range bank.All() {
		fmt.Printf("[%s] (%s) %s\n", q.ID, q.Difficulty, q.Text)
		for i, opt := range q.Options {
			mark := " "
			if q.IsCorrect(i) {
				mark = "*"
			}
			fmt.Printf("   %s %d) %s\n", mark, i+1, opt)
		}
	}
}
