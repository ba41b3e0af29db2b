package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/adsun-ai/adsun/internal/analyzer"
	"github.com/adsun-ai/adsun/internal/interview"
)

var documentCmd = &cobra.Command{
	Use:   "document",
	Short: "Document a process through a guided interview",
	Long:  `Runs the documentation interview in the terminal. Answers are analyzed as you go and the finished process is saved into the knowledge base.`,
	RunE:  runDocument,
}

func init() {
	rootCmd.AddCommand(documentCmd)
}

func runDocument(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	database, store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer database.Close()

	namePrompt := promptui.Prompt{
		Label: "Vaše meno",
		Validate: func(input string) error {
			if input == "" {
				return errors.New("meno je povinné")
			}
			return nil
		},
	}
	documenter, err := namePrompt.Run()
	if err != nil {
		return err
	}

	session := interview.NewSession(analyzer.New())
	fmt.Println(session.Start(documenter))
	fmt.Println()

	for !session.Done() {
		answerPrompt := promptui.Prompt{Label: "Odpoveď"}
		answer, err := answerPrompt.Run()
		if err != nil {
			// Ctrl+C ends the interview without saving.
			if errors.Is(err, promptui.ErrInterrupt) {
				fmt.Println("Rozhovor prerušený, nič sa neuložilo.")
				return nil
			}
			return err
		}

		fmt.Println()
		fmt.Println(session.ProcessResponse(answer))
		fmt.Println()
	}

	record := session.Finalize()
	if record.Name == "" {
		fmt.Println("Rozhovor nepriniesol žiadny proces na uloženie.")
		return nil
	}

	savePrompt := promptui.Select{
		Label: fmt.Sprintf("Uložiť proces %q do databázy?", record.Name),
		Items: []string{"áno", "nie"},
	}
	_, choice, err := savePrompt.Run()
	if err != nil || choice != "áno" {
		fmt.Println("Proces sa neuložil.")
		return nil
	}

	saved, err := store.Create(context.Background(), record)
	if err != nil {
		return fmt.Errorf("saving process: %w", err)
	}

	fmt.Printf("Proces %q uložený (ID %s).\n", saved.Name, saved.ID)
	return nil
}
