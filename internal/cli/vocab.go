package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sprachlog/sprachlog/internal/domain"
)

func init() {
	vocabAddCmd.Flags().StringVar(&vocabLevel, "level", "A1", "CEFR level (A1-C2)")
	vocabAddCmd.Flags().StringVar(&vocabExample, "example", "", "Example sentence")
	vocabAddCmd.Flags().StringVar(&vocabCategory, "category", "", "Category (e.g. verbs, food)")
	vocabAddCmd.Flags().StringVar(&vocabSource, "source", "", "Where the word came from")
	vocabListCmd.Flags().IntVar(&vocabLimit, "limit", 50, "Maximum entries to show")

	vocabCmd.AddCommand(vocabAddCmd)
	vocabCmd.AddCommand(vocabListCmd)
	rootCmd.AddCommand(vocabCmd)
}

var (
	vocabLevel    string
	vocabExample  string
	vocabCategory string
	vocabSource   string
	vocabLimit    int
)

var vocabCmd = &cobra.Command{
	Use:   "vocab",
	Short: "Manage the vocabulary bank",
}

var vocabAddCmd = &cobra.Command{
	Use:   "add <word> <translation>",
	Short: "Add a word to the vocabulary bank",
	Long: `Add a word to the vocabulary bank. Adding a word counts as study
activity for the day and keeps the streak alive.`,
	Args: cobra.ExactArgs(2),
	RunE: runVocabAdd,
}

var vocabListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List vocabulary, newest first",
	RunE:    runVocabList,
}

func runVocabAdd(cmd *cobra.Command, args []string) error {
	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	entry, err := d.Tracker.AddVocabulary(domain.VocabularyEntry{
		Word:        args[0],
		Translation: args[1],
		Example:     vocabExample,
		Level:       domain.CEFRLevel(vocabLevel),
		Category:    vocabCategory,
		Source:      vocabSource,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Added %q (%s) on %s\n", entry.Word, entry.Level, entry.Date)
	return nil
}

func runVocabList(cmd *cobra.Command, args []string) error {
	d, err := openApp()
	if err != nil {
		return err
	}
	defer d.Close()

	words, err := d.Tracker.Vocabulary(vocabLimit)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Println("Vocabulary bank is empty. Run 'sprachlog vocab add <word> <translation>'.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "WORD\tTRANSLATION\tLEVEL\tDATE")
	for _, v := range words {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.Word, v.Translation, v.Level, v.Date)
	}
	return w.Flush()
}
