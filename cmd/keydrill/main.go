// Package main provides the CLI entrypoint for keydrill.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/keydrill/internal/config"
	"github.com/verte-zerg/keydrill/internal/generator"
	"github.com/verte-zerg/keydrill/internal/model"
	"github.com/verte-zerg/keydrill/internal/session"
	"github.com/verte-zerg/keydrill/internal/stats"
	"github.com/verte-zerg/keydrill/internal/text"
	"github.com/verte-zerg/keydrill/internal/tui"
	"github.com/verte-zerg/keydrill/internal/wordlist"
)

const (
	defaultMode    = "text"
	defaultTimeSec = 60
	defaultBonus   = 0
	defaultWords   = 25
)

var (
	practiceMode  string
	practiceTime  int
	practiceBonus int
	practiceSeed  int64
	practiceWords int
	practiceText  string
	practiceVocab string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "keydrill",
		Short:         "TUI typing trainer with timed sessions and challenge text",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "practice mode: text or challenge")
	rootCmd.Flags().IntVar(&practiceTime, "time", defaultTimeSec, "session time limit in seconds")
	rootCmd.Flags().IntVar(&practiceBonus, "bonus", defaultBonus, "bonus seconds per committed segment (0-60)")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "challenge seed (0: derive from current time)")
	rootCmd.Flags().IntVar(&practiceWords, "words", defaultWords, "words per challenge segment")
	rootCmd.Flags().StringVar(&practiceText, "file", "", "plain-text file to type (text mode)")
	rootCmd.Flags().StringVar(&practiceVocab, "vocab", "", "custom challenge vocabulary file")

	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyIntConfig(cmd, "time", &practiceTime, fileCfg.Practice.TimeSec)
	applyIntConfig(cmd, "bonus", &practiceBonus, fileCfg.Practice.BonusSec)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyIntConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyStringConfig(cmd, "file", &practiceText, fileCfg.Practice.Text)
	applyStringConfig(cmd, "vocab", &practiceVocab, fileCfg.Practice.Vocab)

	cfg := model.Config{
		Mode:      model.Mode(practiceMode),
		TimeLimit: time.Duration(practiceTime) * time.Second,
		BonusSec:  clampBonus(practiceBonus),
		Seed:      practiceSeed,
		Words:     practiceWords,
		TextPath:  practiceText,
		VocabPath: practiceVocab,
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().Unix()
	}

	if err := validateConfig(cfg); err != nil {
		return err
	}

	provider, err := buildProvider(cfg)
	if err != nil {
		return err
	}

	sess := session.New(cfg.Mode, cfg.TimeLimit, provider)
	uiModel := tui.NewModel(cfg, sess)
	program := tea.NewProgram(uiModel, tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	final, ok := finalModel.(*tui.Model)
	if !ok {
		return nil
	}
	if summary := final.Summary(); summary != nil {
		if err := stats.RenderSummary(cmd.OutOrStdout(), *summary, 0); err != nil {
			return fmt.Errorf("failed to render summary: %w", err)
		}
	}
	return nil
}

func buildProvider(cfg model.Config) (session.Provider, error) {
	switch cfg.Mode {
	case model.ModeText:
		if cfg.TextPath == "" {
			return text.Default(), nil
		}
		paragraphs, err := text.LoadFile(cfg.TextPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load text file: %w", err)
		}
		if len(paragraphs) == 0 {
			logErrf("text file %s has no paragraphs; using built-in text\n", cfg.TextPath)
			return text.Default(), nil
		}
		return text.New(paragraphs), nil
	case model.ModeChallenge:
		vocab := generator.DefaultVocabulary
		if cfg.VocabPath != "" {
			loaded, err := wordlist.LoadWords(cfg.VocabPath)
			if err != nil {
				return nil, fmt.Errorf("failed to load vocabulary: %w", err)
			}
			loaded = wordlist.Filter(loaded, wordlist.Typable)
			if len(loaded) == 0 {
				return nil, fmt.Errorf("vocabulary %s has no typable words", cfg.VocabPath)
			}
			vocab = loaded
		}
		return generator.NewChallenge(cfg.Seed, cfg.Words, vocab), nil
	default:
		return nil, fmt.Errorf("--mode must be %q or %q", model.ModeText, model.ModeChallenge)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

// clampBonus keeps bonus seconds in range instead of rejecting them.
func clampBonus(seconds int) int {
	if seconds < 0 {
		return 0
	}
	if seconds > 60 {
		return 60
	}
	return seconds
}

func validateConfig(cfg model.Config) error {
	if cfg.Mode != model.ModeText && cfg.Mode != model.ModeChallenge {
		return fmt.Errorf("--mode must be %q or %q", model.ModeText, model.ModeChallenge)
	}
	if cfg.TimeLimit <= 0 {
		return fmt.Errorf("--time must be > 0")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# keydrill configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# mode = %q           # Practice mode: text or challenge
# time = %d             # Session time limit in seconds
# bonus = %d             # Bonus seconds per committed segment (0-60)
# seed = 0              # Challenge seed (0: derive from current time)
# words = %d            # Words per challenge segment
# text = ""             # Plain-text file to type (text mode)
# vocab = ""            # Custom challenge vocabulary file
`,
		defaultMode,
		defaultTimeSec,
		defaultBonus,
		defaultWords,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
