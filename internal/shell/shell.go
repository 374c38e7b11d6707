// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package shell implements the interactive menu: a welcome prompt, free-text
// testing against the pattern registry, and extraction of the built-in
// sample corpus. All prompts and results go to the output writer; logs go
// through zap.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/regex-extractor/internal/extract"
	"github.com/pdiddy/regex-extractor/internal/patterns"
	"github.com/pdiddy/regex-extractor/internal/report"
	"github.com/pdiddy/regex-extractor/internal/sample"
	"github.com/pdiddy/regex-extractor/pkg/types"
)

const (
	toolName    = "Regex Data Extraction Tool"
	defaultName = "friend"

	menu = "\nWhat would you like to do?\n" +
		"1. Test your own data\n" +
		"2. See built-in sample extracted data\n" +
		"3. Exit\n"
)

// Shell runs the interactive session.
type Shell struct {
	cfg       types.Config
	reg       *patterns.Registry
	persister *report.Persister
	log       *zap.Logger
	sample    string
}

// New creates a shell extracting with reg and saving through persister.
func New(cfg types.Config, reg *patterns.Registry, persister *report.Persister, log *zap.Logger) *Shell {
	if log == nil {
		log = zap.NewNop()
	}
	return &Shell{
		cfg:       cfg,
		reg:       reg,
		persister: persister,
		log:       log.Named("shell"),
		sample:    sample.Text(),
	}
}

// session pairs the line reader with the output writer for one Run.
type session struct {
	r *bufio.Reader
	w io.Writer
}

func (s *session) say(format string, args ...any) {
	fmt.Fprintf(s.w, format, args...)
}

// ask prints prompt and reads one line without its line ending. A final
// line without a newline is returned before io.EOF.
func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.w, prompt)
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Run drives the session until the user exits, input ends or ctx is
// cancelled. End of input is a normal exit and returns nil.
func (sh *Shell) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s := &session{r: bufio.NewReader(in), w: out}
	sh.log.Info("session started", zap.Int("rules", sh.reg.Len()))

	name, err := sh.welcome(s)
	if err != nil {
		return sh.finish(s, name, err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.say(menu)
		choice, err := s.ask("Enter 1, 2, or 3: ")
		if err != nil {
			return sh.finish(s, name, err)
		}
		choice = strings.TrimSpace(choice)
		sh.log.Debug("menu choice", zap.String("choice", choice))

		switch choice {
		case "1":
			res, err := sh.testOwnData(ctx, s)
			sh.saveUserResult(s, res)
			if err != nil {
				return sh.finish(s, name, err)
			}
		case "2":
			sh.runSample(s, name)
		case "3":
			return sh.finish(s, name, nil)
		default:
			s.say("Invalid option. Please enter 1, 2, or 3.\n")
		}
	}
}

func (sh *Shell) welcome(s *session) (string, error) {
	s.say("Hello! Please enter your name:\n")
	name, err := s.ask("> ")
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultName
	}
	if err != nil {
		return name, err
	}

	s.say("\nHello %s 😊\n", name)
	s.say("Welcome to the %s!\n\n", toolName)
	s.say("This tool extracts %s from text.\n\n", categoryList(sh.reg.Categories()))
	s.say("These data types are essential for web scraping, data validation, and information retrieval from diverse text sources.\n\n")
	s.say("Let's get started...\n")
	return name, nil
}

// finish prints the goodbye message. End of input is treated like choosing
// exit; any other error is returned unchanged.
func (sh *Shell) finish(s *session, name string, err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	s.say("List the files in %s to view/verify/reference saved extracted data.\n", sh.persister.Dir())
	s.say("Goodbye, %s! 👋\n", name)
	sh.log.Info("session ended")
	return nil
}

// testOwnData loops over user-entered text and returns the last result.
func (sh *Shell) testOwnData(ctx context.Context, s *session) (*types.ExtractionResult, error) {
	var last *types.ExtractionResult
	for {
		if err := ctx.Err(); err != nil {
			return last, err
		}

		text, err := s.ask("\nEnter text to test (or type 'exit' to see your saved sample extraction): ")
		if err != nil {
			return last, err
		}
		if strings.EqualFold(strings.TrimSpace(text), "exit") {
			return last, nil
		}
		if strings.TrimSpace(text) == "" {
			s.say("Please enter your text.\n")
			continue
		}

		res, err := extract.Extract(sh.reg, text)
		if err != nil {
			sh.log.Warn("rejected input", zap.Error(err))
			s.say("Invalid input: %v. Please try again.\n", err)
			continue
		}

		s.say("\n--- User Test Results ---\n")
		if err := report.Render(s.w, res, sh.cfg.Output.Format); err != nil {
			return res, err
		}
		last = res

		again, err := s.ask("Test again? (yes/no): ")
		if err != nil {
			return last, err
		}
		if !strings.EqualFold(strings.TrimSpace(again), "yes") {
			return last, nil
		}
	}
}

// saveUserResult persists res when it holds at least one match.
func (sh *Shell) saveUserResult(s *session, res *types.ExtractionResult) {
	if res == nil || res.Empty() {
		s.say("No data was entered/extracted!\n")
		return
	}
	if _, err := sh.persister.Save(res); err != nil {
		s.say("An error occurred during data testing: %v\n", err)
		return
	}
	s.say("\nYour extracted data has been saved to respective files in %s:\n", sh.persister.Dir())
	sh.listSaved(s)
}

func (sh *Shell) runSample(s *session, name string) {
	res, err := extract.Extract(sh.reg, sh.sample)
	if err != nil {
		s.say("An error occurred during extraction/saving: %v\n", err)
		return
	}
	if err := report.PrintSummary(s.w, res); err != nil {
		s.say("An error occurred during extraction/saving: %v\n", err)
		return
	}
	if err := report.Render(s.w, res, sh.cfg.Output.Format); err != nil {
		s.say("An error occurred during extraction/saving: %v\n", err)
		return
	}
	if _, err := sh.persister.Save(res); err != nil {
		s.say("An error occurred during extraction/saving: %v\n", err)
		return
	}
	sh.log.Info("sample extracted", zap.Int("total_matches", res.Total()))

	s.say("Thank you for using the %s, %s!\nAll data was extracted and saved successfully.\n\n", toolName, name)
	s.say("Saved extracted data files in %s:\n", sh.persister.Dir())
	sh.listSaved(s)
}

func (sh *Shell) listSaved(s *session) {
	names, err := report.ListSaved(sh.persister.Dir())
	if err != nil {
		s.say("An error occurred while listing saved files: %v\n", err)
		return
	}
	for _, n := range names {
		s.say("  • %s\n", n)
	}
	s.say("Exit and list the files in %s to view/verify/reference.\n", sh.persister.Dir())
}

// categoryList joins category labels as "a, b, and c".
func categoryList(cats []types.Category) string {
	labels := make([]string, len(cats))
	for i, c := range cats {
		labels[i] = c.Label()
	}
	switch len(labels) {
	case 0:
		return "nothing"
	case 1:
		return labels[0]
	case 2:
		return labels[0] + " and " + labels[1]
	}
	return strings.Join(labels[:len(labels)-1], ", ") + ", and " + labels[len(labels)-1]
}
