package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ivan-guerra/rot13/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInputRead:
			return "failed to read standard input: " + causeOf(oe)

		case domain.KindOutputWrite:
			return "failed to write output: " + causeOf(oe)

		case domain.KindLogSetup:
			return "cannot open log file " + oe.Path + ": " + causeOf(oe)

		case domain.KindNotFound:
			if strings.TrimSpace(oe.Path) != "" {
				return "config file not found: " + oe.Path
			}
			return "not found"

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) == "" {
				return "invalid config"
			}
			base := filepath.Base(oe.Path)
			if line := extractLine(err.Error()); line != "" {
				return "invalid YAML at " + base + " line " + line
			}
			return "invalid config at " + base
		}
	}

	return err.Error()
}

func causeOf(oe *domain.OpError) string {
	if oe.Err == nil {
		return string(oe.Kind)
	}
	return oe.Err.Error()
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

func renderError(w io.Writer, err error) {
	th := newTheme(w)
	fmt.Fprintf(w, "%s %s\n", th.ErrorLabel.Render("Error:"), th.ErrorText.Render(userMessage(err)))
}
