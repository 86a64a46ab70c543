// Package languages reports the language breakdown of a repository's
// worktree.
package languages

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/go-enry/go-enry/v2"
)

// detectionReadLimit caps how much of each file is read for language
// detection
const detectionReadLimit = 16 * 1024

// unknownLanguage groups files that no language could be detected for
const unknownLanguage = "UNKNOWN LANGUAGE"

// Summary is one language's share of the repository by file count
type Summary struct {
	Language   string
	FileCount  int
	Percentage float64
}

// Breakdown walks the worktree rooted at root and returns each detected
// language's share, largest first
func Breakdown(root string) ([]Summary, error) {
	counts := make(map[string]int)
	total := 0

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		content, err := readHead(path)
		if err != nil {
			// Unreadable files don't fail the whole breakdown
			return nil
		}
		if enry.IsBinary(content) {
			return nil
		}

		language := enry.GetLanguage(filepath.Base(path), content)
		if language == "" {
			language = unknownLanguage
		}
		counts[language]++
		total++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %v", root, err)
	}
	if total == 0 {
		return nil, nil
	}

	summaries := make([]Summary, 0, len(counts))
	for language, count := range counts {
		summaries = append(summaries, Summary{
			Language:   language,
			FileCount:  count,
			Percentage: float64(count*100) / float64(total),
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Percentage != summaries[j].Percentage {
			return summaries[i].Percentage > summaries[j].Percentage
		}
		return summaries[i].Language < summaries[j].Language
	})
	return summaries, nil
}

// Render formats the top n summaries, coloured with each language's
// canonical colour when one is known
func Render(summaries []Summary, topN int, colour bool) []string {
	if topN <= 0 || topN > len(summaries) {
		topN = len(summaries)
	}

	lines := make([]string, 0, topN)
	for _, summary := range summaries[:topN] {
		line := fmt.Sprintf("%6.2f%%  %s", summary.Percentage, summary.Language)
		if colour {
			if hex := enry.GetColor(summary.Language); hex != "" {
				line = lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(line)
			}
		}
		lines = append(lines, line)
	}
	return lines
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(io.LimitReader(f, detectionReadLimit))
	if err != nil {
		return nil, err
	}
	return content, nil
}
