package git

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Characters used to delimit the machine-readable metadata appended to
// each log line. They must never appear in commit messages; these are
// obscure enough in practice.
const (
	metaSep      = '⸺' // two-em dash
	initialQuote = '╠'
	finalQuote   = '╣'
)

// identityStyle is the light blue used to highlight the configured
// identity's commits in log output
var identityStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0cfe3"))

var (
	ansiRe   = regexp.MustCompile("\x1b\\[[0-9;]*m")
	authorRe = regexp.MustCompile(`<(?P<author>[^>]*)>`)

	commitLogRe = regexp.MustCompile(fmt.Sprintf(
		`^(?P<raw>(?P<hash>[a-f0-9]+)\s-\s(\((?P<meta>[^)]+)\)\s)?(?P<message>.+)\((?P<daterepr>[^)]+)\)\s<(?P<author>[^>]*)>)%[1]cdateabs:\s%[2]c(?P<dateabs>[^%[3]c]+)%[3]c,\shash:\s%[2]c(?P<fullhash>[a-f0-9]+)%[3]c,\semail:\s%[2]c(?P<email>[^%[3]c]*)%[3]c$`,
		metaSep, initialQuote, finalQuote,
	))
)

// StripANSI removes terminal colour escapes from a string
func StripANSI(s string) string {
	return ansiRe.ReplaceAllString(s, "")
}

// Commit is a single parsed commit from the git log
type Commit struct {
	Hash    string // full hash
	Meta    string // ref decorations, if any
	Subject string
	Date    CommitDate
	ID      Identity
	Raw     string // the rendered log line, as git produced it
}

// CommitDate carries both the absolute commit time and the
// representation that was rendered in the log line
type CommitDate struct {
	Abs  time.Time
	Repr string
}

// Log returns the rendered log lines for the last n commits. Lines are
// coloured by git itself; authors matching the given identities are
// additionally highlighted.
func Log(n int, opts LogOptions, identities []string) ([]string, error) {
	out, err := runGit("", logArgs(n, opts, false)...)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = highlightIdentity(line, opts, identities)
	}
	if opts.Reverse {
		reverseLines(lines)
	}
	return lines, nil
}

// Commits returns structured commits for the last n commits (all of them
// when n <= 0 or opts.All is set), oldest first when opts.Reverse is set.
func Commits(n int, opts LogOptions) ([]Commit, error) {
	out, err := runGit("", logArgs(n, opts, true)...)
	if err != nil {
		// A repository with no commits yet has no log, not a broken one
		if inRepository() && !headExists() {
			return nil, nil
		}
		return nil, err
	}

	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		stripped := StripANSI(line)
		match := commitLogRe.FindStringSubmatch(stripped)
		if match == nil {
			continue
		}

		fields := make(map[string]string)
		for i, name := range commitLogRe.SubexpNames() {
			if name != "" {
				fields[name] = match[i]
			}
		}

		date, err := parseCommitDate(fields["dateabs"], opts.Relative)
		if err != nil {
			return nil, fmt.Errorf("failed to parse commit date %q: %v", fields["dateabs"], err)
		}

		commits = append(commits, Commit{
			Hash:    fields["fullhash"],
			Meta:    fields["meta"],
			Subject: strings.TrimSpace(fields["message"]),
			Date:    CommitDate{Abs: date, Repr: fields["daterepr"]},
			ID:      Identity{Email: fields["email"], Names: []string{fields["author"]}},
			Raw:     fields["raw"],
		})
	}

	if opts.Reverse {
		reverseCommits(commits)
	}
	return commits, nil
}

func parseCommitDate(s string, relative bool) (time.Time, error) {
	if relative {
		// --date=rfc produces RFC 2822 dates
		return time.Parse("Mon, 2 Jan 2006 15:04:05 -0700", s)
	}
	return time.ParseInLocation("Mon 02 Jan 2006", s, time.Local)
}

// logArgs builds the git log invocation. withMeta appends the
// machine-readable metadata used for structured parsing.
func logArgs(n int, opts LogOptions, withMeta bool) []string {
	args := []string{"log", "--color", "--no-merges"}

	pretty := logFormat(opts)
	if withMeta {
		pretty = fmt.Sprintf("%s%cdateabs: %s, hash: %s, email: %s",
			pretty, metaSep, quote("%cd"), quote("%H"), quote("%ae"))
	}
	args = append(args, "--pretty=format:"+pretty)

	if opts.Relative {
		// The relative time is rendered by %cr, but the metadata still
		// wants a parseable absolute date
		if withMeta {
			args = append(args, "--date=rfc")
		}
	} else {
		args = append(args, "--date=format:%a %d %b %Y")
	}

	for _, author := range opts.Authors {
		args = append(args, "--author", author)
	}
	for _, needle := range opts.Needles {
		args = append(args, "--grep", needle)
	}

	args = append(args, "--abbrev-commit")

	if n > 0 && !opts.All {
		args = append(args, "-n", strconv.Itoa(n))

		// When showing the oldest end of the log, skip everything before
		// the last n commits
		if opts.Reverse {
			if total, err := CommitCountAll(); err == nil && total > n {
				args = append(args, "--skip="+strconv.Itoa(total-n))
			}
		}
	}

	return args
}

// logFormat builds the --pretty segment: abbreviated hash, decorations,
// subject, commit time, author
func logFormat(opts LogOptions) string {
	commit := colouriseLogFmt("h", "bold yellow", "", "", opts)
	branchTag := colouriseLogFmt("d", "bold green", "-", "", opts)
	msg := colouriseLogFmt("s", "", "", "", opts)
	timeFmt := "cr"
	if !opts.Relative {
		timeFmt = "cd"
	}
	when := colouriseLogFmt(timeFmt, "bold red", "", "()", opts)
	author := colouriseLogFmt("an", "bold blue", "", "<>", opts)
	return fmt.Sprintf("%s %s %s %s %s", commit, branchTag, msg, when, author)
}

func colouriseLogFmt(fmtChar, colour, prefix, enclosing string, opts LogOptions) string {
	start, end := splitEnclosing(enclosing)
	if opts.Colour && colour != "" {
		return fmt.Sprintf("%s%%C(%s)%s%%%s%s%%Creset", prefix, colour, start, fmtChar, end)
	}
	return fmt.Sprintf("%s%s%%%s%s", prefix, start, fmtChar, end)
}

func splitEnclosing(enclosing string) (string, string) {
	if enclosing == "" {
		return "", ""
	}
	runes := []rune(enclosing)
	i := len(runes)/2 + len(runes)%2
	return string(runes[:i]), string(runes[i:])
}

func quote(s string) string {
	return fmt.Sprintf("%c%s%c", initialQuote, s, finalQuote)
}

// highlightIdentity re-colours the author segment of a rendered log line
// when the author is the configured identity
func highlightIdentity(line string, opts LogOptions, identities []string) string {
	if !opts.Colour || len(identities) == 0 {
		return line
	}

	match := authorRe.FindStringSubmatch(StripANSI(line))
	if match == nil {
		return line
	}
	author := match[1]

	me := false
	for _, id := range identities {
		if id == author {
			me = true
			break
		}
	}
	if !me {
		return line
	}

	return authorRe.ReplaceAllStringFunc(line, func(m string) string {
		inner := strings.TrimSuffix(strings.TrimPrefix(m, "<"), ">")
		return identityStyle.Render("<" + StripANSI(inner) + ">")
	})
}

func reverseLines(lines []string) {
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
}

func reverseCommits(commits []Commit) {
	for i, j := 0, len(commits)-1; i < j; i, j = i+1, j-1 {
		commits[i], commits[j] = commits[j], commits[i]
	}
}
