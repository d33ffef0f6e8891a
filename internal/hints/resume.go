package hints

import (
	"fmt"
	"regexp"
	"strings"
)

// Severity grades a résumé hint. None of them blocks an export.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Hint codes. Missing-section hints use "MISSING_" plus the section code.
const (
	CodeSummaryTooLong = "SUMMARY_TOO_LONG"
	CodeNoMetrics      = "NO_METRICS_IN_EXPERIENCE"
	codeMissingPrefix  = "MISSING_"
)

// MaxSummaryWords is the longest summary that passes without a hint.
const MaxSummaryWords = 150

// Hint is one content suggestion.
type Hint struct {
	Code     string
	Title    string
	Message  string
	Severity Severity
}

// String renders the hint on one line for terminal output.
func (h Hint) String() string {
	return fmt.Sprintf("[%s] %s: %s", h.Severity, h.Title, h.Message)
}

// keySection is a section applicant tracking systems expect, detected by
// keyword anywhere in the lowercased source.
type keySection struct {
	code     string
	name     string
	keywords []string
}

var keySections = []keySection{
	{
		code:     "CONTACT",
		name:     "Contact information",
		keywords: []string{"email", "e-mail", "correo", "phone", "teléfono", "linkedin", "contact", "contacto"},
	},
	{
		code:     "EXPERIENCE",
		name:     "Work experience",
		keywords: []string{"experience", "experiencia", "employment", "trabajo", "career"},
	},
	{
		code:     "EDUCATION",
		name:     "Education",
		keywords: []string{"education", "educación", "university", "universidad", "school"},
	},
	{
		code:     "SKILLS",
		name:     "Skills",
		keywords: []string{"skills", "habilidades", "technical", "técnica"},
	},
}

var (
	// A section body runs up to the next level-two heading or the end of
	// input; "###" subsections stay inside it.
	summaryPattern = regexp.MustCompile(
		`(?ims)^##\s+(?:professional\s+summary|summary|profile|perfil\s+profesional|resumen\s+profesional|perfil|resumen)(.*?)(?:^##\s|\z)`)
	experiencePattern = regexp.MustCompile(`(?ims)^##\s+(?:experience|experiencia)(.*?)(?:^##\s|\z)`)
	metricPattern     = regexp.MustCompile(
		`(?i)(\d+%|\d+\s*[KMk]|times|veces|increased|decreased|improved|reduced|reducción|mejora|optimización)`)
)

// CheckResume inspects markdown for common résumé weaknesses. The result
// is empty when nothing was found.
func CheckResume(markdown string) []Hint {
	var out []Hint
	if h, ok := checkSummaryLength(markdown); ok {
		out = append(out, h)
	}
	out = append(out, checkMissingSections(markdown)...)
	if h, ok := checkMetrics(markdown); ok {
		out = append(out, h)
	}
	return out
}

func checkSummaryLength(markdown string) (Hint, bool) {
	m := summaryPattern.FindStringSubmatch(markdown)
	if m == nil {
		return Hint{}, false
	}
	words := len(strings.Fields(m[1]))
	if words <= MaxSummaryWords {
		return Hint{}, false
	}
	return Hint{
		Code:  CodeSummaryTooLong,
		Title: "Professional summary is long",
		Message: fmt.Sprintf("your summary has %d words; keep it under %d for better ATS compatibility",
			words, MaxSummaryWords),
		Severity: SeverityInfo,
	}, true
}

func checkMissingSections(markdown string) []Hint {
	lower := strings.ToLower(markdown)
	var out []Hint
	for _, s := range keySections {
		if containsAny(lower, s.keywords) {
			continue
		}
		out = append(out, Hint{
			Code:     codeMissingPrefix + s.code,
			Title:    "Missing section: " + s.name,
			Message:  fmt.Sprintf("no %q section detected; applicant tracking systems expect it", s.name),
			Severity: SeverityWarning,
		})
	}
	return out
}

func checkMetrics(markdown string) (Hint, bool) {
	m := experiencePattern.FindStringSubmatch(markdown)
	if m == nil || metricPattern.MatchString(m[1]) {
		return Hint{}, false
	}
	return Hint{
		Code:     CodeNoMetrics,
		Title:    "Consider adding metrics to your experience",
		Message:  `quantified results (e.g. "cut load time by 40%") make a résumé stronger`,
		Severity: SeverityInfo,
	}, true
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
