package detectors

import (
	"regexp"
	"strings"

	"bigocheck/internal/lang"
	"bigocheck/internal/models"
)

var (
	digitsOnly    = regexp.MustCompile(`^\d+$`)
	lnWord        = regexp.MustCompile(`(?i)\bln\b`)
	singleIdent   = regexp.MustCompile(`^[A-Za-z_$][\w$]*$`)
	identArith    = regexp.MustCompile(`^[A-Za-z_$][\w$]*\s*[+\-*/]\s*[\w$]+$`)
	comparisonRHS = regexp.MustCompile(`(?:<=|>=|<|>)\s*([^;)&|]+)`)

	// self-scaling loop updates: i *= 2, n /= 2, n //= 2, i >>= 1, i = i * 2
	logUpdates = []*regexp.Regexp{
		regexp.MustCompile(`[\w$]\s*[*/]{1,2}=\s*[\d.]`),
		regexp.MustCompile(`[\w$]\s*>>=?\s*\d`),
		regexp.MustCompile(`([\w$]+)\s*=\s*([\w$]+)\s*[*/]`),
		regexp.MustCompile(`([\w$]+)\s*=\s*([\w$]+)\s*>>`),
	}
)

// ClassifyBound maps one bound expression string to a complexity factor.
// Everything that is not a plain literal or a log-ish term is taken as linear;
// that is the safe default, not a failure.
func ClassifyBound(bound string) models.ComplexityClass {
	bound = strings.TrimSpace(bound)
	switch {
	case bound == "":
		return models.ClassLinear
	case digitsOnly.MatchString(bound):
		return models.ClassConstant
	case strings.Contains(strings.ToLower(bound), "log") || lnWord.MatchString(bound):
		return models.ClassLogarithmic
	case singleIdent.MatchString(bound):
		return models.ClassLinear
	case identArith.MatchString(bound):
		return models.ClassLinear
	default:
		return models.ClassLinear
	}
}

// LooksLogarithmic reports whether a loop line carries a self-multiplicative
// or self-divisive update. This is orthogonal to bound classification: it can
// mark a loop logarithmic even when the extracted bound looks linear.
func LooksLogarithmic(line string) bool {
	for _, re := range logUpdates {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// the two-group patterns must scale the same variable
		if len(m) == 3 && m[1] != m[2] {
			continue
		}
		return true
	}
	return false
}

// ClassifyLoopLine classifies a whole loop header line: the bound expression
// is extracted through the profile's loop patterns first, so a constant bound
// like "i < 10" classifies as constant even though the full line never does.
// Lines matching no pattern classify on their raw text.
func ClassifyLoopLine(line string, profile *lang.Profile) models.ComplexityClass {
	class := ClassifyBound(line)
	if pat, capture, ok := matchLoop(line, profile); ok {
		class = ClassifyBound(ExtractBound(pat.Bound, capture))
	}
	if LooksLogarithmic(line) {
		class = models.ClassLogarithmic
	}
	return class
}

// ExtractBound pulls the bound expression out of a loop pattern match.
func ExtractBound(kind lang.BoundKind, capture string) string {
	switch kind {
	case lang.BoundRange:
		args := strings.Split(capture, ",")
		// range(stop) / range(start, stop[, step])
		if len(args) >= 2 {
			return strings.TrimSpace(args[1])
		}
		return strings.TrimSpace(args[0])
	case lang.BoundCondition:
		if m := comparisonRHS.FindStringSubmatch(capture); m != nil {
			return strings.TrimSpace(m[1])
		}
		return "n"
	case lang.BoundExpr:
		return strings.TrimSpace(capture)
	default:
		return "n"
	}
}

// NormalizeChain folds one nesting chain of bound factors into a single
// class: constant factors drop out, any logarithmic factor contributes one
// log term, and the linear factors multiply. Chains deeper than cubic clamp
// to cubic since the label set is fixed; a log factor beyond linearithmic is
// likewise absorbed by the polynomial term.
func NormalizeChain(chain []models.ComplexityClass) models.ComplexityClass {
	hasLog := false
	linear := 0
	for _, c := range chain {
		switch c {
		case models.ClassLogarithmic:
			hasLog = true
		case models.ClassConstant:
		default:
			linear++
		}
	}

	switch {
	case linear == 0 && !hasLog:
		return models.ClassConstant
	case linear == 0:
		return models.ClassLogarithmic
	case linear == 1 && hasLog:
		return models.ClassLinearithmic
	case linear == 1:
		return models.ClassLinear
	case linear == 2:
		return models.ClassQuadratic
	default:
		return models.ClassCubic
	}
}
