package validate

import "regexp"

// The screens match lowercased input. Russian and English variants sit in the
// same table since drafts arrive in either language.

var unclearPatterns = compileAll(
	`не знаю`,
	`не определ`,
	`как получится`,
	`потом решим`,
	`позже решим`,
	`неизвестн`,
	`что-нибудь`,
	`сколько-нибудь`,
	`don'?t know`,
	`not sure`,
	`to be (?:decided|determined)`,
	`\btbd\b`,
)

var prohibitedPatterns = compileAll(
	`алкогол`,
	`(?:^|[^\p{L}])вин(?:о|а|у|е|ом)(?:[^\p{L}]|$)`,
	`(?:^|[^\p{L}])пив(?:о|а|у|е|ом)(?:[^\p{L}]|$)`,
	`водк`,
	`свинин`,
	`сигарет`,
	`табак`,
	`наркотик`,
	`казино`,
	`азартн`,
	`alcohol`,
	`\bwine\b`,
	`\bbeer\b`,
	`vodka`,
	`\bpork\b`,
	`cigarette`,
	`tobacco`,
	`\bdrugs?\b`,
	`casino`,
	`gambling`,
)

// interestStrictPatterns are phrases that promise a return above the
// principal regardless of how the number is written.
var interestStrictPatterns = compileAll(
	`сверху`,
	`за время пользован`,
	`за пользован`,
	`с надбавк`,
	`вернуть больше`,
	`переплат`,
	`on top of`,
	`pay back more`,
	`\binterest\b`,
)

// interestGenericPatterns catch bare percent notation. Fields that
// legitimately carry percentages opt out via AllowPercent.
//
// Go's \b is ASCII-only, so Cyrillic stems here and in prohibitedPatterns use
// explicit non-letter boundaries instead.
var interestGenericPatterns = compileAll(
	`(?:^|[^\p{L}])процент`,
	`%`,
	`\bpercent`,
)

var hedgedPricePatterns = compileAll(
	`примерно`,
	`около`,
	`ориентировочно`,
	`по рыночн`,
	`зависит`,
	`approximate`,
	`\babout\b`,
	`market price`,
	`depends`,
)

var profitGuaranteePatterns = compileAll(
	`гарантир`,
	`фиксированн\S* прибыл`,
	`guarantee`,
	`fixed profit`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		out[i] = regexp.MustCompile(p)
	}
	return out
}

func matchAny(patterns []*regexp.Regexp, lowered string) bool {
	for _, re := range patterns {
		if re.MatchString(lowered) {
			return true
		}
	}
	return false
}
