package services

import (
	"strings"

	"chargen-connector/internal/domain/dto"
	"chargen-connector/internal/domain/entities"
)

// Substitution tables are ordered so a longer token ("fucking") is replaced
// before its substring ("fuck"); otherwise the tail of the longer word
// would survive the substitution.
var ssmlSubstitutions = [][2]string{
	{"fucking", `<phoneme ph="fʌkIn" />`},
	{"shit", `<phoneme ph="ʃIt" />`},
	{"fuck", `<phoneme ph="fʌk" />`},
	{"bitchy", `<phoneme ph="bItʃi" />`},
}

var nofanitySubstitutions = [][2]string{
	{"fucking", "friggin"},
	{"shit", "crap"},
	{"fuck", "f."},
	{"gotdamn", "got dang."},
	{"ass", "bottom"},
	{"bitchy", "prissy"},
}

// ProfanityToSsml case-folds input and renders known profane tokens as
// phonetic SSML markup.
func ProfanityToSsml(input string) string {
	return substitute(input, ssmlSubstitutions)
}

// ProfanityToNofanity case-folds input and replaces each profane token with
// a sanitized stand-in.
func ProfanityToNofanity(input string) string {
	return substitute(input, nofanitySubstitutions)
}

func substitute(input string, table [][2]string) string {
	output := strings.ToLower(input)
	for _, sub := range table {
		output = strings.ReplaceAll(output, sub[0], sub[1])
	}
	return output
}

// filterServiceOutput applies exactly one of the two transforms to the
// composed output. Rendering requires both the stored preference and the
// deployment flag; anything less sanitizes. Only the sanitize path touches
// the visual title.
func filterServiceOutput(out *dto.ServiceOutput, prefs *entities.UserPreferences, shitMode bool) {
	allowProfanity := prefs != nil && prefs.AllowProfanity != nil && *prefs.AllowProfanity && shitMode

	if allowProfanity {
		out.VoiceOutput.Ssmltext = ProfanityToSsml(out.VoiceOutput.Ssmltext)
		out.DelayedVoiceOutput.Ssmltext = ProfanityToSsml(out.DelayedVoiceOutput.Ssmltext)
	} else {
		out.VoiceOutput.Ssmltext = ProfanityToNofanity(out.VoiceOutput.Ssmltext)
		out.DelayedVoiceOutput.Ssmltext = ProfanityToNofanity(out.DelayedVoiceOutput.Ssmltext)
		out.VisualOutput.Title = ProfanityToNofanity(out.VisualOutput.Title)
	}
}
