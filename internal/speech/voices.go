package speech

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Voice describes one installed synthesizer voice.
type Voice struct {
	Name     string
	Language string
	Gender   string
}

// ListVoices asks the local synthesizer for its installed voices.
func (e *LocalEngine) ListVoices(ctx context.Context) ([]Voice, error) {
	var cmd *exec.Cmd
	if isSay(e.binary) {
		cmd = exec.CommandContext(ctx, e.binary, "-v", "?")
	} else {
		cmd = exec.CommandContext(ctx, e.binary, "--voices")
	}
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("listing voices: %w", err)
	}
	if isSay(e.binary) {
		return parseSayVoices(out), nil
	}
	return parseEspeakVoices(out), nil
}

// parseSayVoices parses `say -v ?` output. Lines look like:
//
//	Karen               en_AU    # Hello, my name is Karen.
func parseSayVoices(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		line := sc.Text()
		name, rest, found := strings.Cut(line, "  ")
		if !found || name == "" {
			continue
		}
		rest = strings.TrimSpace(rest)
		lang, _, _ := strings.Cut(rest, " ")
		voices = append(voices, Voice{
			Name:     strings.TrimSpace(name),
			Language: strings.TrimSpace(lang),
		})
	}
	return voices
}

// parseEspeakVoices parses `espeak --voices` output. Lines look like:
//
//	Pty Language Age/Gender VoiceName          File          Other Languages
//	 2  en-gb    M  english             en            (en 2)
func parseEspeakVoices(out []byte) []Voice {
	var voices []Voice
	sc := bufio.NewScanner(bytes.NewReader(out))
	first := true
	for sc.Scan() {
		if first {
			first = false // header row
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) < 4 {
			continue
		}
		gender := ""
		switch fields[2] {
		case "F":
			gender = "female"
		case "M":
			gender = "male"
		}
		voices = append(voices, Voice{
			Name:     fields[3],
			Language: fields[1],
			Gender:   gender,
		})
	}
	return voices
}

// voicePreferences is checked in order against voice name, gender and
// language. The first match wins. Tuned for a warm storytelling voice.
var voicePreferences = []func(Voice) bool{
	func(v Voice) bool { return strings.Contains(v.Name, "Karen") },
	func(v Voice) bool { return strings.Contains(v.Name, "Samantha") },
	func(v Voice) bool { return strings.Contains(v.Name, "Google") },
	func(v Voice) bool { return v.Gender == "female" },
	func(v Voice) bool {
		lang := strings.ToLower(strings.ReplaceAll(v.Language, "_", "-"))
		return strings.HasPrefix(lang, "en-gb") || strings.HasPrefix(lang, "en-uk")
	},
}

// PreferredVoice picks the best storytelling voice from the installed
// set. It returns "" when nothing stands out, leaving the synthesizer
// on its default.
func PreferredVoice(voices []Voice) string {
	for _, pref := range voicePreferences {
		for _, v := range voices {
			if pref(v) {
				return v.Name
			}
		}
	}
	return ""
}
