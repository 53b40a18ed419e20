package digitize

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Step identifies a stage of the digitization wizard.
type Step int

// Wizard steps in order.
const (
	StepSampling Step = iota
	StepQuantization
	StepCoding
	StepResult
)

// Steps lists all wizard steps in order.
var Steps = []Step{StepSampling, StepQuantization, StepCoding, StepResult}

// String returns the English name of the step.
func (s Step) String() string {
	switch s {
	case StepSampling:
		return "Sampling"
	case StepQuantization:
		return "Quantization"
	case StepCoding:
		return "Coding"
	case StepResult:
		return "Result"
	default:
		return "Unknown"
	}
}

// Label returns the step name in the given language.
// Unsupported languages fall back to English.
func (s Step) Label(tag language.Tag) string {
	p := message.NewPrinter(tag)
	switch s {
	case StepSampling:
		return p.Sprintf("Sampling")
	case StepQuantization:
		return p.Sprintf("Quantization")
	case StepCoding:
		return p.Sprintf("Coding")
	case StepResult:
		return p.Sprintf("Result")
	default:
		return s.String()
	}
}

// Message keys shared by the Result summary.
const (
	msgResolution = "Resolution: %d × %d"
	msgGradation  = "Gradation: %d levels"
	msgData       = "Data:"
)

func init() {
	for key, msg := range map[string]string{
		"Sampling":     "標本化",
		"Quantization": "量子化",
		"Coding":       "符号化",
		"Result":       "結果",
		msgResolution:  "解像度：縦 %d × 横 %d",
		msgGradation:   "階調：%d 階調",
		msgData:        "データ：",
	} {
		mustSetString(language.Japanese, key, msg)
	}
}

func mustSetString(tag language.Tag, key, msg string) {
	if err := message.SetString(tag, key, msg); err != nil {
		panic("digitize: catalog " + tag.String() + " " + key + ": " + err.Error())
	}
}
