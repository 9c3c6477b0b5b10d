package prompt

import "strings"

// Instruction block markers inside a template.
const (
	InstructionsStart = "<!-- LLM_INSTRUCTIONS_START -->"
	InstructionsEnd   = "<!-- LLM_INSTRUCTIONS_END -->"
)

// SectionHeader separates the instructions from the diary text.
const SectionHeader = "# 入力された開発日記"

// Instructions returns the trimmed text between the instruction markers, or "" when absent.
func Instructions(templateText string) string {
	_, after, ok := strings.Cut(templateText, InstructionsStart)
	if !ok {
		return ""
	}

	block, _, ok := strings.Cut(after, InstructionsEnd)
	if !ok {
		return ""
	}

	return strings.TrimSpace(block)
}

// Structure returns the template with the instruction block (markers included) removed.
func Structure(templateText string) string {
	before, after, ok := strings.Cut(templateText, InstructionsStart)
	if !ok {
		return templateText
	}

	_, rest, ok := strings.Cut(after, InstructionsEnd)
	if !ok {
		return templateText
	}

	return strings.TrimRight(before, " \t\n") + "\n" + strings.TrimLeft(rest, " \t\n")
}

// Assemble builds the model prompt: instruction block, section header, then the raw diary.
func Assemble(templateText, diary string) string {
	var sb strings.Builder

	if instructions := Instructions(templateText); instructions != "" {
		sb.WriteString(instructions)
		sb.WriteString("\n\n")
	}

	sb.WriteString(SectionHeader)
	sb.WriteString("\n\n")
	sb.WriteString(diary)

	return sb.String()
}
