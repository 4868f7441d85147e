package ai

import "strings"

// Image is raw image bytes with their declared format.
type Image struct {
	Data     []byte
	MIMEType string
}

// Request is one user turn: text, an image, or both.
type Request struct {
	Text  string
	Image *Image
}

func (r Request) Empty() bool {
	return r.Text == "" && r.Image == nil
}

// GenerationOptions is the per-turn generation configuration assembled
// from the user's session settings.
type GenerationOptions struct {
	Temperature     float64
	TopP            float64
	ThinkingBudget  int
	IncludeThoughts bool
	Grounding       bool
}

// Fragment is one piece of model output. Thought fragments carry the
// model's reasoning rather than the final answer.
type Fragment struct {
	Text    string
	Thought bool
}

type Response struct {
	Fragments []Fragment
}

func (r *Response) Reasoning() string {
	return r.join(true)
}

func (r *Response) Answer() string {
	return r.join(false)
}

func (r *Response) HasReasoning() bool {
	return r.Reasoning() != ""
}

func (r *Response) HasAnswer() bool {
	return r.Answer() != ""
}

func (r *Response) join(thought bool) string {
	var sb strings.Builder
	for _, f := range r.Fragments {
		if f.Thought != thought {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(f.Text)
	}
	return strings.TrimSpace(sb.String())
}
