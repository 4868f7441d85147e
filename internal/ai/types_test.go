package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestEmpty(t *testing.T) {
	assert.True(t, Request{}.Empty())
	assert.False(t, Request{Text: "hi"}.Empty())
	assert.False(t, Request{Image: &Image{Data: []byte{1}}}.Empty())
}

func TestResponseSeparatesReasoningFromAnswer(t *testing.T) {
	resp := &Response{Fragments: []Fragment{
		{Text: "first thought", Thought: true},
		{Text: "second thought", Thought: true},
		{Text: "the answer"},
	}}

	assert.True(t, resp.HasReasoning())
	assert.True(t, resp.HasAnswer())
	assert.Equal(t, "first thought\nsecond thought", resp.Reasoning())
	assert.Equal(t, "the answer", resp.Answer())
}

func TestResponseWithoutThoughts(t *testing.T) {
	resp := &Response{Fragments: []Fragment{{Text: "plain"}}}

	assert.False(t, resp.HasReasoning())
	assert.Equal(t, "", resp.Reasoning())
	assert.Equal(t, "plain", resp.Answer())
}

func TestEmptyResponse(t *testing.T) {
	resp := &Response{}

	assert.False(t, resp.HasReasoning())
	assert.False(t, resp.HasAnswer())
}
