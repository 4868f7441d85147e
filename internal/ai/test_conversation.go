package ai

import (
	"context"
	"sync"
)

// TestConversation records requests and replays canned responses.
type TestConversation struct {
	mu        sync.Mutex
	requests  []Request
	options   []GenerationOptions
	Responses []*Response
	Err       error
}

func NewTestConversation() *TestConversation {
	return &TestConversation{}
}

func (c *TestConversation) Send(ctx context.Context, req Request, opts GenerationOptions) (*Response, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}
	c.requests = append(c.requests, req)
	c.options = append(c.options, opts)
	if len(c.Responses) > 0 {
		resp := c.Responses[0]
		c.Responses = c.Responses[1:]
		return resp, nil
	}
	return &Response{Fragments: []Fragment{{Text: "ok"}}}, nil
}

func (c *TestConversation) Requests() []Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Request{}, c.requests...)
}

func (c *TestConversation) Options() []GenerationOptions {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]GenerationOptions{}, c.options...)
}
