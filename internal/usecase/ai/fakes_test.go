package ai

import (
	"context"

	"github.com/johnquangdev/meeting-scribe/pkg/ai"
)

type fakeGenerator struct {
	name  string
	reply string
	err   error
	calls []ai.GenerateRequest
}

func (f *fakeGenerator) Name() string { return f.name }

func (f *fakeGenerator) Generate(ctx context.Context, req ai.GenerateRequest) (string, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}
