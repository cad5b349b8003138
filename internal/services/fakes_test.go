package services

import "context"

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeImageSearcher struct {
	url     string
	queries []string
}

func (f *fakeImageSearcher) Search(_ context.Context, query string) string {
	f.queries = append(f.queries, query)
	return f.url
}
