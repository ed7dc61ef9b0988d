package ai

import "context"

const defaultMaxTokens = 4096

type Client interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}

	return defaultMaxTokens
}
