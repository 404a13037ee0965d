package usecase

import "context"

type FirebaseAuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
}

// AssistantClient is the LLM used by the resource assistant.
type AssistantClient interface {
	Answer(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
