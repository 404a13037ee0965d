package usecase

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"

	"beyondtheory/internal/domain/entity"
	"beyondtheory/internal/domain/repository"
	"beyondtheory/pkg/errors"
)

const assistantSystemPrompt = `You are the Beyond Theory study assistant. Answer the user's question ` +
	`using only the library resources provided below. When a resource is relevant, mention its title. ` +
	`If none of the resources answer the question, say so instead of guessing.`

// maxAssistantResources caps how many library entries are fed to the model.
const maxAssistantResources = 5

type AssistantUseCase struct {
	resourceRepo repository.ResourceRepository
	client       AssistantClient
}

func NewAssistantUseCase(resourceRepo repository.ResourceRepository, client AssistantClient) *AssistantUseCase {
	return &AssistantUseCase{
		resourceRepo: resourceRepo,
		client:       client,
	}
}

type AssistantAnswer struct {
	Answer    string   `json:"answer"`
	Resources []string `json:"resources"`
}

// Ask answers a question by looking up the resource library: the resources
// with the strongest keyword overlap with the question are passed to the LLM
// as context.
func (uc *AssistantUseCase) Ask(ctx context.Context, question string) (*AssistantAnswer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, errors.BadRequest("Question must not be empty", nil)
	}

	resources, err := uc.resourceRepo.List(ctx)
	if err != nil {
		log.Printf("Ask Error: Failed to list resources: %v", err)
		return nil, err
	}

	matched := rankResources(resources, question)
	if len(matched) > maxAssistantResources {
		matched = matched[:maxAssistantResources]
	}

	var prompt strings.Builder
	prompt.WriteString("Question: ")
	prompt.WriteString(question)
	prompt.WriteString("\n\nLibrary resources:\n")
	if len(matched) == 0 {
		prompt.WriteString("(no matching resources)\n")
	}
	for _, r := range matched {
		fmt.Fprintf(&prompt, "- %s (%s): %s\n", r.Title, r.URL, r.Description)
	}

	answer, err := uc.client.Answer(ctx, assistantSystemPrompt, prompt.String())
	if err != nil {
		log.Printf("Ask Error: LLM request failed: %v", err)
		return nil, errors.Internal("Assistant is unavailable", err)
	}

	result := &AssistantAnswer{Answer: answer}
	for _, r := range matched {
		result.Resources = append(result.Resources, r.ID)
	}

	return result, nil
}

func rankResources(resources []*entity.Resource, question string) []*entity.Resource {
	words := strings.Fields(strings.ToLower(question))

	type scored struct {
		resource *entity.Resource
		score    int
	}

	var ranked []scored
	for _, r := range resources {
		haystack := strings.ToLower(r.Title + " " + r.Description + " " + strings.Join(r.Tags, " "))
		score := 0
		for _, w := range words {
			if len(w) < 3 {
				continue
			}
			if strings.Contains(haystack, w) {
				score++
			}
		}
		if score > 0 {
			ranked = append(ranked, scored{resource: r, score: score})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	result := make([]*entity.Resource, 0, len(ranked))
	for _, s := range ranked {
		result = append(result, s.resource)
	}
	return result
}
