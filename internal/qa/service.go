package qa

import (
	"context"
	"strings"

	"knowledge-backend/internal/knowledge"
	"knowledge-backend/internal/llm"
	"knowledge-backend/internal/shared/metrics"
)

// Service answers questions from the knowledge store. Retrieval is
// unconditional: every stored record is concatenated into a single
// context block for one outbound model request.
type Service struct {
	Repo knowledge.Repo
	LLM  llm.Client
}

// Ask assembles the full store into a prompt and returns the model's
// answer.
func (s *Service) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", ErrInvalidInput
	}

	recs, err := s.Repo.List(ctx)
	if err != nil {
		return "", err
	}
	if len(recs) == 0 {
		return "", ErrNoKnowledge
	}

	answer, err := s.LLM.Answer(ctx, llm.AnswerInput{
		Question: question,
		Context:  buildContext(recs),
	})
	if err != nil {
		return "", err
	}

	metrics.IncQuestions()
	return answer, nil
}

// buildContext joins every record's content in storage order, prefixed
// with its source label.
func buildContext(recs []knowledge.Record) string {
	var b strings.Builder
	for i, rec := range recs {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("[")
		b.WriteString(rec.Source)
		b.WriteString("]\n")
		b.WriteString(rec.Content)
	}
	return b.String()
}
