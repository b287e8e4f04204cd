package curator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"learntube/model"
)

const classifyPrompt = `Categorize the difficulty level of this educational content.
Return only one word: "beginner", "intermediate", or "advanced".

Guidelines:
- beginner: basic concepts, no prerequisites, introductory
- intermediate: some background knowledge needed, building on basics
- advanced: complex topics, assumes prior knowledge, specialized
`

const summaryPrompt = `You are a helpful assistant. Create a concise, educational summary of a video based on its title and description.
Explain what the viewer will learn, highlight the key concepts covered and mention the target audience level.
Keep it under 150 words. Format as plain text with bullet points where appropriate.
`

const quizPrompt = `Based on an educational video, create 3 multiple-choice questions that test understanding of the key concepts.
Each question has 4 answer options and an explanation for the correct answer.
Return only a valid JSON array, no additional text, with this structure:
[{"question": "Question text", "options": ["A", "B", "C", "D"], "correctAnswer": 0, "explanation": "Why this is correct"}]
`

type OpenAI struct {
	client *openai.Client
}

func NewOpenAI(apiKey string) *OpenAI {
	return &OpenAI{
		client: openai.NewClient(apiKey),
	}
}

func (o *OpenAI) ClassifyDifficulty(ctx context.Context, title, description string) (model.Difficulty, error) {
	answer, err := o.complete(ctx, classifyPrompt, fmt.Sprintf("Title: %s\n\nDescription: %s", title, description))
	if err != nil {
		return model.DifficultyBeginner, fmt.Errorf("failed to classify difficulty: %w", err)
	}

	difficulty := model.Difficulty(strings.ToLower(strings.TrimSpace(answer)))
	switch difficulty {
	case model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced:
		return difficulty, nil
	}

	return model.DifficultyBeginner, nil
}

func (o *OpenAI) FetchSummary(ctx context.Context, title, description string) (string, error) {
	summary, err := o.complete(ctx, summaryPrompt, fmt.Sprintf("Title: %s\n\nDescription: %s", title, description))
	if err != nil {
		return "", fmt.Errorf("failed to fetch summary: %w", err)
	}

	return strings.TrimSpace(summary), nil
}

func (o *OpenAI) GenerateQuiz(ctx context.Context, title, description string) ([]model.QuizQuestion, error) {
	answer, err := o.complete(ctx, quizPrompt, fmt.Sprintf("Title: %s\n\nDescription: %s", title, description))
	if err != nil {
		return []model.QuizQuestion{}, fmt.Errorf("failed to generate quiz: %w", err)
	}

	return parseQuiz(answer), nil
}

func (o *OpenAI) GenerateInterview(ctx context.Context, position, description, experience string, count int) ([]model.InterviewQuestion, error) {
	prompt := fmt.Sprintf(`Job position: %s, Job description: %s, Years of experience: %s.
Based on the job position, job description and years of experience, give us %d interview questions along with answers.
Return only a valid JSON array of objects with a "question" and an "answer" field, no additional text.`, position, description, experience, count)

	answer, err := o.complete(ctx, "You are an experienced technical interviewer.", prompt)
	if err != nil {
		return []model.InterviewQuestion{}, fmt.Errorf("failed to generate interview: %w", err)
	}

	var questions []model.InterviewQuestion
	if err := json.Unmarshal([]byte(stripCodeFences(answer)), &questions); err != nil {
		return []model.InterviewQuestion{}, fmt.Errorf("failed to parse interview questions: %w", err)
	}

	return questions, nil
}

func (o *OpenAI) InterviewFeedback(ctx context.Context, question, userAnswer string) (string, string, error) {
	prompt := fmt.Sprintf(`Question: %s
User answer: %s
Based on the question and the user's answer, give a rating for the answer and feedback with areas of improvement, if any, in 3 to 5 lines.
Return only a valid JSON object with a "rating" field and a "feedback" field, no additional text.`, question, userAnswer)

	answer, err := o.complete(ctx, "You are an experienced technical interviewer.", prompt)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate feedback: %w", err)
	}

	var feedback struct {
		Rating   string `json:"rating"`
		Feedback string `json:"feedback"`
	}
	if err := json.Unmarshal([]byte(stripCodeFences(answer)), &feedback); err != nil {
		return "", "", fmt.Errorf("failed to parse feedback: %w", err)
	}

	return feedback.Feedback, feedback.Rating, nil
}

func (o *OpenAI) complete(ctx context.Context, system, user string) (string, error) {
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: system,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: user,
			},
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return resp.Choices[len(resp.Choices)-1].Message.Content, nil
}

// parseQuiz is forgiving about the model response. Invalid JSON yields a
// single generic question rather than an error, so a flaky response never
// breaks the summary endpoint.
func parseQuiz(answer string) []model.QuizQuestion {
	var quiz []model.QuizQuestion
	if err := json.Unmarshal([]byte(stripCodeFences(answer)), &quiz); err != nil || len(quiz) == 0 {
		return []model.QuizQuestion{
			{
				Question:      "What is the main topic of this video?",
				Options:       []string{"Concept A", "Concept B", "Concept C", "All of the above"},
				CorrectAnswer: 3,
				Explanation:   "This video covers multiple related concepts.",
			},
		}
	}

	return quiz
}

func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}
