package services

import (
	"context"
	"fmt"
	"strings"

	"MatZipLog/config/environment"
	"MatZipLog/models"
	"MatZipLog/utils"

	openai "github.com/sashabaranov/go-openai"
)

// BlogService runs the three-stage generation pipeline: brief prompt, blog
// post, reader comments.
type BlogService struct {
	Client *openai.Client
}

func NewBlogService() *BlogService {
	return &BlogService{
		Client: openai.NewClient(environment.GetOpenAIKey()),
	}
}

const promptSystemMessage = `당신은 맛집 블로그 전문 에디터입니다. 주어진 가게 정보를 바탕으로,
블로그 글 생성에 바로 사용할 수 있는 상세한 한국어 작성 지시 프롬프트를 만드세요.
가게 이름과 타깃 키워드를 자연스럽게 반복 노출하고, 방문 경험 중심의 구성을 지시하세요.`

const blogSystemMessage = `당신은 네이버 블로그 상위 노출 경험이 많은 맛집 블로거입니다.
주어진 프롬프트를 충실히 따라 마크다운 형식의 블로그 글을 작성하세요.
과장 없이 구체적인 디테일(메뉴, 가격, 영업시간, 위치, 주차)을 담으세요.`

const commentsSystemMessage = `당신은 블로그 독자입니다. 주어진 블로그 글에 달릴 법한
자연스러운 한국어 댓글 5개를 작성하세요. 댓글마다 말투와 관심사를 다르게 하세요.`

// BuildBlogBrief renders the merged field map into the stage-1 user message,
// in the fixed label order, skipping empty fields.
func BuildBlogBrief(fields map[string]string) string {
	var b strings.Builder
	b.WriteString("다음 가게 정보로 블로그 작성 프롬프트를 만들어 주세요.\n\n")
	for _, field := range models.BlogFieldLabels {
		value := strings.TrimSpace(fields[field.Key])
		if value == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("[%s]\n%s\n\n", field.Label, value))
	}
	return strings.TrimSpace(b.String())
}

// GeneratePrompt is stage 1: turn the blog input fields into a writing prompt.
func (s *BlogService) GeneratePrompt(ctx context.Context, fields map[string]string, model string, temperature float32) (string, error) {
	return s.complete(ctx, model, temperature, promptSystemMessage, BuildBlogBrief(fields))
}

// GenerateBlog is stage 2: write the markdown post from the (possibly
// user-edited) prompt.
func (s *BlogService) GenerateBlog(ctx context.Context, prompt string, model string, temperature float32) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", utils.NewValidationError("프롬프트가 비어 있습니다. 먼저 1단계를 실행해 주세요.")
	}
	return s.complete(ctx, model, temperature, blogSystemMessage, prompt)
}

// GenerateComments is stage 3: draft reader comments for the finished post.
func (s *BlogService) GenerateComments(ctx context.Context, blogMarkdown string, model string, temperature float32) (string, error) {
	if strings.TrimSpace(blogMarkdown) == "" {
		return "", utils.NewValidationError("블로그 글이 비어 있습니다. 먼저 2단계를 실행해 주세요.")
	}
	return s.complete(ctx, model, temperature, commentsSystemMessage, blogMarkdown)
}

func (s *BlogService) complete(ctx context.Context, model string, temperature float32, system string, user string) (string, error) {
	if model == "" {
		model = environment.GetOpenAIModel()
	}
	if temperature <= 0 {
		temperature = environment.GetOpenAITemperature()
	}

	resp, err := s.Client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("OpenAI 호출에 실패했습니다: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI 응답이 비어 있습니다")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
