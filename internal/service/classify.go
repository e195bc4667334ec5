package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/justice-chain/classifier/internal/model"
	"go.uber.org/zap"
)

var (
	ErrInvalidInput        = errors.New("no description provided")
	ErrUpstreamUnavailable = errors.New("AI API key not configured")
)

// UpstreamError wraps any failure of the completion call. Its message is the
// upstream's own, unprefixed.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string { return e.Err.Error() }

func (e *UpstreamError) Unwrap() error { return e.Err }

// Completer 는 단일 턴 프롬프트를 받아 모델의 원문 답변을 반환
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

const promptTemplate = `You are a crime analysis assistant.

Your job is to classify an FIR description into one of the following categories:
- High: Life-threatening crimes such as murder, rape, terrorism, serious assault, bomb threats
- Medium: Significant crimes like robbery, theft, hacking, fraud
- Low: Minor issues such as lost items, noise complaints, or littering

Only respond with a single word: High, Medium, or Low.

FIR Description: %s
Priority:`

type ClassifyService struct {
	completer Completer
	logger    *zap.Logger
}

// completer 가 nil 이면 업스트림 미설정 상태로 동작
func NewClassifyService(completer Completer, logger *zap.Logger) *ClassifyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassifyService{completer: completer, logger: logger}
}

func (s *ClassifyService) Configured() bool {
	return s.completer != nil
}

func BuildPrompt(description string) string {
	return fmt.Sprintf(promptTemplate, description)
}

func (s *ClassifyService) Classify(ctx context.Context, req model.ClassifyRequest) (*model.ClassifyResponse, error) {
	description := strings.TrimSpace(req.IncidentDescription)
	if description == "" {
		return nil, ErrInvalidInput
	}
	if s.completer == nil {
		return nil, ErrUpstreamUnavailable
	}

	reply, err := s.completer.Complete(ctx, BuildPrompt(description))
	if err != nil {
		s.logger.Warn("classification request failed", zap.Error(err))
		return nil, &UpstreamError{Err: err}
	}

	priority := model.ParsePriority(reply)
	s.logger.Info("classified incident",
		zap.String("reply", reply),
		zap.String("priority", string(priority)),
		zap.Int("description_len", len(description)))

	return &model.ClassifyResponse{Priority: priority}, nil
}
