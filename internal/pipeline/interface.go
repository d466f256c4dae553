package pipeline

import (
	"context"

	"github.com/mattjoyce/axis-scorer/internal/axis"
	"github.com/mattjoyce/axis-scorer/internal/front"
	"github.com/mattjoyce/axis-scorer/internal/history"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks github.com/mattjoyce/axis-scorer/internal/pipeline Assessor,FrontService,Recorder

// Assessor produces a three-factor assessment for a transcript.
type Assessor interface {
	Assess(ctx context.Context, transcript string) (*axis.Assessment, error)
}

// FrontService defines the conversation mutations the processor performs.
type FrontService interface {
	UpdateConversation(ctx context.Context, conversationID string, scores front.Scores) error
	FindOrCreateTag(ctx context.Context, name string) (string, error)
	AddTags(ctx context.Context, conversationID string, tagIDs []string) error
	AddComment(ctx context.Context, conversationID, comment string) error
}

// Recorder appends delivery outcomes to the score journal.
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) error
}
