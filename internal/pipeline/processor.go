// Package pipeline runs the post-acknowledgment work for one webhook
// delivery: assessment, aggregation, and the Front update sequence.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/mattjoyce/axis-scorer/internal/axis"
	"github.com/mattjoyce/axis-scorer/internal/front"
	"github.com/mattjoyce/axis-scorer/internal/history"
	"github.com/mattjoyce/axis-scorer/internal/log"
	"github.com/mattjoyce/axis-scorer/internal/metrics"
)

// Request identifies one delivery to process.
type Request struct {
	DeliveryID     string
	ConversationID string
	Message        string
	Fingerprint    string
	ReceivedAt     time.Time
}

// Processor chains assessment, score aggregation, and the five-step Front
// update for one delivery. No step is retried here; the only retry loop is
// the Front client's rate-limit backoff.
type Processor struct {
	assessor Assessor
	front    FrontService
	recorder Recorder
	metrics  *metrics.Metrics
}

// New creates a Processor. recorder and m may be nil.
func New(assessor Assessor, frontSvc FrontService, recorder Recorder, m *metrics.Metrics) *Processor {
	return &Processor{
		assessor: assessor,
		front:    frontSvc,
		recorder: recorder,
		metrics:  m,
	}
}

// Process runs the full pipeline for one delivery. On a generation failure
// the conversation is left untouched; on a Front failure earlier mutations
// remain applied and later steps never execute.
func (p *Processor) Process(ctx context.Context, req Request) error {
	logger := log.WithDelivery(req.DeliveryID).With("conversation_id", req.ConversationID)

	assessment, err := p.assessor.Assess(ctx, req.Message)
	if err != nil {
		logger.Error("assessment generation failed", "error", err)
		if p.metrics != nil {
			p.metrics.RecordLLMFailure()
		}
		p.record(ctx, req, nil, 0, "", err)
		return fmt.Errorf("generate assessment: %w", err)
	}

	// The LLM could compute the composite too, but deriving it here is
	// deterministic and cheaper.
	score := axis.Score(assessment.RA.Score, assessment.IE.Score, assessment.HS.Score)
	tier := axis.TierFor(score)
	logger.Info("assessment generated",
		"ra", assessment.RA.Score,
		"ie", assessment.IE.Score,
		"hs", assessment.HS.Score,
		"axis", score,
		"tier", string(tier),
	)

	if err := p.updateConversation(ctx, req.ConversationID, score, tier, assessment); err != nil {
		logger.Error("conversation update failed", "error", err)
		p.record(ctx, req, assessment, score, tier, err)
		return err
	}

	p.record(ctx, req, assessment, score, tier, nil)
	if p.metrics != nil {
		p.metrics.RecordScored(string(tier))
	}
	logger.Info("conversation scored", "axis", score, "tier", string(tier))
	return nil
}

// updateConversation applies the fixed mutation sequence: fields, two tags,
// tag attach, comment. Not atomic; a failure stops the remaining steps.
func (p *Processor) updateConversation(ctx context.Context, conversationID string, score float64, tier axis.Tier, a *axis.Assessment) error {
	scores := front.Scores{
		Axis: score,
		RA:   a.RA.Score,
		IE:   a.IE.Score,
		HS:   a.HS.Score,
	}
	if err := p.front.UpdateConversation(ctx, conversationID, scores); err != nil {
		return fmt.Errorf("update custom fields: %w", err)
	}

	scoreTagID, err := p.front.FindOrCreateTag(ctx, axis.ScoreTagName(score))
	if err != nil {
		return fmt.Errorf("create score tag: %w", err)
	}
	rangeTagID, err := p.front.FindOrCreateTag(ctx, axis.RangeTagName(tier))
	if err != nil {
		return fmt.Errorf("create range tag: %w", err)
	}

	if err := p.front.AddTags(ctx, conversationID, []string{scoreTagID, rangeTagID}); err != nil {
		return fmt.Errorf("attach tags: %w", err)
	}

	comment := axis.FormatComment(score, tier, *a)
	if err := p.front.AddComment(ctx, conversationID, comment); err != nil {
		return fmt.Errorf("add comment: %w", err)
	}
	return nil
}

// record journals the outcome. Journal failures are logged, never fatal.
func (p *Processor) record(ctx context.Context, req Request, a *axis.Assessment, score float64, tier axis.Tier, procErr error) {
	if p.recorder == nil {
		return
	}

	entry := history.Entry{
		ID:             req.DeliveryID,
		ConversationID: req.ConversationID,
		Fingerprint:    req.Fingerprint,
		Axis:           score,
		Tier:           string(tier),
		Status:         history.StatusSucceeded,
		ReceivedAt:     req.ReceivedAt,
		CompletedAt:    time.Now().UTC(),
	}
	if a != nil {
		entry.RA = a.RA.Score
		entry.IE = a.IE.Score
		entry.HS = a.HS.Score
	}
	if procErr != nil {
		entry.Status = history.StatusFailed
		entry.Error = procErr.Error()
	}

	if err := p.recorder.Record(ctx, entry); err != nil {
		log.WithDelivery(req.DeliveryID).Warn("failed to journal delivery outcome", "error", err)
	}
}
