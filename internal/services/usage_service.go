// Package services – UsageService
//
// This file implements UsageService, the application-level component that
// turns the current period's message batch into billable usage records. For
// each message it decides between the externally supplied report cost and
// the locally computed credit cost, validates required fields, and assembles
// the response list.
//
// Failure policy: the first fatal condition (malformed message, upstream
// fetch or lookup failure) aborts the whole batch. No retries, no partial
// results.
//
// Observability: public methods are OpenTelemetry-instrumented, and the
// injected zerolog.Logger is invoked at the well-defined points (credits
// computed, report resolved, report missing). The credits package itself
// stays side-effect free.
package services

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/orbital-copilot/usage-api/internal/credits"
	"github.com/orbital-copilot/usage-api/internal/domain"
	"github.com/orbital-copilot/usage-api/internal/upstream"
)

// MessageSource fetches the message batch for the current billing period.
// Implemented by upstream.MessagesClient.
type MessageSource interface {
	Fetch(ctx context.Context) ([]domain.Message, error)
}

// ReportLookup resolves a report id to its externally priced report.
// Implemented by upstream.ReportsClient; returns upstream.ErrReportNotFound
// when the report does not exist.
type ReportLookup interface {
	Fetch(ctx context.Context, id string) (*domain.Report, error)
}

// UsageService computes per-message usage records. All collaborators are
// injected; the zero Calc value is a working calculator.
type UsageService struct {
	Messages MessageSource
	Reports  ReportLookup
	Calc     credits.Calculator
	Log      zerolog.Logger
}

// Usage fetches the current period's messages and computes their usage
// records. Errors from the fetch carry upstream.ErrFetchFailure.
func (s *UsageService) Usage(ctx context.Context) ([]domain.UsageRecord, error) {
	tr := otel.Tracer("services/UsageService")
	ctx, span := tr.Start(ctx, "Usage")
	defer span.End()

	msgs, err := s.Messages.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return s.ComputeUsage(ctx, msgs)
}

// ComputeUsage resolves every message in the batch, in order. Messages are
// independent of one another; the first fatal error aborts the batch.
func (s *UsageService) ComputeUsage(ctx context.Context, msgs []domain.Message) ([]domain.UsageRecord, error) {
	tr := otel.Tracer("services/UsageService")
	ctx, span := tr.Start(ctx, "ComputeUsage",
		trace.WithAttributes(attribute.Int("message.count", len(msgs))),
	)
	defer span.End()

	records := make([]domain.UsageRecord, 0, len(msgs))
	for i := range msgs {
		rec, err := s.Resolve(ctx, msgs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Resolve produces the usage record for a single message.
//
// Steps:
//  1. Required fields (id, timestamp, text) must be present; a missing one
//     yields a MalformedMessageError naming it.
//  2. With a report_id, the lookup decides: a report prices the message
//     verbatim (credit_cost untouched, report_name set); not-found falls
//     back to the local calculation; any other lookup error is fatal and
//     propagates unchanged.
//  3. Without a report_id the local calculation prices the message.
func (s *UsageService) Resolve(ctx context.Context, msg domain.Message) (domain.UsageRecord, error) {
	if msg.ID == nil {
		return domain.UsageRecord{}, &MalformedMessageError{Field: "id"}
	}
	if msg.Timestamp == nil {
		return domain.UsageRecord{}, &MalformedMessageError{Field: "timestamp"}
	}
	if msg.Text == nil {
		return domain.UsageRecord{}, &MalformedMessageError{Field: "text"}
	}

	rec := domain.UsageRecord{
		MessageID: *msg.ID,
		Timestamp: *msg.Timestamp,
	}

	if msg.ReportID != nil && *msg.ReportID != "" {
		report, err := s.Reports.Fetch(ctx, *msg.ReportID)
		switch {
		case err == nil:
			rec.CreditsUsed = report.CreditCost
			rec.ReportName = report.Name
			s.Log.Info().
				Int64("message_id", rec.MessageID).
				Str("report_id", *msg.ReportID).
				Str("report", report.Name).
				Msg("report resolved")
			return rec, nil
		case errors.Is(err, upstream.ErrReportNotFound):
			s.Log.Warn().
				Int64("message_id", rec.MessageID).
				Str("report_id", *msg.ReportID).
				Msg("report missing, falling back to computed credits")
			// fall through to local calculation
		default:
			return domain.UsageRecord{}, err
		}
	}

	rec.CreditsUsed = s.Calc.Compute(*msg.Text)
	s.Log.Info().
		Int64("message_id", rec.MessageID).
		Float64("credits", rec.CreditsUsed).
		Msg("credits computed")
	return rec, nil
}
