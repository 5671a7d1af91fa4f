package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/spacepage/spacepage/internal/fetcher"
	"github.com/spacepage/spacepage/internal/model"
	"github.com/spacepage/spacepage/internal/persist"
	"github.com/spacepage/spacepage/internal/render"
	"github.com/spacepage/spacepage/internal/status"
	"github.com/spacepage/spacepage/internal/store"
)

// Pipeline orchestrates one run: fetch -> render -> persist -> archive ->
// record status. Fetch failures degrade their own section only; the document
// is always written. Run returns an error only for persist or archive
// failures so the scheduler can log them.
type Pipeline struct {
	fetcher *fetcher.Fetcher
	store   store.Store // nil when no archive is configured
	status  *status.Tracker
	outPath string
	repo    string
}

func New(f *fetcher.Fetcher, st store.Store, tracker *status.Tracker, outPath, repo string) *Pipeline {
	return &Pipeline{fetcher: f, store: st, status: tracker, outPath: outPath, repo: repo}
}

func (p *Pipeline) Run(ctx context.Context) error {
	slog.Info("pipeline run starting")
	started := time.Now().UTC()

	// One upstream at a time, in fixed order. A failure leaves a nil payload
	// and never aborts the run.
	apodData, apodErr := p.fetcher.FetchAPOD(ctx)
	peopleData, peopleErr := p.fetcher.FetchPeopleInSpace(ctx)
	issData, issErr := p.fetcher.FetchISSLocation(ctx)

	sources := []model.SourceResult{
		sourceResult(model.SourceAPOD, apodErr),
		sourceResult(model.SourcePeople, peopleErr),
		sourceResult(model.SourceISS, issErr),
	}
	for _, s := range sources {
		if !s.Available {
			slog.Error("fetch failed", "source", s.Name, "error", s.Error)
		}
	}

	doc := render.Document(
		render.FormatAPOD(apodData),
		render.FormatPeopleInSpace(peopleData),
		render.FormatISSLocation(issData),
		time.Now(),
		p.repo,
	)
	content := []byte(doc)

	report := model.RunReport{
		Sources:    sources,
		OutputPath: p.outPath,
		StartedAt:  started,
	}

	var runErr error
	if err := persist.Write(p.outPath, content); err != nil {
		slog.Error("failed to write document", "error", err)
		report.WriteError = err.Error()
		runErr = err
	} else {
		report.BytesWritten = len(content)
	}

	// The archive runs after the file write and never blocks it.
	if p.store != nil {
		if err := p.store.SaveDocument(ctx, content); err != nil {
			slog.Error("failed to archive document", "error", err)
			report.ArchiveError = err.Error()
			if runErr == nil {
				runErr = err
			}
		}
	}

	report.FinishedAt = time.Now().UTC()
	p.status.Record(report)

	slog.Info("pipeline run complete", "available", report.Available(), "bytes", len(content))
	return runErr
}

func sourceResult(name string, err error) model.SourceResult {
	if err != nil {
		return model.SourceResult{Name: name, Error: err.Error()}
	}
	return model.SourceResult{Name: name, Available: true}
}
