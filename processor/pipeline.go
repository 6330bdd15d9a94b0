package processor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"go-ytlens/aggregate"
	"go-ytlens/nlp"
	"go-ytlens/types"
	"go-ytlens/youtube"

	"github.com/google/uuid"
)

// State is where the pipeline is in a submission.
type State string

const (
	Idle       State = "idle"
	Fetching   State = "fetching"
	Annotating State = "annotating"
	Aggregated State = "aggregated"
)

// ErrBusy is returned when a submission arrives while another is running.
var ErrBusy = errors.New("a submission is already being processed")

// ErrInvalidURL wraps video URL parse failures.
var ErrInvalidURL = errors.New("invalid video url")

// CommentFetcher is the paginated comment source.
type CommentFetcher interface {
	FetchComments(ctx context.Context, videoID string) types.FetchResult
}

// Summarizer produces an optional digest of the comment table.
type Summarizer interface {
	SummarizeComments(ctx context.Context, videoID string, comments []types.Comment) (string, error)
}

// Geocoder resolves location entities for the optional map.
type Geocoder interface {
	GeocodeEntities(ctx context.Context, comments []types.Comment, top types.LabelCounts) []types.GeocodedEntity
}

// VideoIDFunc turns a submitted URL into a video ID.
type VideoIDFunc func(rawURL string) (string, error)

// LegacyVideoID keeps the "strip v= after the last ?" behaviour.
func LegacyVideoID(rawURL string) (string, error) {
	return youtube.ConvertURLToVideoID(rawURL), nil
}

// Options tune aggregation and wire the optional collaborators.
type Options struct {
	TopEntities   int
	RollingWindow int
	HistogramBins int
	VideoID       VideoIDFunc
	Summarizer    Summarizer
	Geocoder      Geocoder
}

// RunInfo describes the most recent submission.
type RunInfo struct {
	RunID      string    `json:"runId"`
	VideoID    string    `json:"videoId"`
	Comments   int       `json:"comments"`
	Truncated  bool      `json:"truncated"`
	Error      string    `json:"error,omitempty"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
}

// Status is a snapshot of the pipeline.
type Status struct {
	State   State    `json:"state"`
	LastRun *RunInfo `json:"lastRun,omitempty"`
}

// Pipeline runs fetch, annotate and aggregate for one submission at a time.
// The recognizer and scorer are loaded once and reused across submissions.
type Pipeline struct {
	fetcher    CommentFetcher
	recognizer nlp.EntityRecognizer
	scorer     nlp.SentimentScorer
	opts       Options

	mu      sync.Mutex
	state   State
	lastRun *RunInfo
}

// NewPipeline wires the collaborators. Zero options fall back to the
// dashboard defaults.
func NewPipeline(fetcher CommentFetcher, recognizer nlp.EntityRecognizer, scorer nlp.SentimentScorer, opts Options) *Pipeline {
	if opts.TopEntities <= 0 {
		opts.TopEntities = aggregate.DefaultTopEntities
	}
	if opts.RollingWindow <= 0 {
		opts.RollingWindow = aggregate.DefaultWindow
	}
	if opts.HistogramBins <= 0 {
		opts.HistogramBins = aggregate.DefaultBins
	}
	if opts.VideoID == nil {
		opts.VideoID = LegacyVideoID
	}

	return &Pipeline{
		fetcher:    fetcher,
		recognizer: recognizer,
		scorer:     scorer,
		opts:       opts,
		state:      Idle,
	}
}

// Status returns the current state and the last run.
func (p *Pipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()

	s := Status{State: p.state}
	if p.lastRun != nil {
		run := *p.lastRun
		s.LastRun = &run
	}
	return s
}

func (p *Pipeline) begin() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != Idle {
		return false
	}
	p.state = Fetching
	return true
}

func (p *Pipeline) setState(s State) {
	p.mu.Lock()
	p.state = s
	p.mu.Unlock()
}

func (p *Pipeline) finish(run RunInfo) {
	p.mu.Lock()
	p.state = Idle
	p.lastRun = &run
	p.mu.Unlock()
}

// Run processes one submitted URL end to end. An empty URL is a no-op that
// returns an empty dashboard.
func (p *Pipeline) Run(ctx context.Context, rawURL string) (*types.Dashboard, error) {
	if strings.TrimSpace(rawURL) == "" {
		return EmptyDashboard(p.opts), nil
	}
	if !p.begin() {
		return nil, ErrBusy
	}

	run := RunInfo{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	// A panicking recognizer or scorer must still return the pipeline to Idle.
	defer func() {
		if r := recover(); r != nil {
			run.FinishedAt = time.Now().UTC()
			run.Error = fmt.Sprintf("panic: %v", r)
			log.Printf("Run %s panicked: %v", run.RunID, r)
			p.finish(run)
			panic(r)
		}
	}()

	dashboard, err := p.run(ctx, strings.TrimSpace(rawURL), &run)
	run.FinishedAt = time.Now().UTC()
	if err != nil {
		run.Error = err.Error()
		log.Printf("Run %s failed: %v", run.RunID, err)
	} else {
		dashboard.FinishedAt = run.FinishedAt
		log.Printf("Run %s finished: %d comments for %s in %s", run.RunID, run.Comments, run.VideoID, run.FinishedAt.Sub(run.StartedAt))
	}
	p.finish(run)

	return dashboard, err
}

func (p *Pipeline) run(ctx context.Context, rawURL string, run *RunInfo) (*types.Dashboard, error) {
	videoID, err := p.opts.VideoID(rawURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	run.VideoID = videoID
	log.Printf("Run %s: fetching comments for video %s", run.RunID, videoID)

	fetched := p.fetcher.FetchComments(ctx, videoID)
	comments := fetched.Comments
	if comments == nil {
		comments = []types.Comment{}
	}
	run.Comments = len(comments)
	run.Truncated = fetched.Truncated()

	p.setState(Annotating)
	if err := nlp.ApplyNER(ctx, p.recognizer, comments); err != nil {
		return nil, err
	}
	if err := nlp.ApplySentiment(ctx, p.scorer, comments); err != nil {
		return nil, err
	}

	dashboard := EmptyDashboard(p.opts)
	dashboard.RunID = run.RunID
	dashboard.VideoID = videoID
	dashboard.VideoURL = youtube.VideoIDToURL(videoID)
	dashboard.EmbedURL = youtube.EmbedURL(videoID)
	dashboard.Comments = comments
	dashboard.Pages = fetched.Pages
	dashboard.Truncated = fetched.Truncated()
	if fetched.Err != nil {
		dashboard.FetchError = fetched.Err.Error()
	}
	dashboard.StartedAt = run.StartedAt

	dashboard.Sentiment = aggregate.SentimentOverTime(comments, p.opts.RollingWindow, p.opts.HistogramBins)
	dashboard.Entities = aggregate.Entities(comments, p.opts.TopEntities)
	dashboard.Charts = charts(len(dashboard.Entities.TopEntities.Labels))
	p.setState(Aggregated)

	p.enrich(ctx, dashboard)
	return dashboard, nil
}

// enrich adds the optional summary and geocoded locations. Failures here
// never fail the submission.
func (p *Pipeline) enrich(ctx context.Context, d *types.Dashboard) {
	if len(d.Comments) == 0 {
		return
	}
	if p.opts.Summarizer != nil {
		summary, err := p.opts.Summarizer.SummarizeComments(ctx, d.VideoID, d.Comments)
		if err != nil {
			log.Printf("Error summarizing comments for %s: %v", d.VideoID, err)
		} else {
			d.Summary = summary
		}
	}
	if p.opts.Geocoder != nil {
		d.Locations = p.opts.Geocoder.GeocodeEntities(ctx, d.Comments, d.Entities.TopEntities)
	}
}

// EmptyDashboard is the "nothing to display" result.
func EmptyDashboard(opts Options) *types.Dashboard {
	if opts.RollingWindow <= 0 {
		opts.RollingWindow = aggregate.DefaultWindow
	}
	return &types.Dashboard{
		Comments:  []types.Comment{},
		Sentiment: aggregate.SentimentOverTime(nil, opts.RollingWindow, opts.HistogramBins),
		Entities:  aggregate.Entities(nil, opts.TopEntities),
		Charts:    charts(0),
	}
}

func charts(topN int) map[string]types.Chart {
	return map[string]types.Chart{
		"sentimentOverTime":  {Title: "Sentiment Over Time", XTitle: "Time", YTitle: "Sentiment"},
		"sentimentHistogram": {Title: "Sentiment Distribution", XTitle: "Sentiment", YTitle: "Frequency"},
		"topEntities":        {Title: fmt.Sprintf("Top %d Named Entities", topN), XTitle: "Count", YTitle: "Named Entity"},
		"entityTypes":        {Title: "Entity Type Counts", XTitle: "Count", YTitle: "Entity Type"},
	}
}
