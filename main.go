package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"go-ytlens/config"
	"go-ytlens/geocode"
	"go-ytlens/nlp"
	"go-ytlens/processor"
	"go-ytlens/routes"
	"go-ytlens/summarization"
	"go-ytlens/youtube"

	"github.com/gin-gonic/gin"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
)

// app holds the handles built once at startup and shared by every submission.
type app struct {
	youtube  *youtube.Client
	pipeline *processor.Pipeline
	closers  []func() error
}

func (a *app) Close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			log.Printf("Error closing client: %v", err)
		}
	}
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	a := &app{}

	ytClient, err := youtube.NewClient(ctx, cfg.YouTubeAPIKey, cfg.PageSize)
	if err != nil {
		return nil, err
	}
	a.youtube = ytClient

	var (
		recognizer nlp.EntityRecognizer
		scorer     nlp.SentimentScorer
	)
	switch cfg.NLPBackend {
	case config.BackendCloud:
		langClient, err := nlp.InitLanguageClient(ctx, cfg.NaturalLanguageCredentials)
		if err != nil {
			return nil, err
		}
		analyzer := nlp.NewCloudAnalyzer(langClient)
		a.closers = append(a.closers, analyzer.Close)
		recognizer, scorer = analyzer, analyzer
		log.Println("Using Cloud Natural Language for entities and sentiment")
	default:
		recognizer, scorer = nlp.NewProseRecognizer(), nlp.NewVaderScorer()
		log.Println("Using local prose entities and VADER sentiment")
	}

	opts := processor.Options{
		TopEntities:   cfg.TopEntities,
		RollingWindow: cfg.RollingWindow,
		HistogramBins: cfg.HistogramBins,
		VideoID:       processor.LegacyVideoID,
	}
	if cfg.VideoIDParser == config.ParserQuery {
		opts.VideoID = youtube.ParseVideoID
	}

	if cfg.OpenAIAPIKey != "" {
		opts.Summarizer = summarization.NewSummarizer(openai.NewClient(cfg.OpenAIAPIKey))
		log.Println("OPENAI_API_KEY loaded, comment summaries enabled")
	}
	if cfg.MapsAPIKey != "" {
		geocoder, err := geocode.NewGeocoder(cfg.MapsAPIKey)
		if err != nil {
			return nil, err
		}
		opts.Geocoder = geocoder
		log.Println("MAPS_CREDENTIALS loaded, location geocoding enabled")
	}

	a.pipeline = processor.NewPipeline(ytClient, recognizer, scorer, opts)
	return a, nil
}

func loadConfig(host string, port int) *config.Config {
	cfg := config.Load()
	if host != "" {
		cfg.Host = host
	}
	if port != 0 {
		cfg.Port = port
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	return cfg
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ytlens",
		Short: "YouTube comment NLP dashboard",
		Long:  "Fetches the comments of a YouTube video, tags entities and sentiment, and serves the results as a dashboard.",
	}

	serveCmd := newServeCmd()
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(newAnalyzeCmd())
	rootCmd.RunE = serveCmd.RunE
	rootCmd.Flags().AddFlagSet(serveCmd.Flags())

	return rootCmd
}

func newServeCmd() *cobra.Command {
	var host string
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(host, port)
			if cfg.GinMode != "" {
				gin.SetMode(cfg.GinMode)
			}

			a, err := newApp(context.Background(), cfg)
			if err != nil {
				log.Fatalf("Failed to initialize: %v", err)
			}
			defer a.Close()

			r := routes.SetupRouter(a.pipeline, a.youtube)
			log.Printf("Serving dashboard on %s", cfg.Addr())
			if err := r.Run(cfg.Addr()); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "Host to listen on (overrides HOST)")
	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (overrides PORT)")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <video-url>",
		Short: "Run the pipeline once and print the dashboard JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig("", 0)
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			defer a.Close()

			dashboard, err := a.pipeline.Run(ctx, args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(dashboard)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
