// Command scro assesses supply-chain concentration risk for a batch of
// product records.
//
// Input is a JSON file containing an array of provider catalog records
// (the shape the upstream catalog collaborator retrieves). Each product
// is transformed, its supply-chain locations extracted, and the risk
// engine produces one assessment per product, printed as a JSON array
// on stdout.
//
// Usage:
//
//	scro -input products.json [-config config.yaml]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ShaojieDai/SCRO/pkg/catalog"
	"github.com/ShaojieDai/SCRO/pkg/config"
	"github.com/ShaojieDai/SCRO/pkg/engine"
	"github.com/ShaojieDai/SCRO/pkg/models"
	"github.com/ShaojieDai/SCRO/pkg/storage"
)

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	inputPath := flag.String("input", "", "JSON file with provider catalog records (required)")
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: scro -input products.json [-config config.yaml]")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	logger, err := buildLogger(cfg.App.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger, *inputPath, os.Stdout); err != nil {
		logger.Error("assessment run failed", zap.Error(err))
		os.Exit(1)
	}
}

// productAssessment pairs a product with its assessment in the output.
type productAssessment struct {
	Product    string                        `json:"product"`
	Locations  int                           `json:"locations"`
	Assessment *models.SupplyChainAssessment `json:"assessment"`
}

func run(cfg *config.Config, logger *zap.Logger, inputPath string, out *os.File) error {
	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var records []catalog.RawProduct
	if err := json.Unmarshal(raw, &records); err != nil {
		return fmt.Errorf("parse input: %w", err)
	}
	logger.Info("loaded catalog records", zap.Int("count", len(records)))

	eng := engine.New(engine.WithLogger(logger.Named("engine")))
	store := storage.NewMemoryStore(cfg.Cache.TTL)

	products := make([]models.Product, 0, len(records))
	for _, record := range records {
		products = append(products, catalog.Transform(record))
	}

	quality := catalog.DataQuality(products)
	logger.Info("catalog data quality",
		zap.Float64("completeness", quality.CompletenessScore),
		zap.Int("issues", len(quality.Issues)),
	)

	results := make([]productAssessment, 0, len(products))
	for _, product := range products {
		locations := catalog.ExtractLocations(product)

		assessment, cached := store.Get(product.Name)
		if !cached {
			assessment = eng.Assess(locations, []models.Product{product})
			store.Put(product.Name, assessment)
		} else {
			logger.Debug("reusing cached assessment", zap.String("product", product.Name))
		}

		results = append(results, productAssessment{
			Product:    product.Name,
			Locations:  len(locations),
			Assessment: assessment,
		})
	}
	store.MarkReady()

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(results); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	logger.Info("assessment run complete", zap.Int("products", len(results)))
	return nil
}

func buildLogger(level string) (*zap.Logger, error) {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	return cfg.Build()
}
