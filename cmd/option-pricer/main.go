package main

import (
	"flag"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/contactkeval/option-pricer/internal/api/handlers"
	"github.com/contactkeval/option-pricer/internal/api/middleware"
	"github.com/contactkeval/option-pricer/internal/config"
	"github.com/contactkeval/option-pricer/internal/data"
	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	configPath := flag.String("config", "position.yaml", "path to YAML scenario config")
	rest := flag.Bool("rest", false, "run as REST server instead of a one-shot run")
	port := flag.String("port", ":8080", "REST server listen address")
	flag.Parse()

	if *rest {
		runServer(*port)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	logger.SetVerbosity(cfg.Verbosity)

	inputs, err := cfg.ToMarketInputs()
	if err != nil {
		log.Fatalf("invalid position: %v", err)
	}

	prov := chooseProvider(cfg)

	// Prefill a missing spot from the last close, and keep the bar
	// history around for a historical-vol reference.
	if inputs.Spot <= 0 {
		last, err := prov.GetLastClose(cfg.Position.Underlying, inputs.Valuation)
		if err != nil {
			log.Fatalf("no spot in config and provider lookup failed: %v", err)
		}
		inputs.Spot = last
		logger.Infof("spot prefilled from last close: %.2f", last)
	}

	start := time.Now()
	result, curve, err := run(cfg, inputs)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	if bars, err := prov.GetDailyBars(cfg.Position.Underlying, inputs.Valuation.AddDate(0, -3, 0), inputs.Valuation); err == nil {
		hv := data.AnnualizedVolatility(data.Closes(bars))
		logger.Infof("historical vol reference = %.2f%%", hv*100)
	}

	if err := os.MkdirAll(cfg.ReportDir, 0755); err != nil {
		logger.Errorf("could not create report dir %s: %v", cfg.ReportDir, err)
	}
	if err := report.WriteSummaryJSON(result, cfg.ReportDir); err != nil {
		logger.Errorf("writing summary: %v", err)
	}
	if err := report.WriteCurveCSV(curve, cfg.ReportDir); err != nil {
		logger.Errorf("writing curve: %v", err)
	}
	logger.Infof("done in %v, reports in %s", time.Since(start), cfg.ReportDir)
}

// run dispatches on the configured mode and returns the summary record
// plus the curve at the effective volatility.
func run(cfg *config.Config, inputs pricing.MarketInputs) (any, []pricing.CurvePoint, error) {
	dir := pricing.Direction(cfg.Position.Direction)

	if cfg.Mode == config.ModeImpliedVol {
		solved, err := pricing.SolveImpliedVol(inputs, pricing.Side(cfg.Side), cfg.MarketPrice)
		if err != nil {
			return nil, nil, err
		}
		logger.Infof("implied vol = %.2f%%", solved.VolPct)
		inputs.VolPct = solved.VolPct
		curve, err := pricing.BuildCurve(inputs, dir, solved.Call.Price, solved.Put.Price)
		if err != nil {
			return nil, nil, err
		}
		return solved, curve, nil
	}

	res, err := pricing.Price(inputs)
	if err != nil {
		return nil, nil, err
	}
	logger.Infof("call=%.4f put=%.4f (T=%.4fy)", res.Call.Price, res.Put.Price, res.TimeToExpiry)
	curve, err := pricing.BuildCurve(inputs, dir, res.Call.Price, res.Put.Price)
	if err != nil {
		return nil, nil, err
	}
	return res, curve, nil
}

func chooseProvider(cfg *config.Config) data.Provider {
	apiKey := os.Getenv("MASSIVE_API_KEY")
	if cfg.Provider == "massive" && apiKey != "" {
		logger.Infof("massive provider enabled (synthetic fallback)")
		return data.NewMassiveDataProvider(apiKey, data.NewSyntheticProvider())
	}
	logger.Infof("synthetic provider enabled")
	return data.NewSyntheticProvider()
}

func runServer(port string) {
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(middleware.RequestLogger())
	router.Use(middleware.ErrorHandler())

	pricingHandler := handlers.NewPricingHandler()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/price", pricingHandler.Price)
		v1.POST("/implied-vol", pricingHandler.ImpliedVol)
		v1.POST("/curve", pricingHandler.Curve)
	}

	// The browser front end is served from another origin.
	handler := cors.Default().Handler(router)

	logger.Infof("starting REST server on %s", port)
	log.Fatal(http.ListenAndServe(port, handler))
}
