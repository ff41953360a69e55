package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"leadscore_backend/internal/adapters"
	leadsrepo "leadscore_backend/internal/leads/repository"
	offersrepo "leadscore_backend/internal/offers/repository"
	"leadscore_backend/internal/scoring/intent"
	"leadscore_backend/internal/scoring/repository"
	"leadscore_backend/internal/scoring/rules"
	"leadscore_backend/internal/scoring/service"
	"leadscore_backend/platform/config"
	"leadscore_backend/platform/db"
	"leadscore_backend/platform/logger"

	"github.com/google/uuid"
)

func main() {
	offerFlag := flag.String("offer", "", "offer id to score; empty scores every offer")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)
	log.Info("starting offer scoring run", "offer", *offerFlag)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		panic("failed to connect to database: " + err.Error())
	}
	defer pool.Close()

	vocab := rules.DefaultVocabulary()
	if path := cfg.GetVocabularyFile(); path != "" {
		if vocab, err = rules.LoadVocabulary(path); err != nil {
			log.Error("failed to load scoring vocabulary", "error", err)
			return
		}
	}

	classifier, err := intent.NewFromConfig(ctx, cfg, nil, log)
	if err != nil {
		log.Error("failed to initialize intent classifier", "error", err)
		return
	}

	svc := service.New(
		adapters.NewScoringOfferReader(offersrepo.New(pool)),
		adapters.NewScoringLeadReader(leadsrepo.New(pool)),
		repository.New(pool),
		rules.New(vocab),
		classifier,
		nil,
		log,
	)

	var reports []service.Report
	if *offerFlag == "" {
		reports, err = svc.ScoreAllOffers(ctx)
	} else {
		offerID, parseErr := uuid.Parse(*offerFlag)
		if parseErr != nil {
			log.Error("invalid offer id", "offer", *offerFlag, "error", parseErr)
			return
		}
		var report service.Report
		report, err = svc.ScoreLeadsForOffer(ctx, offerID)
		reports = append(reports, report)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if encErr := enc.Encode(reports); encErr != nil {
		log.Error("failed to write report", "error", encErr)
	}

	if err != nil {
		log.Error("scoring run stopped", "error", err)
		os.Exit(1)
	}
	log.Info("scoring run complete", "offers", len(reports))
}
