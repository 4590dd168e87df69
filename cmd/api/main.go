package main

import (
	"context"
	"log"

	"mithaq/agreement"
	"mithaq/auth"
	"mithaq/config"
	"mithaq/db"
	"mithaq/dispute"
	"mithaq/httpapi"
	"mithaq/invite"
	"mithaq/locale"
	"mithaq/ticket"
)

func main() {
	ctx := context.Background()
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load configuration: %v", err)
	}

	if err := db.Migrate(ctx, cfg.DatabaseURL); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("bootstrap database pool: %v", err)
	}
	defer pool.Close()

	labels := locale.Default()

	authService := auth.NewService(auth.NewRepository(pool), cfg.JWTSecret)

	agreementRepo := agreement.NewRepository()
	ticketRepo := ticket.NewRepository()
	opener := ticket.NewOpener(ticketRepo, labels)
	bridge := ticket.NewBridge(pool, ticketRepo)

	caseRepo := dispute.NewRepository(pool)
	caseService := dispute.NewService(pool, caseRepo, bridge, opener, labels)

	// Party notifications and document export ride the transactional outbox;
	// no in-process dispatchers are wired here.
	lifecycle := agreement.NewService(pool, agreement.ServiceDeps{
		Repository: agreementRepo,
		Tickets:    opener,
		Cases:      caseService,
		Codes:      invite.NewGenerator(),
	})

	drafts := agreement.NewDraftService(pool, agreementRepo, agreement.NewPGTemplateStore(pool, labels), labels)

	server := httpapi.NewServer(httpapi.Deps{
		Auth:       authService,
		Drafts:     drafts,
		Lifecycle:  lifecycle,
		Agreements: agreement.NewCRUDService(pool),
		Invites:    invite.NewService(pool, agreementRepo),
		Tickets:    ticket.NewQueueService(pool),
		Syncer:     bridge,
		Cases: struct {
			*dispute.Repository
			*dispute.Service
		}{caseRepo, caseService},
		Labels: labels,
	})

	if err := server.Router().Run(httpapi.Addr(cfg.Port)); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
