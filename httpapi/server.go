// Package httpapi exposes the agreement platform over HTTP. Handlers stay
// thin: they decode the request, resolve the actor from the JWT middleware,
// call the domain service and translate its sentinel errors to status codes.
package httpapi

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"mithaq/agreement"
	"mithaq/auth"
	"mithaq/catalog"
	"mithaq/dispute"
	"mithaq/locale"
	"mithaq/render"
	"mithaq/ticket"
)

// AuthService is the slice of auth.Service the API needs.
type AuthService interface {
	Register(ctx context.Context, req auth.RegisterRequest) (*auth.User, error)
	Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResult, error)
	VerifyToken(token string) (string, auth.Role, error)
}

// DraftService drives the field wizard for draft agreements.
type DraftService interface {
	Start(ctx context.Context, ownerID, kindID string) (agreement.Agreement, *catalog.FieldDefinition, error)
	Submit(ctx context.Context, actorID, id, raw string) (agreement.StepResult, error)
	Skip(ctx context.Context, actorID, id string) (agreement.StepResult, error)
}

// LifecycleService moves agreements between statuses.
type LifecycleService interface {
	Confirm(ctx context.Context, actorID, id string) error
	Reopen(ctx context.Context, actorID, id string) error
	SendToParty(ctx context.Context, actorID, id string) (agreement.SendResult, error)
	PartyApprove(ctx context.Context, actorID, id string) error
	PartyRequestChanges(ctx context.Context, actorID, id, comment string) error
	Sign(ctx context.Context, actorID, id string) error
	SendToScholar(ctx context.Context, actorID, id string) error
	SendToCourt(ctx context.Context, actorID, id string) error
	Remove(ctx context.Context, actorID, id string) error
}

// AgreementReader serves reads outside the lifecycle transactions.
type AgreementReader interface {
	Get(ctx context.Context, userID, id string) (agreement.Agreement, error)
	List(ctx context.Context, filters agreement.ListFilters) ([]agreement.Agreement, int, error)
	Events(ctx context.Context, id string) ([]agreement.TimelineEvent, error)
}

// InviteService resolves and redeems invite codes.
type InviteService interface {
	Resolve(ctx context.Context, code string) (agreement.Agreement, error)
	Redeem(ctx context.Context, actorID, code string) (agreement.Agreement, error)
}

// TicketQueue serves the staff work queue.
type TicketQueue interface {
	List(ctx context.Context, filters ticket.ListFilters) ([]ticket.Ticket, int, error)
	Events(ctx context.Context, ticketID string) ([]ticket.Event, error)
}

// TicketSyncer aligns a review ticket with its source entity's status.
type TicketSyncer interface {
	Sync(ctx context.Context, entityKind, entityID, sourceStatus string) error
}

// CaseService reads and advances court cases.
type CaseService interface {
	Get(ctx context.Context, userID, id string) (dispute.Case, error)
	List(ctx context.Context, userID, agreementID string) ([]dispute.Case, error)
	SetStatus(ctx context.Context, actorID, caseID string, next dispute.Status) (dispute.Case, error)
}

// Server wires handlers to the domain services.
type Server struct {
	auth       AuthService
	drafts     DraftService
	lifecycle  LifecycleService
	agreements AgreementReader
	invites    InviteService
	tickets    TicketQueue
	syncer     TicketSyncer
	cases      CaseService
	labels     render.Labeler
}

// Deps collects the services a Server needs.
type Deps struct {
	Auth       AuthService
	Drafts     DraftService
	Lifecycle  LifecycleService
	Agreements AgreementReader
	Invites    InviteService
	Tickets    TicketQueue
	Syncer     TicketSyncer
	Cases      CaseService
	Labels     render.Labeler
}

func NewServer(deps Deps) *Server {
	labels := deps.Labels
	if labels == nil {
		labels = locale.Default()
	}
	return &Server{
		auth:       deps.Auth,
		drafts:     deps.Drafts,
		lifecycle:  deps.Lifecycle,
		agreements: deps.Agreements,
		invites:    deps.Invites,
		tickets:    deps.Tickets,
		syncer:     deps.Syncer,
		cases:      deps.Cases,
		labels:     labels,
	}
}

// Router builds the Gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(RequestID(), Logging(nil), gin.Recovery())

	api := r.Group("/api")
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	api.POST("/auth/register", s.register)
	api.POST("/auth/login", s.login)

	api.GET("/catalog", s.listKinds)
	api.GET("/catalog/:kind", s.getKind)

	authed := api.Group("")
	authed.Use(Authenticate(s.auth))

	authed.POST("/agreements", s.startAgreement)
	authed.GET("/agreements", s.listAgreements)
	authed.GET("/agreements/:id", s.getAgreement)
	authed.GET("/agreements/:id/events", s.agreementEvents)
	authed.DELETE("/agreements/:id", s.deleteAgreement)

	authed.POST("/agreements/:id/answers", s.submitAnswer)
	authed.POST("/agreements/:id/skip", s.skipField)

	authed.POST("/agreements/:id/confirm", s.lifecycleAction(s.lifecycle.Confirm))
	authed.POST("/agreements/:id/reopen", s.lifecycleAction(s.lifecycle.Reopen))
	authed.POST("/agreements/:id/send", s.sendToParty)
	authed.POST("/agreements/:id/approve", s.lifecycleAction(s.lifecycle.PartyApprove))
	authed.POST("/agreements/:id/request-changes", s.requestChanges)
	authed.POST("/agreements/:id/sign", s.lifecycleAction(s.lifecycle.Sign))
	authed.POST("/agreements/:id/scholar", s.lifecycleAction(s.lifecycle.SendToScholar))
	authed.POST("/agreements/:id/court", s.lifecycleAction(s.lifecycle.SendToCourt))

	authed.GET("/invites/:code", s.resolveInvite)
	authed.POST("/invites/:code/redeem", s.redeemInvite)

	authed.GET("/cases", s.listCases)
	authed.GET("/cases/:id", s.getCase)

	staff := authed.Group("")
	staff.Use(RequireRoles(auth.RoleStaff, auth.RoleScholar))
	staff.GET("/tickets", s.listTickets)
	staff.GET("/tickets/:id/events", s.ticketEvents)
	staff.POST("/tickets/sync", s.syncTickets)
	staff.POST("/cases/:id/status", s.setCaseStatus)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
