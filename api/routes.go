package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/tempo-networks/budget-server/internal/auth"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/authn"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/budget"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/category"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/invitation"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/member"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/recurring"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/status"
	"github.com/tempo-networks/budget-server/internal/handlers/v1/transaction"
	"github.com/tempo-networks/budget-server/internal/logging"
	"github.com/tempo-networks/budget-server/internal/service"
	"github.com/tempo-networks/budget-server/internal/storage"
)

type Rest struct {
	Logger    *logrus.Logger
	Port      string
	Service   *service.Service
	Storage   *storage.Storage
	JWTSecret string
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler(r.Storage.DB)
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	config := huma.DefaultConfig("Tempo Budget API", "1.0.0")
	config.Components.SecuritySchemes = map[string]*huma.SecurityScheme{
		"bearer": {Type: "http", Scheme: "bearer", BearerFormat: "JWT"},
	}

	humaAPI := humago.New(mux, config)
	humaAPI.UseMiddleware(
		logging.NewMiddleware(r.Logger),
		auth.NewMiddleware(humaAPI, r.JWTSecret),
	)
	r.registerHandlers(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}

func (r *Rest) registerHandlers(humaAPI huma.API) {
	authn.NewRegisterHandler(r.Service.User).Register(humaAPI)
	authn.NewLoginHandler(r.Service.User).Register(humaAPI)
	authn.NewChangePasswordHandler(r.Service.User).Register(humaAPI)

	budget.NewCreateBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewGetBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Service.Budget).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)

	recurring.NewCreateTemplateHandler(r.Service.Recurring).Register(humaAPI)
	recurring.NewListTemplatesHandler(r.Service.Recurring).Register(humaAPI)
	recurring.NewToggleTemplateHandler(r.Service.Recurring).Register(humaAPI)
	recurring.NewDeleteTemplateHandler(r.Service.Recurring).Register(humaAPI)
	recurring.NewProcessRecurringHandler(r.Service.Recurring).Register(humaAPI)

	member.NewListMembersHandler(r.Service.Member).Register(humaAPI)
	member.NewInviteMemberHandler(r.Service.Member).Register(humaAPI)
	member.NewUpdateShareHandler(r.Service.Member).Register(humaAPI)
	member.NewRemoveMemberHandler(r.Service.Member).Register(humaAPI)
	member.NewGetBalancesHandler(r.Service.Balance).Register(humaAPI)

	invitation.NewListInvitationsHandler(r.Service.Invitation).Register(humaAPI)
	invitation.NewAcceptInvitationHandler(r.Service.Invitation).Register(humaAPI)
	invitation.NewRejectInvitationHandler(r.Service.Invitation).Register(humaAPI)
}
