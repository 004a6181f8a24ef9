package router

import (
	"github.com/oksasatya/growthpoints/internal/application"
	"github.com/oksasatya/growthpoints/internal/container"
	handlers "github.com/oksasatya/growthpoints/internal/interface/http"
	"github.com/oksasatya/growthpoints/internal/interface/middleware"
	"github.com/oksasatya/growthpoints/internal/router/modules"
)

type ModuleDeps struct {
	Claims   *application.ClaimService
	Chat     *application.ChatService
	Profiles *application.ProfileService

	TaskHandler    *handlers.TaskHandler
	ChatHandler    *handlers.ChatHandler
	ProfileHandler *handlers.ProfileHandler
}

func buildDeps() ModuleDeps {
	log := container.GetLogger()
	uow := container.GetUnitOfWork()
	verifier := container.GetVerifier()

	claims := application.NewClaimService(uow, verifier, container.GetPublisher(), log)
	chat := application.NewChatService(container.GetCompleter(), log)
	profiles := application.NewProfileService(uow, verifier, log)

	return ModuleDeps{
		Claims:         claims,
		Chat:           chat,
		Profiles:       profiles,
		TaskHandler:    handlers.NewTaskHandler(claims, profiles, log),
		ChatHandler:    handlers.NewChatHandler(chat, log),
		ProfileHandler: handlers.NewProfileHandler(profiles),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	deps := buildDeps()
	cfg := container.GetConfig()
	rdb := container.GetRedis()

	r.Use(middleware.BearerToken())
	r.Add(modules.NewTaskModule(deps.TaskHandler, rdb, cfg.ClaimRateLimit))
	r.Add(modules.NewChatModule(deps.ChatHandler, rdb, cfg.ChatRateLimit))
	r.Add(modules.NewProfileModule(deps.ProfileHandler))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(rdb))
	}
}
