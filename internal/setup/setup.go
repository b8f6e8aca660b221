package setup

import (
	"github.com/forumhub-dev/forumhub/internal/config"
	"github.com/forumhub-dev/forumhub/internal/handler"
	"github.com/forumhub-dev/forumhub/internal/service"
	service_utils "github.com/forumhub-dev/forumhub/internal/service/utils"
	"github.com/forumhub-dev/forumhub/internal/storage/pg"
	"github.com/forumhub-dev/forumhub/internal/utils/jwt"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     *jwt.Jwt
	Config  *config.Config
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	sanitizer := service_utils.NewMessageSanitizer()

	topics := service.NewTopic(storage, storage, storage, sanitizer)
	replies := service.NewReply(storage, storage, storage, sanitizer)
	users := service.NewUser(storage)
	auth := service.NewAuth(storage, jwtService)
	courses := service.NewCourseAdmin(storage)

	h := handler.New(topics, replies, users, auth, courses, cfg)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     jwtService,
		Config:  cfg,
	}, nil
}
