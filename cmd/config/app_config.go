package config

import (
	"io"
	"os"
	"restaurant-backend/internal/api/handlers"
	"restaurant-backend/internal/api/routes"
	"restaurant-backend/internal/middleware"
	"restaurant-backend/internal/utils"
	"restaurant-backend/internal/utils/mailing"
	"restaurant-backend/internal/utils/storage"
	"restaurant-backend/pkg/featured"
	"restaurant-backend/pkg/jwt"
	"restaurant-backend/pkg/menu"
	"restaurant-backend/pkg/notify"
	"restaurant-backend/pkg/reservation"
	"restaurant-backend/pkg/session"
	"restaurant-backend/pkg/user"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

// App is the HTTP server plus whatever has to be drained on shutdown.
type App struct {
	*fiber.App
	Dispatcher notify.Dispatcher
}

func NewApp(db *gorm.DB) (*App, error) {
	file, err := accessLog()
	if err != nil {
		return nil, err
	}
	return NewAppWithLog(db, file), nil
}

func NewAppWithLog(db *gorm.DB, accessLog io.Writer) *App {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   utils.GetConfig("APP_TIMEZONE"),
		Output:     accessLog,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        utils.GetConfigInt("RATE_LIMIT_MAX", 20),
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	dispatcher := notify.NewDispatcher(notify.DefaultTimeout, notifiers()...)

	// Repository
	userRepository := user.NewUserRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	featuredRepository := featured.NewFeaturedRepository(db)
	reservationRepository := reservation.NewReservationRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	guard := session.NewGuard(userRepository, jwtService)
	menuService := menu.NewMenuService(menuRepository, s3, validator)
	drafts := featured.NewDrafts(utils.GetConfigInt("FEATURED_SLOT_COUNT", 3))
	featuredService := featured.NewFeaturedService(featuredRepository, menuRepository, drafts)
	reservationService := reservation.NewReservationService(reservationRepository, dispatcher, validator, reservation.RulesFromConfig())

	guard.Subscribe(func(ev session.Event) {
		if ev.Type == session.EventSignedOut {
			featuredService.ForgetDraft(ev.Session.UserID)
		}
	})

	// Handler
	authHandler := handlers.NewAuthHandler(guard, validator)
	menuHandler := handlers.NewMenuHandler(menuService)
	featuredHandler := handlers.NewFeaturedHandler(featuredService, validator)
	reservationHandler := handlers.NewReservationHandler(reservationService)

	// routes
	routesConfig := routes.Config{
		App:                app,
		AuthHandler:        authHandler,
		MenuHandler:        menuHandler,
		FeaturedHandler:    featuredHandler,
		ReservationHandler: reservationHandler,
		Middleware:         middlewares,
		Guard:              guard,
	}
	routesConfig.Setup()
	return &App{App: app, Dispatcher: dispatcher}
}

func accessLog() (*os.File, error) {
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, err
	}
	return os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
}

// notifiers registers only the channels that are configured.
func notifiers() []notify.Notifier {
	var out []notify.Notifier
	if mailing.LoadMailConfig().Enabled() {
		out = append(out, notify.NewMailNotifier())
	}

	token := utils.GetConfig("TELEGRAM_BOT_TOKEN")
	if token == "" {
		return out
	}
	chatID, err := strconv.ParseInt(utils.GetConfig("TELEGRAM_CHAT_ID"), 10, 64)
	if err != nil {
		log.Warnw("TELEGRAM_CHAT_ID is not a number, staff alerts disabled", "err", err)
		return out
	}
	tg, err := notify.NewTelegramNotifier(token, chatID)
	if err != nil {
		log.Warnw("telegram unavailable, staff alerts disabled", "err", err)
		return out
	}
	return append(out, tg)
}
