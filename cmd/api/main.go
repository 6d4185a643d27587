package main

import (
	"context"
	"net/http"
	"os"

	_ "mapkit-api/docs"
	"mapkit-api/internal/config"
	"mapkit-api/internal/handler"
	"mapkit-api/internal/marker"
	"mapkit-api/internal/nominatim"
	"mapkit-api/internal/repository"
	"mapkit-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			mapkit API
//	@version		1.0
//	@description	Geocoding, address formatting and map marker utilities.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	setupLogger(config)

	// Geocoding
	client := nominatim.NewClient(nominatim.Options{
		BaseURL:   config.NominatimBaseURL,
		UserAgent: config.NominatimAgent,
		Referer:   config.NominatimReferer,
		Timeout:   config.NominatimTimeout,
	})

	geocoderAdapter := service.NewGeocoderAdapter(client, log.Logger)
	placeNameService := service.NewPlaceNameService(client)

	// Map instances: PostGIS when a database is configured, process memory otherwise
	var maps handler.MapStore
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		if err := repository.EnsureSchema(context.Background(), conn); err != nil {
			log.Fatal().Err(err).Msg("cannot prepare db schema")
		}

		repo := repository.NewRepository(conn)
		maps = handler.MapStoreFunc(func(id string) handler.MapLayer { return repo.Map(id) })
		log.Info().Msg("storing markers in postgres")
	} else {
		store := marker.NewMemoryStore()
		maps = handler.MapStoreFunc(func(id string) handler.MapLayer { return store.Map(id) })
		log.Info().Msg("DB_SOURCE not set, storing markers in memory")
	}

	geoCodeHandler := handler.NewGeoCodeHandler(geocoderAdapter)
	placeNameHandler := handler.NewPlaceNameHandler(placeNameService)
	markerHandler := handler.NewMarkerHandler(maps)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/geocode", geoCodeHandler.GeoCode)
	r.GET("/reverse-geocode", geoCodeHandler.ReverseGeocode)
	r.GET("/place-name", placeNameHandler.PlaceName)
	r.GET("/round", handler.RoundCoord)
	r.POST("/address/format", handler.FormatAddress)
	r.POST("/markers", markerHandler.NewMarker)
	r.POST("/maps/:id/markers", markerHandler.PlaceMarker)
	r.GET("/maps/:id/markers", markerHandler.ListMarkers)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("addr", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(config config.Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
}
