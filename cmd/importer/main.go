package main

import (
	"context"
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"mapkit-api/internal/config"
	"mapkit-api/internal/geofmt"
	"mapkit-api/internal/marker"
	"mapkit-api/internal/models"
	"mapkit-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// MarkerRecord is one CSV row: the map a marker belongs to and where it sits.
type MarkerRecord struct {
	MapID string
	Point models.Coordinate
}

func main() {
	file := flag.String("file", "", "Path to the CSV file to import (map_id,lon,lat)")
	precision := flag.Int("precision", 6, "Decimal places kept for coordinates")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *file == "" {
		log.Fatal().Msg("--file flag is required")
	}

	log.Info().Str("file", *file).Msg("starting import")

	records, err := parseCSV(*file, *precision)
	if err != nil {
		log.Fatal().Err(err).Msg("error parsing CSV")
	}

	log.Info().Int("records", len(records)).Msg("parsed records")

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("error loading config")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required")
	}

	ctx := context.Background()

	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer conn.Close(ctx)

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("error creating schema")
	}

	n, err := insertMarkers(ctx, conn, records)
	if err != nil {
		log.Fatal().Err(err).Msg("error inserting markers")
	}

	if err := verifyImport(ctx, conn, n, len(records)); err != nil {
		log.Fatal().Err(err).Msg("error verifying import")
	}

	log.Info().Int64("markers", n).Msg("import finished")
}

// verifyImport checks every record was written and logs one stored point as a sanity check.
func verifyImport(ctx context.Context, conn *pgx.Conn, written int64, expected int) error {
	if err := checkCount(written, expected); err != nil {
		return err
	}
	if expected == 0 {
		return nil
	}

	var geom string
	err := conn.QueryRow(ctx, "SELECT ST_AsText(geom) FROM markers ORDER BY created_at DESC LIMIT 1").Scan(&geom)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	log.Info().Str("geom", geom).Msg("sample marker")
	return nil
}

func checkCount(written int64, expected int) error {
	if written != int64(expected) {
		return fmt.Errorf("marker count mismatch: expected %d, got %d", expected, written)
	}
	return nil
}

// parseCSV reads map_id,lon,lat rows, skipping the header, and rounds each
// coordinate to precision decimals.
func parseCSV(filePath string, precision int) ([]MarkerRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return readRecords(file, precision)
}

func readRecords(r io.Reader, precision int) ([]MarkerRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []MarkerRecord
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 3 {
			return nil, fmt.Errorf("line %d: invalid record length %d, expected 3 columns", line, len(record))
		}

		mapID := strings.TrimSpace(record[0])
		if mapID == "" {
			return nil, fmt.Errorf("line %d: empty map id", line)
		}

		lon, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude: %s", line, record[1])
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude: %s", line, record[2])
		}

		records = append(records, MarkerRecord{
			MapID: mapID,
			Point: models.Coordinate{
				Lon: geofmt.RoundCoord(lon, precision),
				Lat: geofmt.RoundCoord(lat, precision),
			},
		})
	}

	return records, nil
}

// insertMarkers creates a detached marker per record and writes them all in one batch.
func insertMarkers(ctx context.Context, conn *pgx.Conn, records []MarkerRecord) (int64, error) {
	placed := make([]repository.PlacedMarker, 0, len(records))
	for _, r := range records {
		mk, err := marker.New(ctx, r.Point, nil)
		if err != nil {
			return 0, err
		}
		placed = append(placed, repository.PlacedMarker{MapID: r.MapID, Marker: mk})
	}

	return repository.InsertMarkers(ctx, conn, placed)
}
