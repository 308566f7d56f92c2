package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	kongdotenv "github.com/titusjaka/kong-dotenv-go"

	_ "modernc.org/sqlite"

	"github.com/rizaldy/temanramadhan/internal/api"
	"github.com/rizaldy/temanramadhan/internal/ingest"
	"github.com/rizaldy/temanramadhan/internal/store"
)

var cli struct {
	DB       string  `help:"Path to SQLite database." default:"data/temanramadhan.db" env:"TR_DB"`
	Port     string  `help:"HTTP server port." default:"8080" env:"TR_PORT"`
	Lat      float64 `help:"Latitude of the served location." default:"-8.6705" env:"TR_LAT"`
	Lon      float64 `help:"Longitude of the served location." default:"115.2126" env:"TR_LON"`
	City     string  `help:"City for the prayer-times API." default:"Denpasar" env:"TR_CITY"`
	Country  string  `help:"Country for the prayer-times API." default:"Indonesia" env:"TR_COUNTRY"`
	Timezone string  `help:"IANA timezone of the served location." default:"Asia/Jakarta" env:"TR_TZ"`
	Weight   float64 `help:"Default body weight in kg for hydration plans." default:"70" env:"TR_WEIGHT"`

	WeatherEvery time.Duration `help:"Weather polling interval." default:"30m" env:"TR_WEATHER_EVERY"`
	MarineEvery  time.Duration `help:"Marine polling interval." default:"1h" env:"TR_MARINE_EVERY"`
	NoMarine     bool          `help:"Disable the marine (wave height) ingest." env:"TR_NO_MARINE"`
	NoPoll       bool          `help:"Disable polling (server only, for local dev)."`
	Once         bool          `help:"Ingest once and exit (for testing)."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("temanramadhan"),
		kong.Description("Ramadhan weather companion for coastal Indonesia."),
		kong.Configuration(kongdotenv.ENVFileReader, ".env"),
	)
	kctx.FatalIfErrorf(run())
}

func run() error {
	db, err := sql.Open("sqlite", cli.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")

	loc, err := time.LoadLocation(cli.Timezone)
	if err != nil {
		log.Printf("could not load timezone %s, using UTC: %v", cli.Timezone, err)
		loc = time.UTC
	}

	st := store.New(db, loc)
	if err := st.Migrate(); err != nil {
		return err
	}
	log.Println("database migrated")

	meteo := ingest.NewOpenMeteoClient(cli.Lat, cli.Lon, loc)
	aladhan := ingest.NewAladhanClient(cli.City, cli.Country)
	scheduler := ingest.NewScheduler(st, meteo, aladhan, loc, !cli.NoMarine)
	scheduler.SetIntervals(cli.WeatherEvery, cli.MarineEvery)
	server := api.NewServer(st, cli.Port, loc)
	server.SetDefaultBodyWeight(cli.Weight)

	if cli.Once {
		log.Println("running single ingestion")
		scheduler.IngestOnce()
		log.Println("done")
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if !cli.NoPoll {
		go scheduler.Run(ctx)
	} else {
		log.Println("polling disabled (--no-poll)")
	}

	log.Printf("starting server on :%s", cli.Port)
	return server.Run(ctx)
}
