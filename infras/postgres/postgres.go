package postgres

//nolint:revive
import (
	"hotel/config"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads from writes. Snapshot reads go to Read, every
// transaction that locks room types goes to Write.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

type endpoint struct {
	role     string
	username string
	password string
	host     string
	port     string
	name     string
	sslMode  string
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read: connect(cfg, endpoint{
			role:     "read",
			username: pg.Read.Username,
			password: pg.Read.Password,
			host:     pg.Read.Host,
			port:     pg.Read.Port,
			name:     dbName(cfg, pg.Read.Name),
			sslMode:  pg.Read.SSLMode,
		}),
		Write: connect(cfg, endpoint{
			role:     "write",
			username: pg.Write.Username,
			password: pg.Write.Password,
			host:     pg.Write.Host,
			port:     pg.Write.Port,
			name:     dbName(cfg, pg.Write.Name),
			sslMode:  pg.Write.SSLMode,
		}),
	}
}

func dbName(cfg *config.Config, base string) string {
	return cfg.DB.Postgres.Prefix + base
}

// buildDSN builds the connection URL. lock_timeout is sent as a startup
// parameter so a writer queued behind a room type lock gives up instead of
// holding a pool slot forever.
func buildDSN(cfg *config.Config, e endpoint) string {
	query := url.Values{}
	query.Set("sslmode", e.sslMode)
	query.Set("application_name", cfg.App.Name)

	if ms := cfg.DB.Postgres.LockTimeoutMs; ms > 0 {
		query.Set("lock_timeout", strconv.Itoa(ms))
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.username, e.password),
		Host:     net.JoinHostPort(e.host, e.port),
		Path:     "/" + e.name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// WriteDSN points at the primary, where migrations run.
func WriteDSN(cfg *config.Config) string {
	pg := cfg.DB.Postgres

	return buildDSN(cfg, endpoint{
		role:     "write",
		username: pg.Write.Username,
		password: pg.Write.Password,
		host:     pg.Write.Host,
		port:     pg.Write.Port,
		name:     dbName(cfg, pg.Write.Name),
		sslMode:  pg.Write.SSLMode,
	})
}

func connect(cfg *config.Config, e endpoint) *sqlx.DB {
	dsn := buildDSN(cfg, e)
	wait := time.Duration(cfg.DB.Postgres.RetryWaitTime) * time.Second

	for attempt := range max(cfg.DB.Postgres.MaxRetry, 1) {
		db, err := sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(cfg.DB.Postgres.MaxOpenConns)
			db.SetMaxIdleConns(cfg.DB.Postgres.MaxIdleConns)

			log.Info().
				Str("role", e.role).
				Str("host", e.host).
				Str("port", e.port).
				Str("db", e.name).
				Msg("Connected to database")

			return db
		}

		log.Error().
			Err(err).
			Str("role", e.role).
			Str("host", e.host).
			Str("db", e.name).
			Int("attempt", attempt+1).
			Msg("Failed connecting to database, retrying")

		time.Sleep(wait)
	}

	log.Fatal().Str("role", e.role).Msg("Giving up connecting to database")

	return nil
}
