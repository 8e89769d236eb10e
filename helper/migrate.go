package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"hotel/config"
	"hotel/infras/postgres"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const sourceURL = "file://migrations/postgres"

type Action string

const (
	ActionUp     Action = "up"
	ActionDown   Action = "down"
	ActionStepUp Action = "step-up"
	ActionDrop   Action = "drop"
)

func ParseAction(value string) (Action, error) {
	switch action := Action(value); action {
	case ActionUp, ActionDown, ActionStepUp, ActionDrop:
		return action, nil
	default:
		return "", fmt.Errorf("unknown migration action %q, use up, down, step-up or drop", value)
	}
}

func databaseURL(cfg *config.Config) (string, error) {
	dsn, err := url.Parse(postgres.WriteDSN(cfg))
	if err != nil {
		return "", fmt.Errorf("invalid database url: %w", err)
	}

	query := dsn.Query()
	if cfg.DB.Postgres.MigrationTable != "" {
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
	}

	dsn.RawQuery = query.Encode()

	return dsn.String(), nil
}

func open(cfg *config.Config) (*migrate.Migrate, error) {
	dbURL, err := databaseURL(cfg)
	if err != nil {
		return nil, err
	}

	mig, err := migrate.New(sourceURL, dbURL)
	if err != nil {
		return nil, fmt.Errorf("error creating migrate instance: %w", err)
	}

	return mig, nil
}

// Run applies action to the schema. Running with nothing left to apply is not an error.
func Run(cfg *config.Config, action Action) error {
	mig, err := open(cfg)
	if err != nil {
		return err
	}

	defer mig.Close()

	switch action {
	case ActionUp:
		err = mig.Up()
	case ActionDown:
		err = mig.Steps(-1)
	case ActionStepUp:
		err = mig.Steps(1)
	case ActionDrop:
		err = mig.Down()
	default:
		return fmt.Errorf("unknown migration action %q", action)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", action, err)
	}

	version, dirty, verr := mig.Version()
	if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", verr)
	}

	log.Info().
		Str("action", string(action)).
		Uint("version", version).
		Bool("dirty", dirty).
		Msg("Database migration finished")

	return nil
}

// Up brings the schema to the latest version, used on boot when auto migrate is on.
func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}
