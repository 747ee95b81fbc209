package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/influxdata/influxdb-client-go/v2"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

const setupQueryFormat = `
CREATE TABLE IF NOT EXISTS %[1]s (
	id TEXT PRIMARY KEY,
	hash BIGINT NOT NULL UNIQUE,
	sex TEXT NOT NULL,
	start_time TIMESTAMPTZ,
	end_time TIMESTAMPTZ,
	tags JSONB
);

CREATE TABLE IF NOT EXISTS %[2]s (
	id TEXT PRIMARY KEY,
	set_id TEXT NOT NULL REFERENCES %[1]s (id),
	recorded_at TIMESTAMPTZ NOT NULL,
	age_months DOUBLE PRECISION NOT NULL,
	name TEXT NOT NULL,
	unit TEXT NOT NULL,
	value DOUBLE PRECISION NOT NULL,
	percentile DOUBLE PRECISION,
	z_score DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS %[3]s (
	id TEXT PRIMARY KEY,
	set_id TEXT NOT NULL REFERENCES %[1]s (id),
	name TEXT NOT NULL,
	time_unit TEXT NOT NULL,
	average_velocity DOUBLE PRECISION,
	net_change DOUBLE PRECISION
);

CREATE TABLE IF NOT EXISTS %[4]s (
	id TEXT PRIMARY KEY,
	set_id TEXT NOT NULL REFERENCES %[1]s (id),
	measurement_a TEXT NOT NULL,
	measurement_b TEXT NOT NULL,
	correlation DOUBLE PRECISION NOT NULL
);
`

func NewETLSetupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Set up databases for ETL command",
		RunE:  etlSetup,
	}

	return cmd
}

func etlSetup(cmd *cobra.Command, args []string) (ret error) {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", config.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("sql open: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin sql transaction: %w", err)
	}
	defer func() {
		if ret != nil {
			err := tx.Rollback()
			if err != nil {
				fmt.Println("ERR: failed to rollback transaction:", err)
			}
		}
	}()

	setupQuery := buildSetupQuery(config.Postgres)
	_, err = tx.Exec(setupQuery)
	if err != nil {
		return fmt.Errorf("setup query: %w", err)
	}

	options := influxdb2.DefaultOptions()
	options.SetPrecision(time.Second)

	client := influxdb2.NewClientWithOptions(config.Influx.Host, config.Influx.Token, options)
	defer client.Close()

	org, err := client.OrganizationsAPI().FindOrganizationByName(context.Background(), config.Influx.Org)
	if err != nil {
		return fmt.Errorf("influx get org: %w", err)
	}

	_, err = client.BucketsAPI().CreateBucketWithName(context.Background(), org, config.Influx.Bucket)
	if err != nil {
		return fmt.Errorf("influx create bucket: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit sql: %w", err)
	}

	return nil
}

func buildSetupQuery(pg PostgresConfig) string {
	return fmt.Sprintf(
		setupQueryFormat,
		pg.SetTable,
		pg.AssessmentTable,
		pg.TrendTable,
		pg.CorrelationTable,
	)
}
