package main

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/subtlepseudonym/growth"

	"github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	_ "github.com/lib/pq"
	"github.com/mitchellh/hashstructure"
	"github.com/schollz/progressbar/v3"
	"github.com/scru128/go-scru128"
	"github.com/spf13/cobra"
)

const insertSetFormat = `
INSERT INTO %s
(
	id,
	hash,
	sex,
	start_time,
	end_time,
	tags
) VALUES (
	'%s', %d, '%s', '%s', '%s', '%s'
);
`

const insertAssessmentFormat = `
INSERT INTO %s
(
	id,
	set_id,
	recorded_at,
	age_months,
	name,
	unit,
	value,
	percentile,
	z_score
) VALUES (
	'%s', '%s', '%s', %f,
	'%s', '%s', %f, %s, %s
);
`

const insertTrendFormat = `
INSERT INTO %s
(
	id,
	set_id,
	name,
	time_unit,
	average_velocity,
	net_change
) VALUES (
	'%s', '%s', '%s', '%s', %s, %s
);
`

const insertCorrelationFormat = `
INSERT INTO %s
(
	id,
	set_id,
	measurement_a,
	measurement_b,
	correlation
) VALUES (
	'%s', '%s', '%s', '%s', %f
);
`

func NewETLCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "etl",
		Short: "ETL record documents into downstream storage",
		Args:  cobra.MinimumNArgs(1),
		RunE:  etl,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "TOML file with postgres and influx settings")
	flags.String("postgres", "", "Postgres DSN")
	flags.String("postgres_set_table", "growth_set", "Postgres table")
	flags.String("postgres_assessment_table", "assessment", "Postgres table")
	flags.String("postgres_trend_table", "velocity_trend", "Postgres table")
	flags.String("postgres_correlation_table", "velocity_correlation", "Postgres table")
	flags.String("influx_host", "", "InfluxDB DSN")
	flags.String("influx_token", "", "InfluxDB API token")
	flags.String("influx_org", "default", "InfluxDB organization")
	flags.String("influx_bucket", "growth", "InfluxDB bucket")

	cmd.Flags().String("source", DefaultSource, "Record source name")
	cmd.Flags().String("sex", "", "Override the document's sex value")
	cmd.Flags().String("unit", string(growth.UnitWeek), "Velocity time unit (day, week)")

	cmd.AddCommand(NewETLSetupCommand())

	return cmd
}

// resolveConfig merges the optional TOML file with flags; a flag set on the
// command line wins over the file value.
func resolveConfig(cmd *cobra.Command) (*Config, error) {
	flags := cmd.Flags()

	config := new(Config)
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		config = loaded
	}

	stringInto := func(flag string, target *string) {
		if flags.Changed(flag) || *target == "" {
			*target, _ = flags.GetString(flag)
		}
	}

	stringInto("postgres", &config.Postgres.DSN)
	stringInto("postgres_set_table", &config.Postgres.SetTable)
	stringInto("postgres_assessment_table", &config.Postgres.AssessmentTable)
	stringInto("postgres_trend_table", &config.Postgres.TrendTable)
	stringInto("postgres_correlation_table", &config.Postgres.CorrelationTable)
	stringInto("influx_host", &config.Influx.Host)
	stringInto("influx_token", &config.Influx.Token)
	stringInto("influx_org", &config.Influx.Org)
	stringInto("influx_bucket", &config.Influx.Bucket)

	if config.Postgres.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}
	if config.Influx.Host == "" || config.Influx.Token == "" {
		return nil, fmt.Errorf("influx host and token are required")
	}

	return config, nil
}

func etl(cmd *cobra.Command, args []string) (ret error) {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	source, _ := cmd.Flags().GetString("source")
	sexFlag, _ := cmd.Flags().GetString("sex")
	unitFlag, _ := cmd.Flags().GetString("unit")
	unit, ok := growth.ParseTimeUnit(unitFlag)
	if !ok {
		return fmt.Errorf("unknown time unit: %q", unitFlag)
	}

	db, err := sql.Open("postgres", config.Postgres.DSN)
	if err != nil {
		return fmt.Errorf("sql open: %w", err)
	}
	defer db.Close()

	options := influxdb2.DefaultOptions()
	options.SetPrecision(time.Second)

	client := influxdb2.NewClientWithOptions(config.Influx.Host, config.Influx.Token, options)
	defer client.Close()
	influxAPI := client.WriteAPIBlocking(config.Influx.Org, config.Influx.Bucket)

	bar := progressbar.Default(int64(len(args)))
	for _, arg := range args {
		doc, err := ReadDocument(arg)
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		tags := map[string]string{
			"source": source,
		}

		err = loadDocument(db, influxAPI, config.Postgres, doc, documentSex(doc, sexFlag), unit, tags)
		if err != nil {
			return fmt.Errorf("%s: %w", arg, err)
		}

		_ = bar.Add(1)
	}

	return nil
}

func loadDocument(db *sql.DB, influxAPI api.WriteAPIBlocking, pg PostgresConfig, doc *Document, sex growth.Sex, unit growth.TimeUnit, tags map[string]string) (ret error) {
	docHash, err := hashstructure.Hash(doc, nil)
	if err != nil {
		return fmt.Errorf("hash document: %w", err)
	}

	queries, err := buildInsertQueries(pg, doc, sex, unit, int64(docHash), tags)
	if err != nil {
		return fmt.Errorf("build insert queries: %w", err)
	}

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

	var count int
	hashQuery := fmt.Sprintf("SELECT count(*) FROM %s WHERE hash = %d", pg.SetTable, int64(docHash))
	err = tx.QueryRow(hashQuery).Scan(&count)
	if err != nil {
		return fmt.Errorf("hash existence query: %w", err)
	}
	if count != 0 {
		return fmt.Errorf("document hash should be unique: found %d existing records", count)
	}

	for _, query := range queries {
		_, err = tx.Exec(query)
		if err != nil {
			return fmt.Errorf("sql insert: %w", err)
		}
	}

	buf := new(bytes.Buffer)
	err = growth.WriteLineProtocol(buf, sex, doc.Records, tags)
	if err != nil {
		return fmt.Errorf("write line protocol: %w", err)
	}

	err = influxAPI.WriteRecord(context.Background(), buf.String())
	if err != nil {
		return fmt.Errorf("write influx records: %w", err)
	}

	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("commit sql: %w", err)
	}

	return nil
}

func buildInsertQueries(pg PostgresConfig, doc *Document, sex growth.Sex, unit growth.TimeUnit, docHash int64, tags map[string]string) ([]string, error) {
	scruGenerator := scru128.NewGenerator()
	setID, err := scruGenerator.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate set ID: %w", err)
	}

	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("marshal json tags: %w", err)
	}

	var startTime, endTime time.Time
	if len(doc.Records) > 0 {
		startTime = doc.Records[0].RecordedAt
		endTime = doc.Records[len(doc.Records)-1].RecordedAt
	}

	queries := []string{fmt.Sprintf(
		insertSetFormat,
		pg.SetTable,
		setID,
		docHash,
		sex,
		startTime.Format(time.RFC3339),
		endTime.Format(time.RFC3339),
		tagsJSON,
	)}

	for _, record := range doc.Records {
		assessment := growth.Assess(record, sex)
		for _, t := range growth.MeasurementTypes {
			value := record.Reference(t)
			if value == nil {
				continue
			}

			id, err := scruGenerator.Generate()
			if err != nil {
				return nil, fmt.Errorf("generate assessment ID: %w", err)
			}

			var percentile, zScore *float64
			if result := assessment.Result(t); result != nil {
				percentile = &result.Percentile
				zScore = &result.ZScore
			}

			queries = append(queries, fmt.Sprintf(
				insertAssessmentFormat,
				pg.AssessmentTable,
				id,
				setID,
				record.RecordedAt.Format(time.RFC3339),
				assessment.AgeMonths,
				t,
				t.Unit(),
				*value,
				sqlFloat(percentile),
				sqlFloat(zScore),
			))
		}
	}

	report := growth.SummarizeVelocity(doc.Records, unit)
	for _, t := range growth.MeasurementTypes {
		trend := report.Summary.Trend(t)
		if trend == nil {
			continue
		}

		id, err := scruGenerator.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate trend ID: %w", err)
		}

		queries = append(queries, fmt.Sprintf(
			insertTrendFormat,
			pg.TrendTable,
			id,
			setID,
			t,
			unit,
			sqlFloat(trend.AverageVelocity),
			sqlFloat(trend.NetChange),
		))
	}

	for _, c := range report.Correlations {
		id, err := scruGenerator.Generate()
		if err != nil {
			return nil, fmt.Errorf("generate correlation ID: %w", err)
		}

		queries = append(queries, fmt.Sprintf(
			insertCorrelationFormat,
			pg.CorrelationTable,
			id,
			setID,
			c.MeasurementA,
			c.MeasurementB,
			c.Correlation,
		))
	}

	return queries, nil
}

func sqlFloat(v *float64) string {
	if v == nil {
		return "NULL"
	}
	return fmt.Sprintf("%f", *v)
}
