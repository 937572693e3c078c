// Copyright 2019 the call-tracker-go authors
// This file is part of the call-tracker-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/lib/pq"
	"github.com/orbs-network/call-tracker-go/instrumentation/metric"
	"github.com/orbs-network/call-tracker-go/primitives"
	"github.com/orbs-network/call-tracker-go/services/statestorage/adapter"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS state_records (
	contract_name TEXT NOT NULL,
	key           TEXT NOT NULL,
	value         BYTEA NOT NULL,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (contract_name, key)
)`

const upsertRecord = `
INSERT INTO state_records (contract_name, key, value) VALUES ($1, $2, $3)
ON CONFLICT (contract_name, key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`

const deleteRecord = `DELETE FROM state_records WHERE contract_name = $1 AND key = $2`

const selectRecord = `SELECT value FROM state_records WHERE contract_name = $1 AND key = $2`

const selectAll = `SELECT contract_name, key, value FROM state_records ORDER BY contract_name COLLATE "C", key COLLATE "C"`

type metrics struct {
	writeTime *metric.Histogram
	readTime  *metric.Histogram
	failures  *metric.Rate
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		writeTime: m.NewLatency("StateStoragePersistence.Postgres.WriteTime.Millis", 5*time.Second),
		readTime:  m.NewLatency("StateStoragePersistence.Postgres.ReadTime.Millis", 5*time.Second),
		failures:  m.NewRate("StateStoragePersistence.Postgres.Failures.Count"),
	}
}

type PostgresStatePersistence struct {
	db      *sql.DB
	logger  log.Logger
	metrics *metrics
}

// Open connects with the lib/pq driver and creates the state table when missing.
func Open(ctx context.Context, dsn string, logger log.Logger, metricFactory metric.Factory) (*PostgresStatePersistence, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, errors.Wrap(err, "invalid postgres dsn")
	}
	db := sql.OpenDB(connector)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to connect to postgres")
	}

	sp := NewStatePersistence(db, logger, metricFactory)
	if err := sp.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return sp, nil
}

func NewStatePersistence(db *sql.DB, logger log.Logger, metricFactory metric.Factory) *PostgresStatePersistence {
	return &PostgresStatePersistence{
		db:      db,
		logger:  logger.WithTags(log.String("adapter", "postgres")),
		metrics: newMetrics(metricFactory),
	}
}

func (sp *PostgresStatePersistence) Migrate(ctx context.Context) error {
	if _, err := sp.db.ExecContext(ctx, schema); err != nil {
		return errors.Wrap(err, "failed to create state_records table")
	}
	return nil
}

// Write applies the whole diff in one SQL transaction.
func (sp *PostgresStatePersistence) Write(ctx context.Context, diff adapter.ChainState) (err error) {
	start := time.Now()
	defer sp.metrics.writeTime.RecordSince(start)

	dbTx, err := sp.db.BeginTx(ctx, nil)
	if err != nil {
		sp.metrics.failures.Inc()
		return errors.Wrap(err, "failed to begin state transaction")
	}

	defer func() {
		if err != nil {
			sp.metrics.failures.Inc()
			if rollbackErr := dbTx.Rollback(); rollbackErr != nil {
				sp.logger.Info("failed to roll back state transaction", log.Error(rollbackErr))
			}
		}
	}()

	for _, contract := range sortedContracts(diff) {
		for _, key := range sortedKeys(diff[contract]) {
			value := diff[contract][key]
			if adapter.IsZeroValue(value) {
				_, err = dbTx.ExecContext(ctx, deleteRecord, string(contract), key)
			} else {
				_, err = dbTx.ExecContext(ctx, upsertRecord, string(contract), key, value)
			}
			if err != nil {
				return errors.Wrapf(err, "failed to write key %s of %s%s", key, contract, describePqError(err))
			}
		}
	}

	if err = dbTx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit state transaction")
	}
	return nil
}

func (sp *PostgresStatePersistence) Read(ctx context.Context, contract primitives.ContractName, key string) ([]byte, bool, error) {
	start := time.Now()
	defer sp.metrics.readTime.RecordSince(start)

	var value []byte
	err := sp.db.QueryRowContext(ctx, selectRecord, string(contract), key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		sp.metrics.failures.Inc()
		return nil, false, errors.Wrapf(err, "failed to read key %s of %s%s", key, contract, describePqError(err))
	}
	return value, true, nil
}

func (sp *PostgresStatePersistence) Dump() string {
	rows, err := sp.db.Query(selectAll)
	if err != nil {
		return fmt.Sprintf("{error: %s}", err)
	}
	defer rows.Close()

	return dumpRows(rows)
}

type stateRows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

func dumpRows(rows stateRows) string {
	output := strings.Builder{}
	output.WriteString("{")
	currentContract := ""
	for rows.Next() {
		var contract, key string
		var value []byte
		if err := rows.Scan(&contract, &key, &value); err != nil {
			return fmt.Sprintf("{error: %s}", err)
		}
		if contract != currentContract {
			if currentContract != "" {
				output.WriteString("},")
			}
			output.WriteString(contract + ":{")
			currentContract = contract
		}
		output.WriteString(fmt.Sprintf("%s:%x,", key, value))
	}
	if err := rows.Err(); err != nil {
		return fmt.Sprintf("{error: %s}", err)
	}
	if currentContract != "" {
		output.WriteString("},")
	}
	output.WriteString("}")
	return output.String()
}

func (sp *PostgresStatePersistence) Close() error {
	return sp.db.Close()
}

func describePqError(err error) string {
	if pqErr, ok := errors.Cause(err).(*pq.Error); ok {
		return fmt.Sprintf(" (postgres %s: %s)", pqErr.Code, pqErr.Code.Name())
	}
	return ""
}

func sortedContracts(diff adapter.ChainState) []primitives.ContractName {
	res := make([]primitives.ContractName, 0, len(diff))
	for contract := range diff {
		res = append(res, contract)
	}
	sort.Slice(res, func(i, j int) bool { return res[i] < res[j] })
	return res
}

func sortedKeys(records adapter.ContractState) []string {
	res := make([]string, 0, len(records))
	for key := range records {
		res = append(res, key)
	}
	sort.Strings(res)
	return res
}
