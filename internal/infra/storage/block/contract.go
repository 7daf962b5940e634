package block

import "github.com/m04kA/SMC-FitnessScheduling/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor

type rowScanner interface {
	Scan(dest ...interface{}) error
}
