package availability

import "github.com/m04kA/SMC-FitnessScheduling/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
