package booking

import (
	"github.com/pbp-kelompok-b10/any-venue/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

const uniqueViolation = "23505"
